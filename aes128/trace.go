package aes128

// Stage Position of the round pipeline
type Stage uint8

const (
	// StageInitial key whitening with round key 0
	StageInitial = Stage(iota)
	// StageRound rounds 1 to Rounds-1
	StageRound
	// StageFinalRound last round, without MixColumns
	StageFinalRound
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageRound:
		return "round"
	case StageFinalRound:
		return "final"
	default:
		return "unknown"
	}
}

// Step Transformation that was just applied to the state
type Step uint8

const (
	StepSubBytes = Step(iota)
	StepShiftRows
	StepMixColumns
	StepAddRoundKey
)

func (s Step) String() string {
	switch s {
	case StepSubBytes:
		return "s_box"
	case StepShiftRows:
		return "s_row"
	case StepMixColumns:
		return "m_col"
	case StepAddRoundKey:
		return "a_key"
	default:
		return "unknown"
	}
}

// TraceFunc Receives the state after each step of an encryption
type TraceFunc func(stage Stage, round int, step Step, state State)

func (fn TraceFunc) emit(stage Stage, round int, step Step, state *State) {
	if fn != nil {
		fn(stage, round, step, *state)
	}
}
