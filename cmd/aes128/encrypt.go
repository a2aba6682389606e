package main

import (
	"fmt"
	"io"

	"github.com/Concord1/AES-128/aes128"
	"github.com/Concord1/AES-128/types"
	"github.com/Concord1/AES-128/utils"
	"github.com/jessevdk/go-flags"
	fasthex "github.com/tmthrgd/go-hex"
)

const (
	defaultKey       = "Thats my Kung Fu"
	defaultPlaintext = "Two One Nine Two"
)

type encryptCommand struct {
	Key          string `long:"key" short:"k" description:"Cipher key as exactly 16 ASCII characters"`
	Plaintext    string `long:"plaintext" short:"p" description:"Plaintext block as exactly 16 ASCII characters"`
	KeyHex       string `long:"key-hex" description:"Cipher key as 32 hex characters, takes precedence over --key"`
	PlaintextHex string `long:"plaintext-hex" description:"Plaintext block as 32 hex characters, takes precedence over --plaintext"`
	Rounds       bool   `long:"rounds" description:"Also print the expanded round keys"`
	Trace        bool   `long:"trace" description:"Print the state after every step of every round"`

	global *globalOptions
	out    io.Writer
}

type encryptResult struct {
	Key        types.Key     `json:"key"`
	Plaintext  types.Block   `json:"plaintext"`
	Ciphertext types.Block   `json:"ciphertext"`
	RoundKeys  []types.Block `json:"round_keys,omitempty"`
}

func newEncryptCommand(global *globalOptions, out io.Writer) *encryptCommand {
	return &encryptCommand{
		Key:       defaultKey,
		Plaintext: defaultPlaintext,
		global:    global,
		out:       out,
	}
}

// encryptAlias Data of the encrypt command. The options live in a top-level
// group so they also apply when no command is given.
type encryptAlias struct {
	cmd *encryptCommand
}

func (x *encryptAlias) Execute(args []string) error {
	return x.cmd.Execute(args)
}

func (x *encryptCommand) Register(parser *flags.Parser) error {
	if _, err := parser.AddGroup("Encrypt Options", "Used by encrypt, which also runs when no command is given", x); err != nil {
		return err
	}
	_, err := parser.AddCommand(
		"encrypt",
		"Encrypt one 16-byte block with AES-128",
		"Encrypt a single 16-byte plaintext block under a 16-byte key "+
			"and print the ciphertext as 32 lowercase hex characters; "+
			"inputs of any other length are rejected, never padded",
		&encryptAlias{cmd: x},
	)
	return err
}

func inputBytes(name, ascii, hexValue string) ([]byte, error) {
	if hexValue != "" {
		buf, err := fasthex.DecodeString(hexValue)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %s: %w", name, err)
		}
		return buf, nil
	}
	for i := 0; i < len(ascii); i++ {
		if ascii[i] >= 0x80 {
			return nil, fmt.Errorf("invalid %s: %w at offset %d", name, types.ErrNotASCII, i)
		}
	}
	return []byte(ascii), nil
}

func (x *encryptCommand) Execute(_ []string) error {
	if err := x.global.apply(); err != nil {
		return err
	}

	key, err := inputBytes("key", x.Key, x.KeyHex)
	if err != nil {
		return err
	}
	plaintext, err := inputBytes("plaintext", x.Plaintext, x.PlaintextHex)
	if err != nil {
		return err
	}

	if err = aes128.Validate(key, plaintext); err != nil {
		return err
	}

	result := encryptResult{
		Key:       types.KeyFromBytes(key),
		Plaintext: types.BlockFromBytes(plaintext),
	}

	c := aes128.New(&result.Key)
	schedule := c.Schedule()

	if x.Trace {
		result.Ciphertext = c.EncryptTrace(result.Plaintext, func(stage aes128.Stage, round int, step aes128.Step, state aes128.State) {
			if step == aes128.StepAddRoundKey {
				_, _ = fmt.Fprintf(x.out, "round[%2d].k_sch %s\n", round, schedule[round])
			}
			_, _ = fmt.Fprintf(x.out, "round[%2d].%s %s\n", round, step, state.Block())
		})
	} else {
		result.Ciphertext = c.EncryptBlock(result.Plaintext)
	}

	utils.Debugf("Encrypt", "key %s plaintext %s ciphertext %s", result.Key, result.Plaintext, result.Ciphertext)

	if x.Rounds {
		result.RoundKeys = make([]types.Block, 0, len(schedule))
		for _, rk := range schedule {
			result.RoundKeys = append(result.RoundKeys, types.Block(rk))
		}
	}

	if x.global.JSON {
		buf, err := utils.MarshalJSON(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(x.out, "%s\n", buf)
		return err
	}

	for i, rk := range result.RoundKeys {
		if _, err := fmt.Fprintf(x.out, "round key %2d: %s\n", i, rk); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(x.out, result.Ciphertext)
	return err
}
