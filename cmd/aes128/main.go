package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Concord1/AES-128/utils"
	"github.com/jessevdk/go-flags"
)

type globalOptions struct {
	LogLevel string `long:"loglevel" description:"Logging level" choice:"error" choice:"info" choice:"notice" choice:"debug" default:"info"`
	LogFile  bool   `long:"logfile" description:"Include source file and line in log lines"`
	JSON     bool   `long:"json" description:"Print the result of the command as JSON"`
}

func (o *globalOptions) apply() error {
	level, err := utils.ParseLogLevel(o.LogLevel)
	if err != nil {
		return err
	}
	utils.GlobalLogLevel = level
	utils.LogFile = o.LogFile
	return nil
}

func newParser(opts *globalOptions, out io.Writer, parserOptions flags.Options) (*flags.Parser, *encryptCommand, error) {
	parser := flags.NewParser(opts, parserOptions)
	parser.SubcommandsOptional = true

	encrypt := newEncryptCommand(opts, out)
	if err := encrypt.Register(parser); err != nil {
		return nil, nil, err
	}
	selftest := newSelftestCommand(opts, out)
	if err := selftest.Register(parser); err != nil {
		return nil, nil, err
	}
	return parser, encrypt, nil
}

// run Parses args and executes the selected command. Without a command encrypt
// runs with the top-level encrypt options.
func run(args []string, out io.Writer, parserOptions flags.Options) error {
	opts := &globalOptions{}
	parser, encrypt, err := newParser(opts, out, parserOptions)
	if err != nil {
		return err
	}

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	if parser.Active == nil {
		return encrypt.Execute(rest)
	}
	return nil
}

func main() {
	// stdout carries results only
	utils.LogWriter = os.Stderr

	if err := run(os.Args[1:], os.Stdout, flags.HelpFlag|flags.PassDoubleDash); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, err)
			return
		}
		utils.Fatalf("aes128: %s", err)
	}
}
