package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/base58check"
)

type hexCommand struct {
	Decode  bool `long:"decode" description:"Convert hex input to the target representation instead of producing hex"`
	Reverse bool `long:"reverse" description:"Reverse the byte order, e.g. between display and internal transaction hashes"`
	Base58  bool `long:"base58check" description:"Use base58check text instead of raw bytes on the non-hex side"`
}

func newHexCommand() *hexCommand {
	return &hexCommand{}
}

func (x *hexCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"hex",
		"Convert between hex and raw or base58check data",
		"Encode the command line arguments (or stdin if there are "+
			"none) as hex; with --decode, turn hex back into raw "+
			"bytes; with --base58check the non-hex side is a "+
			"base58check string such as an extended key",
		x,
	)
	return err
}

func (x *hexCommand) Execute(args []string) error {
	if err := setupLogging(globalOpts.DebugLevel); err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	if x.Decode {
		data, err := hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("invalid hex: %v", err)
		}
		if x.Reverse {
			reverse(data)
		}

		if x.Base58 {
			fmt.Fprintln(stdout, base58check.Encode(data))
			return nil
		}
		_, err = stdout.Write(data)
		return err
	}

	data := []byte(input)
	if x.Base58 {
		data, err = base58check.Decode(strings.TrimSpace(input))
		if err != nil {
			return err
		}
	}
	if x.Reverse {
		reverse(data)
	}

	fmt.Fprintln(stdout, hex.EncodeToString(data))
	return nil
}

// readInput joins the arguments with spaces, falling back to all of stdin.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	mainLog.Debugf("Reading input from stdin")
	content, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("unable to read stdin: %v", err)
	}
	return string(content), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
