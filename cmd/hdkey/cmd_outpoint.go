package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/outpoint"
)

type outpointCommand struct {
	Decode bool `long:"decode" description:"Decode a 36 byte hex outpoint instead of encoding txid:index"`
}

func newOutpointCommand() *outpointCommand {
	return &outpointCommand{}
}

func (x *outpointCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"outpoint",
		"Convert an outpoint between txid:index and its binary form",
		"Print the 36 byte serialization of each txid:index "+
			"argument in hex; with --decode, read hex "+
			"serializations and print them as txid:index",
		x,
	)
	return err
}

func (x *outpointCommand) Execute(args []string) error {
	if err := setupLogging(globalOpts.DebugLevel); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("at least one outpoint argument is required")
	}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)

		if x.Decode {
			b, err := hex.DecodeString(arg)
			if err != nil {
				return fmt.Errorf("invalid hex %q: %v", arg, err)
			}
			op, err := outpoint.Deserialize(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, op)
			continue
		}

		op, err := outpoint.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, hex.EncodeToString(op.Serialize()))
	}
	return nil
}
