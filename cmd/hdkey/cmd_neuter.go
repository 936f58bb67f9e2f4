package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type neuterCommand struct {
	Key string `long:"key" short:"k" description:"Extended key to neuter" required:"true"`
}

func newNeuterCommand() *neuterCommand {
	return &neuterCommand{}
}

func (x *neuterCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"neuter",
		"Print the public counterpart of an extended key",
		"Strip the secret from --key and print the extended public "+
			"key; a public key is printed unchanged",
		x,
	)
	return err
}

func (x *neuterCommand) Execute(_ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	k, err := s.engine.Parse(x.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %v", err)
	}

	fmt.Fprintln(stdout, k.Neuter())
	return nil
}
