package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/key"
)

type deriveCommand struct {
	Key      string `long:"key" short:"k" description:"Extended key to derive from" required:"true"`
	Path     string `long:"path" short:"p" description:"Derivation path such as m/44'/0'/0'/0/1; ', h and H mark hardened components" required:"true"`
	Neutered bool   `long:"neutered" description:"Print the public counterpart of the derived key instead"`
}

func newDeriveCommand() *deriveCommand {
	return &deriveCommand{}
}

func (x *deriveCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"derive",
		"Derive a descendant of an extended key",
		"Walk the given derivation path from --key and print the "+
			"resulting extended key; hardened components require "+
			"a private key",
		x,
	)
	return err
}

func (x *deriveCommand) Execute(_ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	parent, err := s.engine.Parse(x.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %v", err)
	}

	path, err := key.ParsePath(x.Path)
	if err != nil {
		return err
	}

	// Hardened derivation from a public key is a programming error in
	// the key package, so reject it here as a user error.
	if !parent.IsPrivate() && path.HasHardened() {
		return fmt.Errorf("path %v has hardened components but the "+
			"key is public", path)
	}

	child, err := parent.DerivePath(path)
	if err != nil {
		return err
	}
	mainLog.Debugf("Derived %v at depth %d", path, child.Depth())

	if x.Neutered {
		child = child.Neuter()
	}
	fmt.Fprintln(stdout, child)
	return nil
}
