package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/key"
)

type inspectCommand struct {
	Key     string `long:"key" short:"k" description:"Extended key to inspect" required:"true"`
	ShowWIF bool   `long:"wif" description:"Also print the secret in wallet import format"`
}

func newInspectCommand() *inspectCommand {
	return &inspectCommand{}
}

func (x *inspectCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"inspect",
		"Print every field of an extended key",
		"Decode --key and print its network, depth, fingerprints, "+
			"child index, chain code and key material in hex",
		x,
	)
	return err
}

func (x *inspectCommand) Execute(_ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	k, err := s.engine.Parse(x.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %v", err)
	}

	kind := "public"
	if k.IsPrivate() {
		kind = "private"
	}

	fmt.Fprintf(stdout, "network:            %v\n", k.Network())
	fmt.Fprintf(stdout, "type:               %s\n", kind)
	fmt.Fprintf(stdout, "depth:              %d\n", k.Depth())
	fmt.Fprintf(stdout, "parent fingerprint: %08x\n",
		k.ParentFingerprint())
	fmt.Fprintf(stdout, "child index:        %s (%08x)\n",
		key.PathComponentString(k.ChildIndex()), k.ChildIndex())
	fmt.Fprintf(stdout, "fingerprint:        %08x\n", k.Fingerprint())
	fmt.Fprintf(stdout, "chain code:         %x\n", k.ChainCode())
	if k.IsPrivate() {
		fmt.Fprintf(stdout, "secret key:         %x\n", k.Key())
	}
	fmt.Fprintf(stdout, "public key:         %x\n", k.PublicKey())
	fmt.Fprintf(stdout, "serialized:         %x\n", k.Serialize())

	if x.ShowWIF && k.IsPrivate() {
		wif, err := k.WIF()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wif:                %s\n", wif)
	}
	return nil
}
