package main

import (
	"encoding/hex"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/crypto"
)

type masterCommand struct {
	Seed     string `long:"seed" short:"s" description:"Hex encoded seed of 16 to 64 bytes; a random 32 byte seed is generated if empty"`
	Neutered bool   `long:"neutered" description:"Also print the public counterpart of the master key"`
}

func newMasterCommand() *masterCommand {
	return &masterCommand{}
}

func (x *masterCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"master",
		"Create a master extended key from a seed",
		"Stretch a seed into a master extended private key for the "+
			"network selected with --network and print it; when "+
			"no --seed is given a fresh random seed is generated "+
			"and printed as well",
		x,
	)
	return err
}

func (x *masterCommand) Execute(_ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	var seed []byte
	if x.Seed == "" {
		seed, err = crypto.NewSeed()
		if err != nil {
			return fmt.Errorf("unable to generate seed: %v", err)
		}
		fmt.Fprintf(stdout, "seed:    %x\n", seed)
	} else {
		seed, err = hex.DecodeString(x.Seed)
		if err != nil {
			return fmt.Errorf("invalid seed hex: %v", err)
		}
	}

	master, err := s.engine.NewMaster(seed, s.net)
	if err != nil {
		return err
	}
	mainLog.Debugf("Created %v master key with fingerprint %08x",
		s.net, master.Fingerprint())

	fmt.Fprintf(stdout, "private: %v\n", master)
	if x.Neutered {
		fmt.Fprintf(stdout, "public:  %v\n", master.Neuter())
	}
	return nil
}
