package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/shnpd/hdwallet/ecc"
	"github.com/shnpd/hdwallet/key"
	"github.com/shnpd/hdwallet/netparams"
)

type globalOptions struct {
	Network    string `long:"network" short:"n" description:"Network whose version tags new keys carry" default:"mainnet" choice:"mainnet" choice:"testnet" choice:"simnet"`
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}" default:"info"`
	Backend    string `long:"backend" short:"b" description:"Curve arithmetic backend; bigcurve blinds base point multiplications with the context randomness" default:"secp256k1" choice:"secp256k1" choice:"bigcurve"`
}

const (
	backendSecp256k1 = "secp256k1"
	backendBigCurve  = "bigcurve"
)

var (
	globalOpts = &globalOptions{}

	// stdout receives command output.
	stdout io.Writer = os.Stdout
)

type subCommand interface {
	Register(parser *flags.Parser) error
}

func main() {
	parser := flags.NewParser(globalOpts, flags.Default)

	err := registerCommands(parser)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		flagErr, isFlagErr := err.(*flags.Error)
		if isFlagErr && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		// go-flags already printed its own parse errors.
		if !isFlagErr {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func registerCommands(parser *flags.Parser) error {
	commands := []subCommand{
		newMasterCommand(),
		newDeriveCommand(),
		newNeuterCommand(),
		newInspectCommand(),
		newHexCommand(),
		newOutpointCommand(),
	}

	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			return err
		}
	}

	return nil
}

// session is what every key command needs: the selected network and an
// engine backed by a freshly randomized context. close must be called when
// the command is done.
type session struct {
	net    netparams.Network
	engine *key.Engine
	ctx    *ecc.Context
}

func newSession() (*session, error) {
	if err := setupLogging(globalOpts.DebugLevel); err != nil {
		return nil, err
	}

	net, err := netparams.ParseNetwork(globalOpts.Network)
	if err != nil {
		return nil, err
	}

	backend, err := newBackend(globalOpts.Backend)
	if err != nil {
		return nil, err
	}

	ctx := ecc.NewContext(backend, rand.Reader)
	if err := ctx.Randomize(); err != nil {
		ctx.Destroy()
		return nil, err
	}

	return &session{
		net:    net,
		engine: key.NewEngine(ctx),
		ctx:    ctx,
	}, nil
}

func (s *session) close() {
	s.ctx.Destroy()
}

// newBackend returns the curve provider selected with --backend.
func newBackend(name string) (ecc.Provider, error) {
	switch name {
	case "", backendSecp256k1:
		return ecc.NewSecp256k1(), nil

	case backendBigCurve:
		return ecc.NewBigCurve(), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
