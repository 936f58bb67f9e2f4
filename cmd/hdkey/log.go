package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/shnpd/hdwallet/ecc"
	"github.com/shnpd/hdwallet/key"
)

var (
	// backendLog writes every subsystem to stderr so stdout only carries
	// command output.
	backendLog = btclog.NewBackend(os.Stderr)

	mainLog = backendLog.Logger("HDKY")
	keyLog  = backendLog.Logger("XKEY")
	eccLog  = backendLog.Logger("ECCX")

	subsystemLoggers = map[string]btclog.Logger{
		"HDKY": mainLog,
		"XKEY": keyLog,
		"ECCX": eccLog,
	}
)

func init() {
	key.UseLogger(keyLog)
	ecc.UseLogger(eccLog)
}

// setupLogging sets every subsystem to the named level.
func setupLogging(debugLevel string) error {
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", debugLevel)
	}

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
