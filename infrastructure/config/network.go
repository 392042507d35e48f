// Package config holds configuration shared by command-line tools.
package config

import (
	"fmt"
	"os"

	"github.com/4everaerial/chainweb-node/dagconfig"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which chainweb
// version is selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Devnet  bool `long:"devnet" description:"Use the development network"`
	Simnet  bool `long:"simnet" description:"Use the simulation test network"`

	ActiveNetParams *dagconfig.Params
}

// ResolveNetwork parses the network command line arguments and sets
// ActiveNetParams accordingly. It returns an error if more than one
// network was selected.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Mainnet is the default.
	networkFlags.ActiveNetParams = &dagconfig.MainnetParams

	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.TestnetParams
	}
	if networkFlags.Devnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.DevnetParams
	}
	if networkFlags.Simnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.SimnetParams
	}
	if numNets > 1 {
		err := errors.New("multiple network parameters (testnet, devnet, simnet) cannot be " +
			"used together. Please choose only one network")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}
	return nil
}
