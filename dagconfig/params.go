// Package dagconfig defines chain parameters for each chainweb version.
// These parameters differentiate networks from one another and supply the
// constants consumed by the consensus machinery, most importantly the
// proof-of-work difficulty engine.
package dagconfig

import (
	"github.com/4everaerial/chainweb-node/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// ChainwebNet represents which chainweb network a message or database
// belongs to.
type ChainwebNet uint32

// Constants used to indicate the chainweb network.
const (
	// Mainnet represents the main chainweb network.
	Mainnet ChainwebNet = 0x85f24ebc

	// Testnet represents the public test network.
	Testnet ChainwebNet = 0x2a96d347

	// Devnet represents the development network.
	Devnet ChainwebNet = 0x61c3f0d1

	// Simnet represents the simulation test network.
	Simnet ChainwebNet = 0x496d831f
)

const (
	// prereductionBits is the pre-reduction constant of proof-of-work
	// networks: the number of bits the absolute maximum target is
	// shifted right by to derive the network's easiest target. It keeps
	// early mining from being unrealistically fast.
	prereductionBits = 7

	// blockRate is the desired number of seconds between consecutive
	// blocks on a single chain.
	blockRate = 30

	// windowWidth is the number of blocks in one difficulty epoch. The
	// target is recomputed once per epoch and carried unchanged inside
	// it.
	windowWidth = 120
)

// Params defines a chainweb version by its parameters. Params values are
// read-only configuration, resolved once per process and shared freely.
type Params struct {
	// Name defines a human-readable identifier for the version.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net ChainwebNet

	// PowEnabled defines whether block hashes are checked against their
	// targets. Trivial test networks run with proof-of-work disabled.
	PowEnabled bool

	// TargetPrereductionBits is the right-shift applied to the absolute
	// maximum 256-bit value to derive this version's maximum target.
	// Zero on networks where proof-of-work is disabled.
	TargetPrereductionBits uint

	// BlockRate is the desired number of seconds between blocks on a
	// single chain.
	BlockRate int64

	// WindowWidth is the number of blocks per difficulty epoch.
	WindowWidth uint64

	// ChainCount is the number of braided chains in the web.
	ChainCount uint32
}

// MaxTarget returns the easiest (highest) target this version permits.
// Every target the difficulty engine produces for this version is bounded
// by it.
func (p *Params) MaxTarget() difficulty.Target {
	return difficulty.MaxTarget(p.TargetPrereductionBits)
}

// GenesisTarget returns the target every chain of this version is seeded
// with at genesis.
func (p *Params) GenesisTarget() difficulty.Target {
	return p.MaxTarget()
}

// MainnetParams defines the parameters for the main chainweb network.
var MainnetParams = Params{
	Name: "mainnet01",
	Net:  Mainnet,

	PowEnabled:             true,
	TargetPrereductionBits: prereductionBits,
	BlockRate:              blockRate,
	WindowWidth:            windowWidth,
	ChainCount:             20,
}

// TestnetParams defines the parameters for the public test network.
var TestnetParams = Params{
	Name: "testnet04",
	Net:  Testnet,

	PowEnabled:             true,
	TargetPrereductionBits: prereductionBits,
	BlockRate:              blockRate,
	WindowWidth:            windowWidth,
	ChainCount:             20,
}

// DevnetParams defines the parameters for the development network, where
// proof-of-work is disabled and every hash is a valid solution.
var DevnetParams = Params{
	Name: "development",
	Net:  Devnet,

	PowEnabled:             false,
	TargetPrereductionBits: 0,
	BlockRate:              blockRate,
	WindowWidth:            windowWidth,
	ChainCount:             10,
}

// SimnetParams defines the parameters for the simulation test network. It
// mines with proof-of-work enabled but without pre-reduction, so the first
// epochs solve near-instantly.
var SimnetParams = Params{
	Name: "simnet",
	Net:  Simnet,

	PowEnabled:             true,
	TargetPrereductionBits: 0,
	BlockRate:              blockRate,
	WindowWidth:            windowWidth,
	ChainCount:             10,
}

// ParamsForName returns the Params whose Name matches the given version
// name.
func ParamsForName(name string) (*Params, error) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &DevnetParams, &SimnetParams} {
		if params.Name == name {
			return params, nil
		}
	}
	return nil, errors.Errorf("unknown chainweb version %q", name)
}
