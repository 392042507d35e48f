// targetstat is an operator tool for inspecting the difficulty engine: it
// prints a chainweb version's target bounds and simulates epoch-by-epoch
// retargeting under a chosen block-arrival timeline, optionally recording
// the resulting targets as epoch checkpoints.
package main

import (
	"fmt"
	"os"

	"github.com/4everaerial/chainweb-node/domain/consensus/processes/difficultymanager"
	"github.com/4everaerial/chainweb-node/infrastructure/dbaccess"
	"github.com/4everaerial/chainweb-node/util/panics"
	"github.com/4everaerial/chainweb-node/util/ustime"
	"github.com/4everaerial/chainweb-node/version"
	"github.com/pkg/errors"
)

var spawn = panics.GoroutineWrapperFunc(log)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	params := cfg.ActiveNetParams
	log.Infof("targetstat version %s", version.Version())
	log.Infof("Version %s: pow enabled: %t, block rate: %ds, window width: %d blocks",
		params.Name, params.PowEnabled, params.BlockRate, params.WindowWidth)
	log.Infof("Max target: %s", params.MaxTarget())

	var dbContext *dbaccess.DatabaseContext
	if cfg.DBPath != "" {
		dbContext, err = dbaccess.New(cfg.DBPath)
		if err != nil {
			panics.Exit(log, fmt.Sprintf("Error opening database at %s: %+v", cfg.DBPath, err))
		}
		defer dbContext.Close()
	}

	doneChan := make(chan error)
	spawn(func() {
		doneChan <- simulateEpochs(cfg, dbContext)
	})
	if err := <-doneChan; err != nil {
		panics.Exit(log, fmt.Sprintf("%+v", err))
	}
}

func simulateEpochs(cfg *configFlags, dbContext *dbaccess.DatabaseContext) error {
	params := cfg.ActiveNetParams
	dm := difficultymanager.New(params)
	target := params.GenesisTarget()
	steadySeconds := params.BlockRate * int64(params.WindowWidth)

	for epochIndex := uint64(1); epochIndex <= cfg.Epochs; epochIndex++ {
		seconds := steadySeconds
		if len(cfg.EpochSeconds) > 0 {
			position := int(epochIndex - 1)
			if position >= len(cfg.EpochSeconds) {
				position = len(cfg.EpochSeconds) - 1
			}
			seconds = cfg.EpochSeconds[position]
		}

		elapsed := ustime.SpanFromSeconds(seconds)
		newTarget, err := dm.AdjustTarget(elapsed, target)
		if err != nil {
			return errors.Wrapf(err, "adjusting target at epoch %d", epochIndex)
		}

		log.Infof("Epoch %d: elapsed %s, target %s -> %s", epochIndex, elapsed, target, newTarget)
		if cfg.ShowBits {
			fmt.Println(newTarget.BitString())
		}

		if dbContext != nil {
			err = dbContext.StoreEpochTarget(cfg.ChainID, epochIndex, newTarget)
			if err != nil {
				return errors.Wrapf(err, "recording epoch %d checkpoint", epochIndex)
			}
		}

		target = newTarget
	}
	return nil
}
