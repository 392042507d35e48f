package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/4everaerial/chainweb-node/infrastructure/config"
	"github.com/4everaerial/chainweb-node/infrastructure/logger"
	"github.com/4everaerial/chainweb-node/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename    = "targetstat.log"
	defaultErrLogFilename = "targetstat_err.log"
)

var (
	// Default configuration options
	defaultHomeDir    = homeDir()
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".chainweb-node", "targetstat")
}

type configFlags struct {
	ShowVersion  bool    `short:"V" long:"version" description:"Display version information and exit"`
	Epochs       uint64  `long:"epochs" default:"10" description:"Number of epochs to simulate"`
	EpochSeconds []int64 `long:"epoch-seconds" description:"Observed elapsed seconds per simulated epoch. The last value repeats when fewer values than epochs are given; omit for steady-state timing."`
	ChainID      uint32  `long:"chain" description:"Chain ID used when recording epoch checkpoints"`
	DBPath       string  `long:"db" description:"If set, record each epoch's target into the database at this path"`
	ShowBits     bool    `long:"showbits" description:"Also print the binary rendering of each target"`
	LogLevel     string  `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	if cfg.Epochs == 0 {
		return nil, errors.New("--epochs must be at least 1")
	}
	for _, seconds := range cfg.EpochSeconds {
		if seconds < 0 {
			return nil, errors.Errorf("--epoch-seconds value %d is negative", seconds)
		}
	}

	logger.InitLog(defaultLogFile, defaultErrLogFile)
	err = logger.ParseAndSetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
