package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger for the given subsystem tag,
// creating it on first use. Packages call this from their log.go during
// package initialization.
func RegisterSubSystem(subsystemTag string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	log, ok := subsystems[subsystemTag]
	if !ok {
		log = BackendLog.Logger(subsystemTag)
		subsystems[subsystemTag] = log
	}
	return log
}

// InitLog attaches the log file and error log file to the backend log and
// starts it. Messages at LevelWarn and above are duplicated into the error
// log file. InitLog exits the process on failure, since a node that cannot
// log is not worth running.
func InitLog(logFile, errLogFile string) {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n",
			logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n",
			errLogFile, LevelWarn, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the logger: %s\n", err)
		os.Exit(1)
	}
	err = BackendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s\n", err)
		os.Exit(1)
	}

	SetLogLevels(LevelInfo)
}

// SetLogLevels sets the logging level for all registered subsystems.
func SetLogLevels(logLevel Level) {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	for _, log := range subsystems {
		log.SetLevel(logLevel)
	}
}

// ParseAndSetLogLevels parses the level string and applies it to all
// registered subsystems.
func ParseAndSetLogLevels(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("the log level %s doesn't exist", logLevel)
	}
	SetLogLevels(level)
	return nil
}
