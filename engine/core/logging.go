package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

var singleton *log.Logger

func getLogger() *log.Logger {
	once.Do(func() {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "ember",
		})
		l.SetLevel(log.InfoLevel)
		singleton = l
	})
	return singleton
}

// SetLogLevel adjusts the runtime's log verbosity (e.g. log.DebugLevel to
// see per-second FPS output).
func SetLogLevel(lvl log.Level) { getLogger().SetLevel(lvl) }

func LogDebug(msg string, args ...interface{}) { getLogger().Debugf(msg, args...) }
func LogInfo(msg string, args ...interface{})  { getLogger().Infof(msg, args...) }
func LogWarn(msg string, args ...interface{})  { getLogger().Warnf(msg, args...) }
func LogError(msg string, args ...interface{}) { getLogger().Errorf(msg, args...) }
func LogFatal(msg string, args ...interface{}) { getLogger().Fatalf(msg, args...) }
