package amongdata

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// LogInit initializes the logger with the specified level.
// The level is one of DEBUG, INFO, WARNING, ERROR or FATAL; anything else
// selects debug output.
//
// Resolvers never log. LogInit only exists so tools built on this package
// share the go-i2p logger configuration.
func LogInit(level int) {
	logger.InitializeGoI2PLogger()

	switch level {
	case DEBUG, INFO:
		os.Setenv("DEBUG_I2P", "debug")
	case WARNING:
		os.Setenv("DEBUG_I2P", "warn")
	case ERROR:
		os.Setenv("DEBUG_I2P", "error")
	case FATAL:
		os.Setenv("DEBUG_I2P", "fatal")
		os.Setenv("WARNFAIL_I2P", "true")
	default:
		os.Setenv("DEBUG_I2P", "debug")
	}

	log.WithFields(logger.Fields{
		"at":        "amongdata.LogInit",
		"DEBUG_I2P": os.Getenv("DEBUG_I2P"),
	}).Debug("logger initialized")
}
