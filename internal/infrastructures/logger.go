package infrastructures

import (
	"github.com/sirupsen/logrus"
)

// Every call site logs through the package-level logrus logger, so that is
// the instance that must carry the JSON formatter.
func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	return logrus.StandardLogger()
}
