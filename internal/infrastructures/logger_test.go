package infrastructures

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerUsesJSONFormatter(t *testing.T) {
	logger := GetLogger()

	assert.Same(t, logrus.StandardLogger(), logger)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
