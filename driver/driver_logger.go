package driver

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/rs/zerolog"
)

type driverLogger struct {
	logger zerolog.Logger
}

// NewSDKLogger adapts logger to the aws.Logger interface. SDK output is
// written at debug level.
func NewSDKLogger(logger zerolog.Logger) aws.Logger {
	return driverLogger{logger: logger.With().Str("component", "aws-sdk").Logger()}
}

// Log logs the parameters to the preconfigured logger.
func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
