// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger setup and component loggers

package logging_test

import (
	"testing"

	"github.com/arthur-debert/springclean/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"info", 1, zerolog.InfoLevel},
		{"debug", 2, zerolog.DebugLevel},
		{"trace", 3, zerolog.TraceLevel},
		{"beyond_trace", 9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger_DoesNotPanic(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("dedupe")
	logger.Info().Str("layout", "IconState.plist").Msg("component logger works")
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(2)

	done := logging.LogOperationStart(logging.GetLogger("test"), "dedupe-pass")
	assert.NotPanics(t, done)
}
