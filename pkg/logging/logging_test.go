package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/arthur-debert/sglint/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("scanner.sql")
	logger.Debug().Msg("scan started")

	output := buf.String()
	testutil.AssertContains(t, output, "scanner.sql")
	testutil.AssertContains(t, output, "scan started")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	start := time.Now().Add(-2 * time.Second)
	LogDuration(start, "evaluate")

	output := buf.String()
	testutil.AssertContains(t, output, "evaluate")
	testutil.AssertContains(t, output, "duration")
}
