package logging_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentictools/taskboard/internal/logging"
)

func TestEventFormatter(t *testing.T) {
	t.Parallel()

	formatter := &logging.EventFormatter{SystemName: "taskboard"}

	entry := &logrus.Entry{
		Time:    time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "board hydrated",
		Data:    logrus.Fields{"groups": 2},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "time=2024-06-01T12:00:00Z")
	assert.Contains(t, line, "source=taskboard")
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, `msg="board hydrated"`)
	assert.Contains(t, line, "groups=2")
	assert.Contains(t, line, "event=")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	log := logging.New("")

	// Redirect to a buffer to prove nothing panics and the logger is usable.
	var buf bytes.Buffer

	log.SetOutput(&buf)
	log.Info("hello")

	assert.Contains(t, buf.String(), "hello")
}
