// Package logging configures the application event log. Output goes to
// a rotating file so a long-lived board never grows an unbounded log,
// and each entry carries a generated event id for correlation.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// EventFormatter renders log entries as single-line event records.
type EventFormatter struct {
	SystemName string
}

// Format implements logrus.Formatter.
func (f *EventFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	if entry.Buffer != nil {
		b = entry.Buffer
	}

	fmt.Fprintf(b, "time=%s ", entry.Time.UTC().Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(b, "source=%s ", f.SystemName)
	fmt.Fprintf(b, "level=%s ", strings.ToUpper(entry.Level.String()))
	fmt.Fprintf(b, "event=%s ", uuid.NewString())
	fmt.Fprintf(b, "msg=%q", entry.Message)

	for key, value := range entry.Data {
		fmt.Fprintf(b, " %s=%v", key, value)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// New returns a logger writing rotated records to path. An empty path
// returns a logger that discards everything, so callers never need to
// nil-check.
func New(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&EventFormatter{SystemName: "taskboard"})
	log.SetLevel(logrus.DebugLevel)

	if path == "" {
		log.SetOutput(io.Discard)

		return log
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})

	return log
}
