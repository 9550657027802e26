package stamp

import (
	"strings"
	"time"

	"github.com/wahlandcase/vstamp/internal/models"
)

const (
	// logLines is the number of lines git.LogFormat produces
	logLines = 3

	// TimestampLayout matches git's %ci, e.g. "2024-03-05 10:15:00 +1300"
	TimestampLayout = "2006-01-02 15:04:05 -0700"
)

// Parse turns the raw output of git.Client.LatestCommit into a CommitRecord.
// The output must be exactly three newline separated lines.
func Parse(raw string) (models.CommitRecord, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) != logLines {
		return models.CommitRecord{}, &FormatError{Lines: len(lines)}
	}

	commitTime, err := ParseTimestamp(lines[2])
	if err != nil {
		return models.CommitRecord{}, err
	}

	return models.NewCommitRecord(lines[0], lines[1], commitTime), nil
}

// ParseTimestamp parses a "YYYY-MM-DD HH:MM:SS ±HHMM" timestamp, keeping its offset
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, &TimestampError{Value: value, Err: err}
	}
	return t, nil
}
