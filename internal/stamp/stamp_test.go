package stamp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHash  = "abcdef1234567890"
	testShort = "abcdef1"
)

func TestParse(t *testing.T) {
	rec, err := Parse(testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300")
	require.NoError(t, err)

	assert.Equal(t, testHash, rec.FullHash)
	assert.Equal(t, testShort, rec.ShortHash)
	_, offset := rec.CommitTime.Zone()
	assert.Equal(t, 13*60*60, offset)
	assert.Equal(t, "2024-03-04 21:15:00", rec.UTC().Format("2006-01-02 15:04:05"))
}

func TestParseLineCount(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		lines int
	}{
		{"two lines", testHash + "\n" + testShort, 2},
		{"four lines", testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300\nextra", 4},
		{"trailing newline", testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300\n", 4},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.lines, formatErr.Lines)
			assert.Contains(t, err.Error(), "expected 3 lines")
		})
	}
}

func TestParseTimestampErrors(t *testing.T) {
	tests := []string{
		"2024-03-05T10:15:00+13:00",
		"2024-03-05 10:15:00",
		"yesterday",
		"2024-13-05 10:15:00 +0000",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			_, err := Parse(testHash + "\n" + testShort + "\n" + value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTimestamp)
			assert.NotErrorIs(t, err, ErrFormat)

			var tsErr *TimestampError
			require.True(t, errors.As(err, &tsErr))
			assert.Equal(t, value, tsErr.Value)
		})
	}
}

func TestNewStampConvertsToUTC(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		date      string
		year      string
		month     string
		time      string
	}{
		{"positive offset crosses day", "2024-03-05 10:15:00 +1300", "2024-03-04", "2024", "March", "21:15:00"},
		{"negative offset crosses year", "2023-12-31 20:30:45 -0500", "2024-01-01", "2024", "January", "01:30:45"},
		{"already utc", "2022-07-14 08:00:00 +0000", "2022-07-14", "2022", "July", "08:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(testHash + "\n" + testShort + "\n" + tt.timestamp)
			require.NoError(t, err)

			s := NewStamp("2.0", rec)
			assert.Equal(t, "2.0 ("+tt.date+")", s.Version)
			assert.Equal(t, "2.0", s.VersionNumber)
			assert.Equal(t, testHash, s.Revision)
			assert.Equal(t, tt.date, s.Date)
			assert.Equal(t, tt.year, s.Year)
			assert.Equal(t, tt.month, s.Month)
			assert.Equal(t, tt.time, s.Time)
			assert.Equal(t, tt.date+" "+tt.time+" UTC (rev. "+testShort+")", s.SourceControlVersion)
		})
	}
}

func TestRenderTeX(t *testing.T) {
	rec, err := Parse(testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300")
	require.NoError(t, err)

	want := `% WARNING: THIS FILE IS AUTOMATICALLY GENERATED BY vstamp. DO NOT EDIT THIS FILE
\newcommand{\Version}{2.0 (2024-03-04)}
\newcommand{\VersionNumber}{2.0}
\newcommand{\SourceControlRevision}{abcdef1234567890}
\newcommand{\SourceControlDateDoc}{2024-03-04}
\newcommand{\SourceControlYearDoc}{2024}
\newcommand{\SourceControlMonthDoc}{March}
\newcommand{\SourceControlTimeDoc}{21:15:00}
\newcommand{\SourceControlVersion}{2024-03-04 21:15:00 UTC (rev. abcdef1)}
`
	assert.Equal(t, want, RenderTeX(NewStamp("2.0", rec)))
}

func TestRenderR(t *testing.T) {
	rec, err := Parse(testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300")
	require.NoError(t, err)

	want := `# WARNING: THIS FILE IS AUTOMATICALLY GENERATED BY vstamp. DO NOT EDIT THIS FILE
Version<-"2.0 (2024-03-04)"
VersionNumber<-"2.0"
SourceControlRevision<-"abcdef1234567890"
SourceControlDateDoc<-"2024-03-04"
SourceControlYearDoc<-"2024"
SourceControlMonthDoc<-"March"
SourceControlTimeDoc<-"21:15:00"
SourceControlVersion<-"2024-03-04 21:15:00 UTC (rev. abcdef1)"
`
	assert.Equal(t, want, RenderR(NewStamp("2.0", rec)))
}

func TestRenderHeader(t *testing.T) {
	rec, err := Parse(testHash + "\n" + testShort + "\n2024-03-05 10:15:00 +1300")
	require.NoError(t, err)

	want := `// WARNING: THIS FILE IS AUTOMATICALLY GENERATED BY vstamp. DO NOT EDIT THIS FILE
#ifndef VERSION_H_
#define VERSION_H_
#define VERSION "2.0 (2024-03-04)"
#define VERSION_NUMBER "2.0"
#define SOURCE_CONTROL_REVISION abcdef1234567890
#define SOURCE_CONTROL_DATE "2024-03-04"
#define SOURCE_CONTROL_YEAR "2024"
#define SOURCE_CONTROL_MONTH "March"
#define SOURCE_CONTROL_TIME "21:15:00"
#define SOURCE_CONTROL_VERSION "2024-03-04 21:15:00 UTC (rev. abcdef1)"
#endif
`
	assert.Equal(t, want, RenderHeader(NewStamp("2.0", rec)))
}
