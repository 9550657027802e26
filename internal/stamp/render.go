package stamp

import (
	"strings"

	"github.com/wahlandcase/vstamp/internal/models"
)

const generatedWarning = "WARNING: THIS FILE IS AUTOMATICALLY GENERATED BY vstamp. DO NOT EDIT THIS FILE"

// NewStamp derives every rendered field from one commit record
func NewStamp(versionNumber string, rec models.CommitRecord) models.Stamp {
	utc := rec.UTC()
	date := utc.Format("2006-01-02")

	return models.Stamp{
		Version:              versionNumber + " (" + date + ")",
		VersionNumber:        versionNumber,
		Revision:             rec.FullHash,
		Date:                 date,
		Year:                 utc.Format("2006"),
		Month:                utc.Format("January"),
		Time:                 utc.Format("15:04:05"),
		SourceControlVersion: utc.Format("2006-01-02 15:04:05 MST") + " (rev. " + rec.ShortHash + ")",
	}
}

// RenderTeX renders the LaTeX macro file
func RenderTeX(s models.Stamp) string {
	var b strings.Builder
	b.WriteString("% " + generatedWarning + "\n")

	macro := func(name, value string) {
		b.WriteString(`\newcommand{\` + name + "}{" + value + "}\n")
	}
	macro("Version", s.Version)
	macro("VersionNumber", s.VersionNumber)
	macro("SourceControlRevision", s.Revision)
	macro("SourceControlDateDoc", s.Date)
	macro("SourceControlYearDoc", s.Year)
	macro("SourceControlMonthDoc", s.Month)
	macro("SourceControlTimeDoc", s.Time)
	macro("SourceControlVersion", s.SourceControlVersion)

	return b.String()
}

// RenderR renders the R source file
func RenderR(s models.Stamp) string {
	var b strings.Builder
	b.WriteString("# " + generatedWarning + "\n")

	assign := func(name, value string) {
		b.WriteString(name + `<-"` + value + "\"\n")
	}
	assign("Version", s.Version)
	assign("VersionNumber", s.VersionNumber)
	assign("SourceControlRevision", s.Revision)
	assign("SourceControlDateDoc", s.Date)
	assign("SourceControlYearDoc", s.Year)
	assign("SourceControlMonthDoc", s.Month)
	assign("SourceControlTimeDoc", s.Time)
	assign("SourceControlVersion", s.SourceControlVersion)

	return b.String()
}

// RenderHeader renders the C/C++ header. The revision is emitted unquoted.
func RenderHeader(s models.Stamp) string {
	var b strings.Builder
	b.WriteString("// " + generatedWarning + "\n")
	b.WriteString("#ifndef VERSION_H_\n")
	b.WriteString("#define VERSION_H_\n")

	define := func(name, value string) {
		b.WriteString("#define " + name + ` "` + value + "\"\n")
	}
	define("VERSION", s.Version)
	define("VERSION_NUMBER", s.VersionNumber)
	b.WriteString("#define SOURCE_CONTROL_REVISION " + s.Revision + "\n")
	define("SOURCE_CONTROL_DATE", s.Date)
	define("SOURCE_CONTROL_YEAR", s.Year)
	define("SOURCE_CONTROL_MONTH", s.Month)
	define("SOURCE_CONTROL_TIME", s.Time)
	define("SOURCE_CONTROL_VERSION", s.SourceControlVersion)
	b.WriteString("#endif\n")

	return b.String()
}

// Render renders the given artifact kind
func Render(kind models.ArtifactKind, s models.Stamp) string {
	switch kind {
	case models.ArtifactTeX:
		return RenderTeX(s)
	case models.ArtifactR:
		return RenderR(s)
	case models.ArtifactHeader:
		return RenderHeader(s)
	default:
		return ""
	}
}
