package models

// Stamp holds the rendered values every generated file embeds.
// All output formats are produced from a single Stamp so they cannot diverge.
type Stamp struct {
	// Version is "<number> (<date>)", e.g. "2.0 (2024-03-04)"
	Version string
	// VersionNumber is the configured release number
	VersionNumber string
	// Revision is the full commit hash
	Revision string
	// Date is the UTC commit date (YYYY-MM-DD)
	Date string
	// Year is the UTC commit year
	Year string
	// Month is the English name of the UTC commit month
	Month string
	// Time is the UTC commit time of day (HH:MM:SS)
	Time string
	// SourceControlVersion is "<date> <time> UTC (rev. <short hash>)"
	SourceControlVersion string
}
