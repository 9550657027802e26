package models

import "time"

// CommitRecord contains the identity and timestamp of the latest git commit
type CommitRecord struct {
	// FullHash is the full commit hash as printed by git (%H)
	FullHash string
	// ShortHash is the abbreviated commit hash (%h)
	ShortHash string
	// CommitTime keeps the UTC offset git reported (%ci)
	CommitTime time.Time
}

// NewCommitRecord creates a new CommitRecord
func NewCommitRecord(fullHash, shortHash string, commitTime time.Time) CommitRecord {
	return CommitRecord{
		FullHash:   fullHash,
		ShortHash:  shortHash,
		CommitTime: commitTime,
	}
}

// UTC returns the commit time converted to UTC
func (c CommitRecord) UTC() time.Time {
	return c.CommitTime.UTC()
}
