package slippi

import "github.com/blang/semver/v4"

// RecorderVersion identifies the version of the Slippi recorder that wrote a
// replay. All optional decoder fields are gated on a minimum RecorderVersion;
// comparisons are total ordering by lexicographic (major, minor, revision)
// tuple compare, per the wire format's own versioning scheme.
//
// It wraps semver.Version (the teacher's own comparison idiom) rather than
// reimplementing tuple compare, since the build component of the wire
// format's version triple is unused after 2.0.0 and semver.Version already
// gives us GTE/LTE/LT/GT for free.
type RecorderVersion struct {
	semver.Version
}

// NewRecorderVersion constructs a RecorderVersion from its three numeric
// components.
func NewRecorderVersion(major, minor, revision uint64) RecorderVersion {
	return RecorderVersion{semver.Version{Major: major, Minor: minor, Patch: revision}}
}

// GTE reports whether v is greater than or equal to other.
func (v RecorderVersion) GTE(other RecorderVersion) bool {
	return v.Version.GTE(other.Version)
}

// LT reports whether v is strictly less than other.
func (v RecorderVersion) LT(other RecorderVersion) bool {
	return v.Version.LT(other.Version)
}

// AtLeast is a convenience wrapper for the common "is field f present"
// check: v.AtLeast(major, minor, revision).
func (v RecorderVersion) AtLeast(major, minor, revision uint64) bool {
	return v.GTE(NewRecorderVersion(major, minor, revision))
}

func (v RecorderVersion) String() string {
	return v.Version.String()
}
