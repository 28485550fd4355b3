// Package common provides the shared detection types used across the
// collision analysis pipeline.
package common

// DangerLevel classifies the collision threat posed by a detected object.
//
// Levels are ordered by severity: a higher value is more severe. The zero
// value is Safe so that an unscored object never reads as a threat.
type DangerLevel int

const (
	// Safe - far away, no concern.
	Safe DangerLevel = iota
	// LowWarning - detected but distant.
	LowWarning
	// ModerateWarning - close, attention needed.
	ModerateWarning
	// HighWarning - very close, impending danger.
	HighWarning
	// CriticalCollision - immediate collision risk.
	CriticalCollision
)

var dangerLevelNames = [...]string{
	Safe:              "SAFE",
	LowWarning:        "LOW_WARNING",
	ModerateWarning:   "MODERATE_WARNING",
	HighWarning:       "HIGH_WARNING",
	CriticalCollision: "CRITICAL_COLLISION",
}

// String returns the wire name of the danger level.
func (d DangerLevel) String() string {
	if d < Safe || d > CriticalCollision {
		return "UNKNOWN"
	}
	return dangerLevelNames[d]
}

// MoreSevere reports whether d outranks other.
func (d DangerLevel) MoreSevere(other DangerLevel) bool {
	return d > other
}
