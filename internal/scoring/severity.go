package scoring

// Severity classifies a percentage score.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityVeryHigh Severity = "very_high"
)

// Lower bounds (inclusive) of each tier above Low.
const (
	ModerateThreshold = 40.0
	HighThreshold     = 70.0
	VeryHighThreshold = 80.0
)

// Severities returns every level, lowest first.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityModerate, SeverityHigh, SeverityVeryHigh}
}

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh, SeverityVeryHigh:
		return true
	}
	return false
}

// Label returns the display name of the level.
func (s Severity) Label() string {
	switch s {
	case SeverityLow:
		return "Baixo"
	case SeverityModerate:
		return "Moderado"
	case SeverityHigh:
		return "Alto"
	case SeverityVeryHigh:
		return "Muito Alto"
	default:
		return string(s)
	}
}

// Rank returns the position of s in the ordered scale (Low = 0), or -1 when
// s is not a known level.
func (s Severity) Rank() int {
	for i, level := range Severities() {
		if s == level {
			return i
		}
	}
	return -1
}

// AtLeast reports whether s is the same as or more severe than other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= 0 && s.Rank() >= other.Rank()
}

// Classify maps a percentage to its severity level. Ties go to the higher tier.
func Classify(pct float64) Severity {
	switch {
	case pct >= VeryHighThreshold:
		return SeverityVeryHigh
	case pct >= HighThreshold:
		return SeverityHigh
	case pct >= ModerateThreshold:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
