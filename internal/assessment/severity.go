package assessment

// Severity labels. Each classifier's bands partition its full score range
// with no gaps; labels are never derived from an out-of-range score because
// scorers bound their totals first.
const (
	SeverityMinimal          = "minimal"
	SeverityMild             = "mild"
	SeverityModerate         = "moderate"
	SeverityModeratelySevere = "moderately severe"
	SeveritySevere           = "severe"
)

// StressSeverity maps a 0-27 stress total onto PHQ-9-style bands.
func StressSeverity(score int) string {
	switch {
	case score <= 4:
		return SeverityMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	case score <= 19:
		return SeverityModeratelySevere
	default:
		return SeveritySevere
	}
}

// AnxietySeverity maps a 0-21 GAD-7 total onto the standard bands.
func AnxietySeverity(score int) string {
	switch {
	case score <= 4:
		return SeverityMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// PTSDSeverity classifies a 0-80 PCL-5 total together with the DSM-5
// criteria flags. The score bands alone would be naive: a presentation that
// satisfies the joint criteria rule is floored at moderate regardless of how
// low the raw total is.
func PTSDSeverity(score int, crit Criteria) string {
	var band string
	switch {
	case score <= 20:
		band = SeverityMinimal
	case score <= 40:
		band = SeverityMild
	case score <= 60:
		band = SeverityModerate
	default:
		band = SeveritySevere
	}
	if crit.Met() && (band == SeverityMinimal || band == SeverityMild) {
		return SeverityModerate
	}
	return band
}
