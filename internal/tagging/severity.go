package tagging

// Severity grades how serious a set of error tags is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// criticalTags indicate the learner likely lacks the underlying concept.
var criticalTags = map[Tag]bool{
	TagIncompleteAddition: true,
	TagCountingError:      true,
	TagDoubleMajorError:   true,
}

// moderateTags indicate a partially applied strategy.
var moderateTags = map[Tag]bool{
	TagComplementMiss:      true,
	TagDoubleMissLow:       true,
	TagDoubleMissHigh:      true,
	TagNearDoubleWrongBase: true,
}

// SeverityOf derives a severity level from a tag set. Critical outranks
// moderate when tags from both groups are present. An empty set grades
// as minor: the rule set has no distinct "correct" level, so minor doubles
// as the no-error default.
func SeverityOf(tags []Tag) Severity {
	for _, t := range tags {
		if criticalTags[t] {
			return SeverityCritical
		}
	}
	for _, t := range tags {
		if moderateTags[t] {
			return SeverityModerate
		}
	}
	return SeverityMinor
}
