package tagging

// Tag identifies a diagnosed error pattern in a learner's answer.
//
// Tag values are a stable vocabulary: feedback templates and downstream
// analytics key off the literal strings, so existing values must never be
// renamed. New tags may be appended.
type Tag string

const (
	// TagParseError means the question text did not contain two operands.
	TagParseError Tag = "parse_error"

	// TagComplementMiss means the learner made 10 but lost the remainder,
	// or landed one short of a sum at or above the make-10 boundary.
	TagComplementMiss Tag = "complement_miss"

	// Doubles errors (both operands equal).
	TagDoubleMissLow    Tag = "double_miss_low"
	TagDoubleMissHigh   Tag = "double_miss_high"
	TagDoubleMajorError Tag = "double_major_error"

	// Near-double errors (operands differ by exactly 1).
	TagNearDoubleWrongBase   Tag = "near_double_wrong_base"
	TagNearDoubleWrongDouble Tag = "near_double_wrong_double"
	TagNearDoubleOff         Tag = "near_double_off"

	// TagIncompleteAddition means the learner echoed one operand verbatim.
	TagIncompleteAddition Tag = "incomplete_addition"

	// TagCountingError means the answer is more than 2 away from the sum.
	TagCountingError Tag = "counting_error"

	// TagOffByOne means the answer is exactly 1 away from the sum.
	TagOffByOne Tag = "off_by_one"

	// TagCommutativeConfusion fires on the same condition as
	// TagIncompleteAddition. The two have always co-occurred in practice;
	// both are kept because templates and analytics depend on each.
	TagCommutativeConfusion Tag = "commutative_confusion"
)

// allTags lists the vocabulary in a fixed order.
var allTags = []Tag{
	TagParseError,
	TagComplementMiss,
	TagDoubleMissLow,
	TagDoubleMissHigh,
	TagDoubleMajorError,
	TagNearDoubleWrongBase,
	TagNearDoubleWrongDouble,
	TagNearDoubleOff,
	TagIncompleteAddition,
	TagCountingError,
	TagOffByOne,
	TagCommutativeConfusion,
}

// AllTags returns every tag in the vocabulary.
// Callers that maintain per-tag resources (feedback templates, counters)
// use this to prove coverage.
func AllTags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// Strings converts a tag list to plain strings for storage and display.
func Strings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
