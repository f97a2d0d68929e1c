package tagging

import (
	"slices"
	"testing"
)

func hasTag(tags []Tag, want Tag) bool {
	return slices.Contains(tags, want)
}

func TestClassify_CorrectAnswer(t *testing.T) {
	tests := []struct {
		question string
		answer   int
	}{
		{"8 + 5", 13},
		{"5 + 5", 10},
		{"What is 6 plus 7?", 13},
		{"0 + 0", 0},
	}
	for _, tt := range tests {
		tags := Classify(tt.question, tt.answer, tt.answer)
		if len(tags) != 0 {
			t.Errorf("Classify(%q, %d, %d) = %v, want empty", tt.question, tt.answer, tt.answer, tags)
		}
	}
}

func TestClassify_ParseError(t *testing.T) {
	tests := []string{
		"",
		"seven plus three",
		"8 +",
		"just 12",
	}
	for _, q := range tests {
		tags := Classify(q, 5, 10)
		if len(tags) != 1 || tags[0] != TagParseError {
			t.Errorf("Classify(%q) = %v, want [parse_error]", q, tags)
		}
	}
}

func TestClassify_ParseErrorSkipsOtherChecks(t *testing.T) {
	// Even a "correct" answer cannot short-circuit the parse precondition.
	tags := Classify("no numbers here", 7, 7)
	if len(tags) != 1 || tags[0] != TagParseError {
		t.Errorf("got %v, want [parse_error]", tags)
	}
}

func TestClassify_ComplementMiss(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   int
		correct  int
		want     bool
	}{
		{"one short of sum above 10", "8 + 5", 12, 13, true},
		{"stopped at 10", "8 + 5", 10, 13, true},
		{"sum exactly 10, one short", "7 + 3", 9, 10, true},
		{"sum exactly 10, answered 10 wrongly", "7 + 3", 10, 11, false},
		{"sum below 10", "4 + 4", 7, 8, false},
		{"two short", "8 + 5", 11, 13, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Classify(tt.question, tt.answer, tt.correct)
			if got := hasTag(tags, TagComplementMiss); got != tt.want {
				t.Errorf("complement_miss = %v, want %v (tags %v)", got, tt.want, tags)
			}
		})
	}
}

func TestClassify_Doubles(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   int
		want     Tag
	}{
		{"one low", "5 + 5", 9, TagDoubleMissLow},
		{"one high", "5 + 5", 11, TagDoubleMissHigh},
		{"far off", "5 + 5", 14, TagDoubleMajorError},
		{"far off low", "6 + 6", 2, TagDoubleMajorError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Classify(tt.question, tt.answer, 999)
			if !hasTag(tags, tt.want) {
				t.Errorf("tags %v missing %s", tags, tt.want)
			}
			// The three doubles tags are mutually exclusive.
			count := 0
			for _, tag := range tags {
				if tag == TagDoubleMissLow || tag == TagDoubleMissHigh || tag == TagDoubleMajorError {
					count++
				}
			}
			if count != 1 {
				t.Errorf("got %d doubles tags in %v, want exactly 1", count, tags)
			}
		})
	}
}

func TestClassify_DoubleMissLowExcludesHigh(t *testing.T) {
	tags := Classify("5 + 5", 9, 10)
	if !hasTag(tags, TagDoubleMissLow) {
		t.Errorf("tags %v missing double_miss_low", tags)
	}
	if hasTag(tags, TagDoubleMissHigh) {
		t.Errorf("tags %v must not contain double_miss_high", tags)
	}
}

func TestClassify_DoublesNotAppliedToNonDoubles(t *testing.T) {
	tags := Classify("4 + 6", 9, 10)
	for _, tag := range tags {
		if tag == TagDoubleMissLow || tag == TagDoubleMissHigh || tag == TagDoubleMajorError {
			t.Errorf("doubles tag %s on non-double question (tags %v)", tag, tags)
		}
	}
}

func TestClassify_NearDoubles(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   int
		want     Tag
	}{
		// 6+7: doubled the smaller operand.
		{"wrong base", "6 + 7", 12, TagNearDoubleWrongBase},
		// 6+7: doubled the larger operand.
		{"wrong double", "6 + 7", 14, TagNearDoubleWrongDouble},
		// 3+4: double of smaller plus one happens to be the sum, so it is
		// only reachable when the caller's correct answer disagrees.
		{"off", "3 + 4", 7, TagNearDoubleOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Classify(tt.question, tt.answer, 999)
			if !hasTag(tags, tt.want) {
				t.Errorf("tags %v missing %s", tags, tt.want)
			}
		})
	}
}

func TestClassify_NearDoubleOperandOrder(t *testing.T) {
	// 7 + 6 must behave like 6 + 7: smaller operand is chosen by value.
	tags := Classify("7 + 6", 12, 13)
	if !hasTag(tags, TagNearDoubleWrongBase) {
		t.Errorf("tags %v missing near_double_wrong_base", tags)
	}
}

func TestClassify_IncompleteAddition(t *testing.T) {
	tags := Classify("7 + 3", 7, 10)
	if !hasTag(tags, TagIncompleteAddition) {
		t.Errorf("tags %v missing incomplete_addition", tags)
	}
	if !hasTag(tags, TagCommutativeConfusion) {
		t.Errorf("tags %v missing commutative_confusion", tags)
	}

	// Second operand echoed.
	tags = Classify("7 + 3", 3, 10)
	if !hasTag(tags, TagIncompleteAddition) || !hasTag(tags, TagCommutativeConfusion) {
		t.Errorf("tags %v missing echo tags for second operand", tags)
	}
}

func TestClassify_CountingError(t *testing.T) {
	tags := Classify("7 + 3", 6, 10)
	if !hasTag(tags, TagCountingError) {
		t.Errorf("tags %v missing counting_error", tags)
	}
	if hasTag(tags, TagDoubleMajorError) {
		t.Errorf("tags %v must not contain double_major_error", tags)
	}
}

func TestClassify_CountingErrorSuppressedByDoubleMajor(t *testing.T) {
	// 5+5 answered 14: the doubles group already reported the large miss.
	tags := Classify("5 + 5", 14, 10)
	if !hasTag(tags, TagDoubleMajorError) {
		t.Errorf("tags %v missing double_major_error", tags)
	}
	if hasTag(tags, TagCountingError) {
		t.Errorf("tags %v must not double-report as counting_error", tags)
	}
}

func TestClassify_OffByOne(t *testing.T) {
	tags := Classify("7 + 3", 9, 10)
	if !hasTag(tags, TagOffByOne) {
		t.Errorf("tags %v missing off_by_one", tags)
	}

	// Off-by-one and complement_miss can co-occur above 10.
	tags = Classify("8 + 5", 12, 13)
	if !hasTag(tags, TagOffByOne) || !hasTag(tags, TagComplementMiss) {
		t.Errorf("tags %v should contain both off_by_one and complement_miss", tags)
	}
}

func TestClassify_MultipleTags(t *testing.T) {
	// 6+7 answered 6: echoed operand on a near-double question, far from sum.
	tags := Classify("6 + 7", 6, 13)
	for _, want := range []Tag{TagIncompleteAddition, TagCountingError, TagCommutativeConfusion} {
		if !hasTag(tags, want) {
			t.Errorf("tags %v missing %s", tags, want)
		}
	}
}

func TestClassify_NoDuplicateTags(t *testing.T) {
	tests := []struct {
		question string
		answer   int
		correct  int
	}{
		{"6 + 7", 12, 13},
		{"5 + 5", 9, 10},
		{"7 + 3", 7, 10},
		{"8 + 5", 10, 13},
	}
	for _, tt := range tests {
		tags := Classify(tt.question, tt.answer, tt.correct)
		seen := map[Tag]bool{}
		for _, tag := range tags {
			if seen[tag] {
				t.Errorf("Classify(%q, %d, %d): duplicate tag %s in %v",
					tt.question, tt.answer, tt.correct, tag, tags)
			}
			seen[tag] = true
		}
	}
}

func TestClassify_EvaluationOrder(t *testing.T) {
	// 8+5 answered 12: complement_miss fires before off_by_one.
	tags := Classify("8 + 5", 12, 13)
	want := []Tag{TagComplementMiss, TagOffByOne}
	if !slices.Equal(tags, want) {
		t.Errorf("got %v, want %v", tags, want)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("6 + 7", 12, 13)
	for range 10 {
		again := Classify("6 + 7", 12, 13)
		if !slices.Equal(first, again) {
			t.Fatalf("non-deterministic output: %v then %v", first, again)
		}
	}
}

func TestClassify_ExtremeAnswers(t *testing.T) {
	// Way out of the practice range must not panic and grades as a large miss.
	tags := Classify("8 + 5", -100, 13)
	if !hasTag(tags, TagCountingError) {
		t.Errorf("tags %v missing counting_error for negative answer", tags)
	}

	tags = Classify("8 + 5", 100000, 13)
	if !hasTag(tags, TagCountingError) {
		t.Errorf("tags %v missing counting_error for huge answer", tags)
	}
}

func TestClassify_ExtraNumbersIgnored(t *testing.T) {
	// Only the first two integers count as operands.
	tags := Classify("8 + 5 = 99", 13, 13)
	if len(tags) != 0 {
		t.Errorf("got %v, want empty (trailing numbers must be ignored)", tags)
	}
}
