package tagging

import "testing"

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want Severity
	}{
		{"empty set", nil, SeverityMinor},
		{"incomplete addition", []Tag{TagIncompleteAddition}, SeverityCritical},
		{"counting error", []Tag{TagCountingError}, SeverityCritical},
		{"double major error", []Tag{TagDoubleMajorError}, SeverityCritical},
		{"complement miss", []Tag{TagComplementMiss}, SeverityModerate},
		{"double miss low", []Tag{TagDoubleMissLow}, SeverityModerate},
		{"double miss high", []Tag{TagDoubleMissHigh}, SeverityModerate},
		{"near double wrong base", []Tag{TagNearDoubleWrongBase}, SeverityModerate},
		{"off by one", []Tag{TagOffByOne}, SeverityMinor},
		{"near double wrong double", []Tag{TagNearDoubleWrongDouble}, SeverityMinor},
		{"near double off", []Tag{TagNearDoubleOff}, SeverityMinor},
		{"commutative confusion", []Tag{TagCommutativeConfusion}, SeverityMinor},
		{"parse error", []Tag{TagParseError}, SeverityMinor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeverityOf(tt.tags); got != tt.want {
				t.Errorf("SeverityOf(%v) = %s, want %s", tt.tags, got, tt.want)
			}
		})
	}
}

func TestSeverityOf_CriticalOutranksModerate(t *testing.T) {
	tags := []Tag{TagComplementMiss, TagCountingError}
	if got := SeverityOf(tags); got != SeverityCritical {
		t.Errorf("got %s, want critical", got)
	}
	// Order of tags must not matter.
	tags = []Tag{TagCountingError, TagComplementMiss}
	if got := SeverityOf(tags); got != SeverityCritical {
		t.Errorf("got %s, want critical (reversed)", got)
	}
}

func TestSeverityOf_ModerateOutranksMinor(t *testing.T) {
	tags := []Tag{TagOffByOne, TagComplementMiss}
	if got := SeverityOf(tags); got != SeverityModerate {
		t.Errorf("got %s, want moderate", got)
	}
}
