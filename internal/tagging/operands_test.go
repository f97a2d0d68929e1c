package tagging

import "testing"

func TestOperands(t *testing.T) {
	tests := []struct {
		question   string
		num1, num2 int
		ok         bool
	}{
		{"8 + 5", 8, 5, true},
		{"What is 12 plus 7?", 12, 7, true},
		{"3+4", 3, 4, true},
		{"10 and then 20 and then 30", 10, 20, true},
		{"only 7", 0, 0, false},
		{"no digits", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		num1, num2, ok := Operands(tt.question)
		if ok != tt.ok || num1 != tt.num1 || num2 != tt.num2 {
			t.Errorf("Operands(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.question, num1, num2, ok, tt.num1, tt.num2, tt.ok)
		}
	}
}

func TestOperands_Overflow(t *testing.T) {
	_, _, ok := Operands("99999999999999999999999999 + 1")
	if ok {
		t.Error("expected parse failure for an operand that overflows int")
	}
}

func TestAllTags_StableVocabulary(t *testing.T) {
	want := []string{
		"parse_error",
		"complement_miss",
		"double_miss_low",
		"double_miss_high",
		"double_major_error",
		"near_double_wrong_base",
		"near_double_wrong_double",
		"near_double_off",
		"incomplete_addition",
		"counting_error",
		"off_by_one",
		"commutative_confusion",
	}
	got := AllTags()
	if len(got) != len(want) {
		t.Fatalf("vocabulary has %d tags, want %d", len(got), len(want))
	}
	for i, w := range want {
		if string(got[i]) != w {
			t.Errorf("tag %d = %q, want %q", i, got[i], w)
		}
	}
}
