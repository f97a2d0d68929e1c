package tagging

import "testing"

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		question string
		want     Strategy
	}{
		{"5 + 5", StrategyDoubles},
		{"6 + 7", StrategyNearDouble},
		{"7 + 6", StrategyNearDouble},
		{"8 + 2", StrategyMakeTen},
		{"8 + 3", StrategyComplement},
		{"2 + 9", StrategyComplement},
		{"4 + 2", StrategyBasicAddition},
		{"0 + 5", StrategyBasicAddition},
		{"What is 3 plus 4?", StrategyNearDouble},
		{"no operands", StrategyUnknown},
		{"", StrategyUnknown},
	}
	for _, tt := range tests {
		if got := StrategyFor(tt.question); got != tt.want {
			t.Errorf("StrategyFor(%q) = %s, want %s", tt.question, got, tt.want)
		}
	}
}

func TestStrategyFor_PriorityOrder(t *testing.T) {
	// 5+5 sums to 10 but doubles outranks make-10.
	if got := StrategyFor("5 + 5"); got != StrategyDoubles {
		t.Errorf("got %s, want doubles", got)
	}
	// 9+1 is a complement pair but sums to 10; make-10 outranks complement.
	if got := StrategyFor("9 + 1"); got != StrategyMakeTen {
		t.Errorf("got %s, want make-10", got)
	}
	// 2+3 is a near-double even though neither is a complement pair.
	if got := StrategyFor("2 + 3"); got != StrategyNearDouble {
		t.Errorf("got %s, want near-double", got)
	}
}

func TestStrategyFor_ComplementBounds(t *testing.T) {
	tests := []struct {
		question string
		want     Strategy
	}{
		{"7 + 1", StrategyComplement},
		{"9 + 3", StrategyComplement},
		{"3 + 9", StrategyComplement},
		{"6 + 3", StrategyBasicAddition}, // 6 below the high band
		{"9 + 4", StrategyBasicAddition}, // 4 above the low band
		{"9 + 0", StrategyBasicAddition}, // 0 below the low band
	}
	for _, tt := range tests {
		if got := StrategyFor(tt.question); got != tt.want {
			t.Errorf("StrategyFor(%q) = %s, want %s", tt.question, got, tt.want)
		}
	}
}
