package tagging

// Strategy names the mental strategy a question is designed to exercise.
// It depends only on the operands, not on the learner's answer.
type Strategy string

const (
	StrategyUnknown       Strategy = "unknown"
	StrategyDoubles       Strategy = "doubles"
	StrategyNearDouble    Strategy = "near-double"
	StrategyMakeTen       Strategy = "make-10"
	StrategyComplement    Strategy = "complement"
	StrategyBasicAddition Strategy = "basic-addition"
)

// StrategyFor classifies a question by the strategy its operands call for.
// Checks run in priority order; first match wins. Questions without two
// parseable operands classify as StrategyUnknown.
func StrategyFor(question string) Strategy {
	num1, num2, ok := Operands(question)
	if !ok {
		return StrategyUnknown
	}

	switch {
	case num1 == num2:
		return StrategyDoubles
	case abs(num1-num2) == 1:
		return StrategyNearDouble
	case num1+num2 == 10:
		return StrategyMakeTen
	case isComplementPair(num1, num2):
		return StrategyComplement
	default:
		return StrategyBasicAddition
	}
}

// isComplementPair reports whether one operand is in [7,9] and the other
// in [1,3], in either order.
func isComplementPair(a, b int) bool {
	high := func(n int) bool { return n >= 7 && n <= 9 }
	low := func(n int) bool { return n >= 1 && n <= 3 }
	return (high(a) && low(b)) || (low(a) && high(b))
}
