package tagging

// Classify inspects a learner's answer to a two-operand addition question
// and returns every error tag that applies, in a fixed evaluation order.
//
// A correct answer yields no tags. A question from which two operands
// cannot be extracted yields exactly [TagParseError]. Otherwise the checks
// below run against sum = num1 + num2; each appends at most one tag and a
// tag never appears twice. The function is pure: identical inputs always
// produce the identical tag list.
func Classify(question string, userAnswer, correctAnswer int) []Tag {
	num1, num2, ok := Operands(question)
	if !ok {
		return []Tag{TagParseError}
	}

	if userAnswer == correctAnswer {
		return nil
	}

	sum := num1 + num2
	dist := abs(userAnswer - sum)

	var tags []Tag

	// Make-10 boundary: made 10 but dropped the remainder, or stopped one
	// short of a sum at or past 10.
	if sum >= 10 && (userAnswer == sum-1 || (userAnswer == 10 && sum > 10)) {
		tags = append(tags, TagComplementMiss)
	}

	// Doubles. First match wins within the group.
	doubleMajor := false
	if num1 == num2 {
		switch {
		case userAnswer == sum-1:
			tags = append(tags, TagDoubleMissLow)
		case userAnswer == sum+1:
			tags = append(tags, TagDoubleMissHigh)
		case dist > 2:
			tags = append(tags, TagDoubleMajorError)
			doubleMajor = true
		}
	}

	// Near-doubles: answered as if the problem were a double.
	if abs(num1-num2) == 1 {
		smaller := min(num1, num2)
		switch {
		case userAnswer == 2*smaller:
			tags = append(tags, TagNearDoubleWrongBase)
		case userAnswer == 2*(smaller+1):
			tags = append(tags, TagNearDoubleWrongDouble)
		case userAnswer == 2*smaller+1:
			tags = append(tags, TagNearDoubleOff)
		}
	}

	// Echoed an operand instead of adding.
	echoed := userAnswer == num1 || userAnswer == num2
	if echoed {
		tags = append(tags, TagIncompleteAddition)
	}

	// Large miss. Suppressed when the doubles check already reported the
	// same magnitude signal as TagDoubleMajorError.
	if dist > 2 && !doubleMajor {
		tags = append(tags, TagCountingError)
	}

	if dist == 1 {
		tags = append(tags, TagOffByOne)
	}

	// Same trigger as TagIncompleteAddition; see the tag's doc comment.
	if echoed {
		tags = append(tags, TagCommutativeConfusion)
	}

	return tags
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
