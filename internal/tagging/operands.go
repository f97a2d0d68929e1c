package tagging

import (
	"regexp"
	"strconv"
)

// digitRuns matches consecutive runs of decimal digits.
var digitRuns = regexp.MustCompile(`\d+`)

// Operands extracts the first two integers from a question's text, in
// reading order. Any non-digit characters may separate them ("8 + 5",
// "What is 8 plus 5?"). Returns ok=false when fewer than two integers
// are present or a run does not fit in an int.
func Operands(question string) (num1, num2 int, ok bool) {
	runs := digitRuns.FindAllString(question, 2)
	if len(runs) < 2 {
		return 0, 0, false
	}

	num1, err := strconv.Atoi(runs[0])
	if err != nil {
		return 0, 0, false
	}
	num2, err = strconv.Atoi(runs[1])
	if err != nil {
		return 0, 0, false
	}

	return num1, num2, true
}
