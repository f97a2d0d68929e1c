package feedback

import (
	"context"
	"fmt"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

// tagTemplates maps every tag in the vocabulary to a canned encouragement
// line. Coverage over the full vocabulary is a hard guarantee: the template
// provider is the fallback of last resort and must always have something
// to say. A test checks the map against tagging.AllTags().
var tagTemplates = map[tagging.Tag]string{
	tagging.TagParseError:            "Hmm, that question looks scrambled. Let's try a fresh one!",
	tagging.TagComplementMiss:        "So close! You made 10 — now don't forget the part that's left over.",
	tagging.TagDoubleMissLow:         "Almost! Doubles can be sneaky. Count up one more and you've got it.",
	tagging.TagDoubleMissHigh:        "Just one too many! Try counting that double again, nice and slow.",
	tagging.TagDoubleMajorError:      "Let's slow down on doubles. Try counting both groups one at a time.",
	tagging.TagNearDoubleWrongBase:   "Good doubling! Now remember one of the numbers is a little bigger.",
	tagging.TagNearDoubleWrongDouble: "Nice double! But double the smaller number first, then add 1.",
	tagging.TagNearDoubleOff:         "You're using the doubles trick — great! Check which number you doubled.",
	tagging.TagIncompleteAddition:    "You wrote one of the numbers — now add the other one to it!",
	tagging.TagCountingError:         "That's a big jump! Try counting up from the bigger number.",
	tagging.TagOffByOne:              "Soooo close — just one away! Count once more to check.",
	tagging.TagCommutativeConfusion:  "Remember: both numbers get added together, in any order you like.",
}

// correctTemplate praises a correct answer.
const correctTemplate = "You got it! %d + %d = %d. Great work!"

// untaggedWrongTemplate covers wrong answers that matched no rule.
const untaggedWrongTemplate = "Not quite — give it one more try. You can do this!"

// TemplateProvider selects a canned line keyed by the attempt's first tag.
// It never fails, which makes it the terminal fallback behind the LLM
// provider.
type TemplateProvider struct{}

// NewTemplateProvider creates a TemplateProvider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// Feedback returns encouragement text for the attempt. The error is always
// nil; the signature matches TextProvider.
func (p *TemplateProvider) Feedback(_ context.Context, a *Attempt) (string, error) {
	if a.Correct() {
		num1, num2, ok := tagging.Operands(a.QuestionText)
		if ok {
			return fmt.Sprintf(correctTemplate, num1, num2, a.CorrectAnswer), nil
		}
		return "You got it! Great work!", nil
	}

	if len(a.Tags) > 0 {
		if text, ok := tagTemplates[a.Tags[0]]; ok {
			return text, nil
		}
	}
	return untaggedWrongTemplate, nil
}
