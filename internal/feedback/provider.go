package feedback

import (
	"context"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

// Attempt is the answer context feedback text is produced for.
type Attempt struct {
	QuestionText  string
	UserAnswer    int
	CorrectAnswer int

	// Tags is the classification of the attempt. A wrong answer can carry
	// no tags when it matches no known error pattern, so correctness is
	// judged on the answers, not on the tag set.
	Tags []tagging.Tag
}

// Correct reports whether the attempt was answered correctly.
func (a *Attempt) Correct() bool {
	return a.UserAnswer == a.CorrectAnswer
}

// TextProvider produces a short encouragement line for an attempt.
type TextProvider interface {
	Feedback(ctx context.Context, a *Attempt) (string, error)
}
