package feedback

import (
	"context"
	"strings"
	"testing"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

func TestTemplates_CoverFullVocabulary(t *testing.T) {
	for _, tag := range tagging.AllTags() {
		if _, ok := tagTemplates[tag]; !ok {
			t.Errorf("tag %s has no feedback template", tag)
		}
	}
}

func TestTemplates_NoStaleEntries(t *testing.T) {
	known := map[tagging.Tag]bool{}
	for _, tag := range tagging.AllTags() {
		known[tag] = true
	}
	for tag := range tagTemplates {
		if !known[tag] {
			t.Errorf("template for %s does not match any vocabulary tag", tag)
		}
	}
}

func TestTemplateProvider_KeyedByFirstTag(t *testing.T) {
	p := NewTemplateProvider()
	a := &Attempt{
		QuestionText:  "8 + 5",
		UserAnswer:    12,
		CorrectAnswer: 13,
		Tags:          []tagging.Tag{tagging.TagComplementMiss, tagging.TagOffByOne},
	}
	text, err := p.Feedback(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != tagTemplates[tagging.TagComplementMiss] {
		t.Errorf("got %q, want the complement_miss template", text)
	}
}

func TestTemplateProvider_CorrectAnswer(t *testing.T) {
	p := NewTemplateProvider()
	a := &Attempt{QuestionText: "8 + 5", UserAnswer: 13, CorrectAnswer: 13}
	text, err := p.Feedback(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "8 + 5 = 13") {
		t.Errorf("correct-answer text %q should restate the fact", text)
	}
}

func TestTemplateProvider_NeverEmpty(t *testing.T) {
	p := NewTemplateProvider()
	ctx := context.Background()

	for _, tag := range tagging.AllTags() {
		a := &Attempt{
			QuestionText:  "6 + 7",
			UserAnswer:    12,
			CorrectAnswer: 13,
			Tags:          []tagging.Tag{tag},
		}
		text, err := p.Feedback(ctx, a)
		if err != nil {
			t.Errorf("tag %s: unexpected error: %v", tag, err)
		}
		if strings.TrimSpace(text) == "" {
			t.Errorf("tag %s: empty feedback text", tag)
		}
	}
}

func TestAttemptCorrect_JudgedOnAnswers(t *testing.T) {
	// "4 + 2" answered 8: sum below 10, not a double or near-double, no
	// operand echoed, and a distance of 2 matches no rule — zero tags,
	// yet the attempt is wrong.
	tags := tagging.Classify("4 + 2", 8, 6)
	if len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", tags)
	}

	a := &Attempt{QuestionText: "4 + 2", UserAnswer: 8, CorrectAnswer: 6, Tags: tags}
	if a.Correct() {
		t.Error("untagged wrong answer reported as correct")
	}

	right := &Attempt{QuestionText: "4 + 2", UserAnswer: 6, CorrectAnswer: 6}
	if !right.Correct() {
		t.Error("matching answer reported as wrong")
	}
}

func TestTemplateProvider_UntaggedWrongAnswer(t *testing.T) {
	p := NewTemplateProvider()
	a := &Attempt{QuestionText: "4 + 2", UserAnswer: 8, CorrectAnswer: 6}

	text, err := p.Feedback(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != untaggedWrongTemplate {
		t.Errorf("got %q, want the untagged-wrong template", text)
	}
	if strings.Contains(text, "6") {
		t.Errorf("untagged-wrong text %q must not reveal the answer", text)
	}
}
