// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/raptors2019-ai/math-tutor-2-sub000/ent/answerevent"
	"github.com/raptors2019-ai/math-tutor-2-sub000/ent/feedbackevent"
	"github.com/raptors2019-ai/math-tutor-2-sub000/ent/llmrequestevent"
	"github.com/raptors2019-ai/math-tutor-2-sub000/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[1].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescTags is the schema descriptor for tags field.
	answereventDescTags := answereventFields[5].Descriptor()
	// answerevent.DefaultTags holds the default value on creation for the tags field.
	answerevent.DefaultTags = answereventDescTags.Default.(string)
	// answereventDescSeverity is the schema descriptor for severity field.
	answereventDescSeverity := answereventFields[6].Descriptor()
	// answerevent.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	answerevent.SeverityValidator = answereventDescSeverity.Validators[0].(func(string) error)
	// answereventDescStrategy is the schema descriptor for strategy field.
	answereventDescStrategy := answereventFields[7].Descriptor()
	// answerevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	answerevent.StrategyValidator = answereventDescStrategy.Validators[0].(func(string) error)
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescSessionID is the schema descriptor for session_id field.
	feedbackeventDescSessionID := feedbackeventFields[0].Descriptor()
	// feedbackevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	feedbackevent.SessionIDValidator = feedbackeventDescSessionID.Validators[0].(func(string) error)
	// feedbackeventDescQuestionText is the schema descriptor for question_text field.
	feedbackeventDescQuestionText := feedbackeventFields[1].Descriptor()
	// feedbackevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	feedbackevent.QuestionTextValidator = feedbackeventDescQuestionText.Validators[0].(func(string) error)
	// feedbackeventDescTags is the schema descriptor for tags field.
	feedbackeventDescTags := feedbackeventFields[2].Descriptor()
	// feedbackevent.DefaultTags holds the default value on creation for the tags field.
	feedbackevent.DefaultTags = feedbackeventDescTags.Default.(string)
	// feedbackeventDescSource is the schema descriptor for source field.
	feedbackeventDescSource := feedbackeventFields[3].Descriptor()
	// feedbackevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	feedbackevent.SourceValidator = feedbackeventDescSource.Validators[0].(func(string) error)
	// feedbackeventDescText is the schema descriptor for text field.
	feedbackeventDescText := feedbackeventFields[4].Descriptor()
	// feedbackevent.TextValidator is a validator for the "text" field. It is called by the builders before save.
	feedbackevent.TextValidator = feedbackeventDescText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
