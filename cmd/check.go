package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/feedback"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/store"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
	"github.com/spf13/cobra"
)

var (
	correctStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	minorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	moderateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	feedbackStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

var checkCmd = &cobra.Command{
	Use:   "check <question> <user-answer> <correct-answer>",
	Short: "Classify an answer and explain the likely mistake",
	Long: `Classify a child's answer to an addition question.

Example:

  mathtutor check "8 + 5" 12 13

Prints the diagnosed error tags, the strategy the question targets, and
the overall severity. With --feedback, also generates an encouraging
feedback message (LLM when configured, templates otherwise).`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]

		userAnswer, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid user answer %q: %w", args[1], err)
		}
		correctAnswer, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid correct answer %q: %w", args[2], err)
		}

		withFeedback, _ := cmd.Flags().GetBool("feedback")
		record, _ := cmd.Flags().GetBool("record")
		sessionID, _ := cmd.Flags().GetString("session")

		tags := tagging.Classify(question, userAnswer, correctAnswer)
		severity := tagging.SeverityOf(tags)
		strategy := tagging.StrategyFor(question)

		printDiagnosis(question, userAnswer, correctAnswer, tags, severity, strategy)

		var s *store.Store
		if record || withFeedback {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			s, err = store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()
		}

		ctx := cmd.Context()

		if record {
			if sessionID == "" {
				sessionID = uuid.New().String()
			}
			err := s.EventRepo().AppendAnswer(ctx, store.AnswerEventData{
				SessionID:     sessionID,
				QuestionText:  question,
				UserAnswer:    userAnswer,
				CorrectAnswer: correctAnswer,
				Correct:       userAnswer == correctAnswer,
				Tags:          tagging.Strings(tags),
				Severity:      string(severity),
				Strategy:      string(strategy),
			})
			if err != nil {
				return fmt.Errorf("record answer: %w", err)
			}
		}

		if withFeedback {
			result := generateFeedback(ctx, s, question, userAnswer, correctAnswer, tags)
			fmt.Println()
			fmt.Println(feedbackStyle.Render(result.Text))
			fmt.Println(dimStyle.Render("source: " + string(result.Source)))

			if record {
				err := s.EventRepo().AppendFeedback(ctx, store.FeedbackEventData{
					SessionID:    sessionID,
					QuestionText: question,
					Tags:         tagging.Strings(tags),
					Source:       string(result.Source),
					Text:         result.Text,
				})
				if err != nil {
					return fmt.Errorf("record feedback: %w", err)
				}
			}
		}

		return nil
	},
}

func printDiagnosis(question string, userAnswer, correctAnswer int, tags []tagging.Tag, severity tagging.Severity, strategy tagging.Strategy) {
	fmt.Printf("Question:  %s\n", question)
	fmt.Printf("Answered:  %d (correct: %d)\n", userAnswer, correctAnswer)

	if userAnswer == correctAnswer {
		fmt.Printf("Result:    %s\n", correctStyle.Render("correct"))
	} else {
		tagList := "(none)"
		if len(tags) > 0 {
			tagList = strings.Join(tagging.Strings(tags), ", ")
		}
		fmt.Printf("Tags:      %s\n", tagList)
		fmt.Printf("Severity:  %s\n", severityStyle(severity).Render(string(severity)))
	}
	fmt.Printf("Strategy:  %s\n", strategy)
}

func severityStyle(s tagging.Severity) lipgloss.Style {
	switch s {
	case tagging.SeverityCritical:
		return criticalStyle
	case tagging.SeverityModerate:
		return moderateStyle
	default:
		return minorStyle
	}
}

// generateFeedback builds the feedback service from the environment. When no
// LLM provider is configured it falls back to templates silently.
func generateFeedback(ctx context.Context, s *store.Store, question string, userAnswer, correctAnswer int, tags []tagging.Tag) feedback.Result {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		provider = nil
	}

	svc := feedback.NewService(provider, feedback.NewBoundedCache(256))
	return svc.Feedback(ctx, &feedback.Attempt{
		QuestionText:  question,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		Tags:          tags,
	})
}

func init() {
	checkCmd.Flags().Bool("feedback", false, "Generate an encouraging feedback message")
	checkCmd.Flags().Bool("record", false, "Record the answer (and feedback) as events")
	checkCmd.Flags().String("session", "", "Session ID to group recorded answers (random if empty)")
}
