package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently checked answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")
		wrongOnly, _ := cmd.Flags().GetBool("wrong")

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			records, err := s.EventRepo().QueryAnswers(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query answers: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No answers recorded yet.")
				return nil
			}

			const row = "%-19s  %-12s  %6v  %-7s  %-9s  %-14s  %s\n"
			fmt.Printf(row, "Timestamp", "Question", "Answer", "Correct", "Severity", "Strategy", "Tags")
			fmt.Println(rule(100))

			shown := 0
			for _, r := range records {
				if session != "" && r.SessionID != session {
					continue
				}
				if wrongOnly && r.Correct {
					continue
				}
				severity := ""
				if !r.Correct {
					severity = r.Severity
				}
				fmt.Printf(row,
					r.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(r.QuestionText, 12),
					r.UserAnswer,
					okMark(r.Correct),
					severity,
					r.Strategy,
					strings.Join(r.Tags, ", "),
				)
				shown++
			}

			fmt.Printf("\n%d answers\n", shown)
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of answers to show")
	historyCmd.Flags().StringP("session", "s", "", "Filter by session ID")
	historyCmd.Flags().Bool("wrong", false, "Show only wrong answers")
}
