package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		lessonAvg, lessonN, err := repo.AverageScore(ctx, "lesson", 50)
		if err != nil {
			return fmt.Errorf("query lesson average: %w", err)
		}
		reviewAvg, reviewN, err := repo.AverageScore(ctx, "review", 50)
		if err != nil {
			return fmt.Errorf("query review average: %w", err)
		}

		if lessonN == 0 && reviewN == 0 {
			fmt.Println("No attempts recorded yet.")
		} else {
			if lessonN > 0 {
				fmt.Printf("Lesson average (last %d): %.0f%%\n", lessonN, lessonAvg)
			}
			if reviewN > 0 {
				fmt.Printf("Review average (last %d): %.0f%%\n", reviewN, reviewAvg)
			}
		}

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-7s  %9s  %8s  %8s\n",
			"Completed", "Kind", "Items", "Average", "Duration")
		fmt.Println(strings.Repeat("─", 60))
		for _, sess := range sessions {
			fmt.Printf("%-19s  %-7s  %4d/%-4d  %7.0f%%  %8s\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sess.Kind,
				sess.ItemsCompleted, sess.ItemsTotal,
				sess.AverageScore,
				(time.Duration(sess.DurationSecs) * time.Second).String(),
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of sessions to show")
}
