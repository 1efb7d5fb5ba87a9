package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/llm"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask the tutor a one-shot question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		assist := assistant.NewService(provider, assistant.DefaultConfig())

		reply, err := assist.Chat(ctx, nil, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	},
}
