package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/app"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/llm"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
)

// runApp opens the journal, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := api.ConfigFromEnv()
	tokens := &api.FileTokenSource{Path: cfg.TokenPath}
	client := api.New(cfg, tokens)

	eventRepo := st.EventRepo()
	deps := app.Deps{
		Client:    client,
		Tokens:    tokens,
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The tutor will be unavailable.")
	} else {
		deps.Assistant = assistant.NewService(provider, assistant.DefaultConfig())
	}

	return app.Run(deps)
}
