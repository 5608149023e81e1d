package cmd

import (
	"fmt"

	"github.com/madnan/taksa/internal/app"
	"github.com/madnan/taksa/internal/assess"
	"github.com/madnan/taksa/internal/llm"
	"github.com/madnan/taksa/internal/quizgen"
	"github.com/madnan/taksa/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	return app.Run(app.Options{
		Generator: quizgen.NewLLMGenerator(provider, quizgen.DefaultConfig()),
		Assessor:  assess.NewAssessor(provider),
		ModelID:   provider.ModelID(),
	})
}
