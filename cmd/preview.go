package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/madnan/taksa/internal/assess"
	"github.com/madnan/taksa/internal/llm"
	"github.com/madnan/taksa/internal/quiz"
	"github.com/madnan/taksa/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run a quiz on stdin/stdout (no database)",
	Long: `Generate a quiz and answer it on the terminal without the TUI.

This is a stateless developer tool — no database, no event log.
Useful for evaluating question quality across models.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("answers", false, "Print the correct answer after each question")
}

func runPreview(cmd *cobra.Command, args []string) error {
	showAnswers, _ := cmd.Flags().GetBool("answers")

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.NewLLMGenerator(provider, quizgen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Model: %s\n", provider.ModelID())
	fmt.Println("Generating your quiz...")
	fmt.Println()

	questions, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}

	session := quiz.NewSession()
	if err := session.SetQuestions(questions); err != nil {
		return err
	}

	for i, q := range questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(questions))
		fmt.Println(q.Text)
		for _, opt := range q.Options {
			fmt.Printf("  %s\n", opt)
		}

		fmt.Print("\nYour answer (A-D): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer != "" {
			session.SetResponse(i, answer)
		}

		if showAnswers {
			fmt.Printf("Answer: %s\n", q.Answer)
		}
		fmt.Println()
	}

	score := quiz.Score(session.Questions(), session.Responses())
	tier := quiz.TierFor(score, len(questions))

	fmt.Printf("── You scored %d out of %d ──\n", score, len(questions))

	level := assess.NewAssessor(provider).Assess(ctx, session.Responses())
	fmt.Printf("Your English proficiency level is: %s\n\n", level)

	fmt.Println(quiz.Feedback(tier))
	return nil
}
