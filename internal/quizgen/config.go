package quizgen

// Config tunes generation. Zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Validators run in order against the parsed question set. The
	// first failure rejects the whole set.
	Validators []Validator

	// MaxTokens caps the completion. 10 questions with options fit
	// comfortably under 2048.
	MaxTokens int

	// Temperature for the generation request.
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&LabelValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}
