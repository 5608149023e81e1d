package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralValidatorAccepts(t *testing.T) {
	v := &StructuralValidator{}
	assert.Nil(t, v.Validate(validQuestions()))
}

func TestStructuralValidatorWrongCount(t *testing.T) {
	v := &StructuralValidator{}

	err := v.Validate(validQuestions()[:3])
	require.NotNil(t, err)
	assert.Equal(t, "structural", err.Validator)
	assert.Contains(t, err.Message, "expected 10 questions")
}

func TestStructuralValidatorEmptyText(t *testing.T) {
	qs := validQuestions()
	qs[4].Text = "   "

	err := (&StructuralValidator{}).Validate(qs)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "question 5")
}

func TestStructuralValidatorWrongOptionCount(t *testing.T) {
	qs := validQuestions()
	qs[0].Options = qs[0].Options[:3]

	err := (&StructuralValidator{}).Validate(qs)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "3 options")
}

func TestLabelValidatorAccepts(t *testing.T) {
	v := &LabelValidator{}
	assert.Nil(t, v.Validate(validQuestions()))
}

func TestLabelValidatorMissingPrefix(t *testing.T) {
	qs := validQuestions()
	qs[2].Options[1] = "Bravo"

	err := (&LabelValidator{}).Validate(qs)
	require.NotNil(t, err)
	assert.Equal(t, "label", err.Validator)
	assert.Contains(t, err.Message, "question 3 option 2")
}

func TestLabelValidatorOutOfOrderLabels(t *testing.T) {
	qs := validQuestions()
	qs[0].Options = []string{"B) Bravo", "A) Alpha", "C) Charlie", "D) Delta"}

	err := (&LabelValidator{}).Validate(qs)
	require.NotNil(t, err)
}

func TestLabelValidatorBadAnswer(t *testing.T) {
	qs := validQuestions()
	qs[7].Answer = "E"

	err := (&LabelValidator{}).Validate(qs)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, `"E"`)
}
