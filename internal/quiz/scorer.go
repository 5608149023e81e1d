package quiz

import "github.com/madnan/taksa/internal/quizgen"

// Score counts the responses that match the correct answer by
// position. An empty or wrong response scores zero for that question;
// there is no penalty and no partial credit.
func Score(qs quizgen.QuestionSet, responses []string) int {
	score := 0
	for i, q := range qs {
		if i < len(responses) && responses[i] == q.Answer {
			score++
		}
	}
	return score
}

// Tier is the feedback band a score falls into.
type Tier int

const (
	// TierReferTutor is everything at or below 40 percent.
	TierReferTutor Tier = iota

	// TierGoodEffort covers scores above 40 percent up to and
	// including 70 percent.
	TierGoodEffort

	// TierGreat covers scores above 70 percent short of perfect.
	TierGreat

	// TierPerfect is every question correct.
	TierPerfect
)

// String returns a short name for the tier.
func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierGreat:
		return "great"
	case TierGoodEffort:
		return "good-effort"
	default:
		return "refer-tutor"
	}
}

// TierFor maps a score out of total into its feedback tier. The 70 and
// 40 percent cuts are strict: a score exactly on the boundary falls
// into the lower tier. Comparisons are integer cross-products so the
// cuts land exactly regardless of total.
func TierFor(score, total int) Tier {
	switch {
	case total > 0 && score == total:
		return TierPerfect
	case score*10 > total*7:
		return TierGreat
	case score*10 > total*4:
		return TierGoodEffort
	default:
		return TierReferTutor
	}
}
