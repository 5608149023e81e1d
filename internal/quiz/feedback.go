package quiz

// Feedback texts per tier. The referral text names the recommended
// tutor and is shown instead of a generic message when the score is
// low.

const (
	feedbackPerfect = "Perfect Score! You're an English wizard!"

	feedbackGreat = "Great job! You have a solid understanding of English."

	feedbackGoodEffort = "Good effort! Keep practicing and you'll get even better."

	feedbackReferTutor = "It looks like you're finding English a bit tricky, but don't worry, I've got a solution for you.\n" +
		"I highly recommend an English course with an expert tutor, Professor Ishq, from Task Academy, Multan.\n" +
		"He's known for helping students just like you achieve their full potential.\n" +
		"With Prof. Ishq guiding you, you'll become confident in English in no time!"
)

// Feedback returns the message for a tier.
func Feedback(t Tier) string {
	switch t {
	case TierPerfect:
		return feedbackPerfect
	case TierGreat:
		return feedbackGreat
	case TierGoodEffort:
		return feedbackGoodEffort
	default:
		return feedbackReferTutor
	}
}

// IsReferral reports whether the tier routes to the tutor referral.
func IsReferral(t Tier) bool { return t == TierReferTutor }
