package quizgen

// The two prompt halves are fixed text: the quiz takes no input
// variables. Kept verbatim so regenerated quizzes stay comparable
// across runs.

const systemPrompt = `You are a multiple-choice question (MCQ) generator focused on English proficiency. ` +
	`Generate exactly 10 unique questions, each with 4 answer options (A, B, C, D). ` +
	`Ensure that each question only has one correct answer. ` +
	`Return only the result in JSON format.`

const userPrompt = `Generate 10 multiple-choice questions. Return the result as a JSON array like this:
[
  { "question": "What is the synonym of 'happy'?",
    "options": ["A) Sad", "B) Angry", "C) Joyful", "D) Tired"],
    "answer": "C" },
  ...
]`
