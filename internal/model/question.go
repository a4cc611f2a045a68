package model

// Question is a single question-bank entry. The wire/file shape is the
// legacy one the frontend and the hand-edited bank files already use:
// "p" question text, "odp" the four options, "ok" the correct answer,
// "info" the explanation shown after answering.
//
// Options[0] is always the correct answer in the bank; presentation order
// is shuffled per session.
type Question struct {
	Text    string   `json:"p"`
	Options []string `json:"odp"`
	Correct string   `json:"ok"`
	Info    string   `json:"info"`
}

// CorrectOption returns the canonical correct answer for the question.
func (q Question) CorrectOption() string {
	if len(q.Options) > 0 {
		return q.Options[0]
	}
	return q.Correct
}

// AddQuestionRequest is the payload for proposing a new question.
// Proposals land in a pending-review file, never in the live bank.
type AddQuestionRequest struct {
	Question   string `json:"question" binding:"required,min=1,max=500"`
	GoodAnswer string `json:"good_answer" binding:"required,min=1,max=200"`
	Bad1       string `json:"bad1" binding:"required,min=1,max=200"`
	Bad2       string `json:"bad2" binding:"required,min=1,max=200"`
	Bad3       string `json:"bad3" binding:"required,min=1,max=200"`
	Info       string `json:"info" binding:"max=1000"`
}

// ToQuestion converts the proposal into the bank entry shape.
func (r AddQuestionRequest) ToQuestion() Question {
	return Question{
		Text:    r.Question,
		Options: []string{r.GoodAnswer, r.Bad1, r.Bad2, r.Bad3},
		Correct: r.GoodAnswer,
		Info:    r.Info,
	}
}
