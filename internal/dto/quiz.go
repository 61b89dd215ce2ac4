package dto

// QuizCategory selects the category to play. ID 0 or "" plays all categories.
type QuizCategory struct {
	ID   FlexibleID `json:"id" swaggertype:"string"`
	Type string     `json:"type,omitempty"`
}

// PlayQuizRequest asks for the next question of a quiz session
// @Description Request body for the next quiz question
type PlayQuizRequest struct {
	PreviousQuestions []FlexibleID `json:"previous_questions" swaggertype:"array,string"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

// PreviousIDs returns the already shown question IDs as plain strings.
func (r *PlayQuizRequest) PreviousIDs() []string {
	ids := make([]string, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		ids = append(ids, id.String())
	}
	return ids
}

// PlayQuizResponse carries the next question, or Finished when every
// eligible question was already shown.
// @Description Next quiz question
type PlayQuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
	Finished bool              `json:"finished"`
}
