package dto

// QuestionResponse represents a trivia question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionListResponse is one page of questions. Categories is only set on
// the unfiltered listing; CurrentCategory is null unless the page is
// restricted to one category.
// @Description Paginated questions
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	Categories      map[string]string  `json:"categories,omitempty"`
	CurrentCategory *string            `json:"currentCategory"`
}

// CreateQuestionRequest represents a request to add a question
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   FlexibleID `json:"category" swaggertype:"string"`
	Difficulty int        `json:"difficulty"`
}

// CreateQuestionResponse wraps the newly created question
type CreateQuestionResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// DeleteQuestionResponse returns the deleted ID and the refreshed page
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        string             `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
}

// SearchQuestionsRequest represents a question search
// @Description Request body for searching questions
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}
