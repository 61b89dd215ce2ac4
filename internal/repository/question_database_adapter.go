package repository

import (
	"context"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"
)

const questionColumns = `id "id", category_id "category_id", question "question", answer "answer", difficulty "difficulty", created_at "created_at", updated_at "updated_at"`

// OFFSET/FETCH is understood by both PostgreSQL and Oracle 12c+.
const pageClause = ` OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, query string, args ...interface{}) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func (a *QuestionDatabaseAdapter) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	exec := GetExecutor(ctx, a.db)
	var total int
	if err := exec.GetContext(ctx, &total, exec.Rebind(query), args...); err != nil {
		return 0, err
	}
	return total, nil
}

// ListQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, page domain.Page) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id` + pageClause
	questions, err := a.selectQuestions(ctx, query, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions (page %d): %w", page.Number, err)
	}
	return questions, nil
}

// CountQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountQuestions(ctx context.Context) (int, error) {
	total, err := a.count(ctx, `SELECT COUNT(*) FROM questions`)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

// ListQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID string, page domain.Page) (*domain.QuestionPage, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category_id = ? ORDER BY id` + pageClause
	questions, err := a.selectQuestions(ctx, query, categoryID, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %s: %w", categoryID, err)
	}
	total, err := a.count(ctx, `SELECT COUNT(*) FROM questions WHERE category_id = ?`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for category %s: %w", categoryID, err)
	}
	return &domain.QuestionPage{Questions: questions, Total: total}, nil
}

// SearchQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string, page domain.Page) (*domain.QuestionPage, error) {
	pattern := likePattern(term)
	query := `SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE ? ESCAPE '\' ORDER BY id` + pageClause
	questions, err := a.selectQuestions(ctx, query, pattern, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	total, err := a.count(ctx, `SELECT COUNT(*) FROM questions WHERE LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}
	return &domain.QuestionPage{Questions: questions, Total: total}, nil
}

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := a.selectQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all questions: %w", err)
	}
	return questions, nil
}

// GetQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, categoryID string) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category_id = ? ORDER BY id`
	questions, err := a.selectQuestions(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %s: %w", categoryID, err)
	}
	return questions, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	row := toModelQuestion(question)
	if row.ID == "" {
		row.ID = util.NewULID()
	}
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	query := `INSERT INTO questions (id, category_id, question, answer, difficulty, created_at, updated_at)
		VALUES (:id, :category_id, :question, :answer, :difficulty, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = row.ID
	question.CreatedAt = row.CreatedAt
	question.UpdatedAt = row.UpdatedAt
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

func toDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
