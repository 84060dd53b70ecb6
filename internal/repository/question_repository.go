package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/tinysteps/internal/model"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrDuplicateQuestion = errors.New("question already exists")
)

const uniqueViolation = "23505"

// QuestionFilter narrows list queries; an empty Category means every category.
type QuestionFilter struct {
	Category string
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
	FindAllWithAnswers(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	FindByIDWithAnswers(ctx context.Context, id string) (*model.Question, error)
	FindPage(ctx context.Context, offset, limit int, filter QuestionFilter) ([]model.Question, int64, error)
	Count(ctx context.Context) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question and then its answers in one transaction.
func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers").Create(question).Error; err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		return insertAnswers(tx, question)
	})
	return classify(err)
}

// Update rewrites the question row and replaces its whole answer set.
func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Question{}).Where("id = ?", question.ID).Updates(map[string]interface{}{
			"title":     question.Title,
			"image_url": question.ImageURL,
			"category":  question.Category,
		})
		if res.Error != nil {
			return fmt.Errorf("update question: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		return insertAnswers(tx, question)
	})
	return classify(err)
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&model.Question{})
		if res.Error != nil {
			return fmt.Errorf("delete question: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return nil
	})
	return classify(err)
}

func (r *questionRepository) FindAll(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	if err := r.scoped(ctx, filter).Order("created_at DESC, id DESC").Find(&questions).Error; err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, classify(err)
	}
	return &question, nil
}

func (r *questionRepository) FindAllWithAnswers(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	err := r.scoped(ctx, filter).
		Preload("Answers", orderedAnswers).
		Order("created_at DESC, id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

func (r *questionRepository) FindByIDWithAnswers(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", orderedAnswers).
		Where("id = ?", id).
		First(&question).Error
	if err != nil {
		return nil, classify(err)
	}
	return &question, nil
}

// FindPage returns one page of questions, newest first, with the total row count.
func (r *questionRepository) FindPage(ctx context.Context, offset, limit int, filter QuestionFilter) ([]model.Question, int64, error) {
	var total int64
	if err := r.scoped(ctx, filter).Model(&model.Question{}).Count(&total).Error; err != nil {
		return nil, 0, classify(err)
	}

	var questions []model.Question
	err := r.scoped(ctx, filter).
		Preload("Answers", orderedAnswers).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, 0, classify(err)
	}
	return questions, total, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&total).Error; err != nil {
		return 0, classify(err)
	}
	return total, nil
}

func (r *questionRepository) scoped(ctx context.Context, filter QuestionFilter) *gorm.DB {
	q := r.db.WithContext(ctx)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	return q
}

func orderedAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func insertAnswers(tx *gorm.DB, question *model.Question) error {
	if len(question.Answers) == 0 {
		return nil
	}
	for i := range question.Answers {
		question.Answers[i].QuestionID = question.ID
	}
	if err := tx.Create(&question.Answers).Error; err != nil {
		return fmt.Errorf("insert answers: %w", err)
	}
	return nil
}

// classify maps driver errors onto the repository sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrQuestionNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateQuestion, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateQuestion, pgErr.Detail)
	}
	return err
}
