package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/tinysteps/config"
	"github.com/lshigami/tinysteps/internal/authoring"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/rs/zerolog/log"
)

var (
	ErrNothingToSave = errors.New("no questions to save")
	// ErrNoValidQuestions wraps the titles of the drafts that failed validation.
	ErrNoValidQuestions = errors.New("no valid questions to save")
)

// FormState is the view of a single question form session.
type FormState struct {
	FormID         string
	Mode           authoring.Mode
	Question       quiz.Question
	SuccessVisible bool
}

type FormSubmitResult struct {
	Question quiz.Question
	Form     FormState
	Redirect string
}

type BatchState struct {
	BatchID  string
	Category quiz.Category
	Forms    []authoring.FormView
	Counts   authoring.Counts
}

// SaveReport summarises one save-all run over a batch.
type SaveReport struct {
	Saved         int
	Skipped       int
	SkippedTitles []string
	Failed        int
	Errors        []string
	Redirect      string
}

type AuthoringService interface {
	OpenForm(ctx context.Context, category quiz.Category, questionID string) (FormState, error)
	GetForm(formID string) (FormState, error)
	EditForm(formID string, edit authoring.Edit) (FormState, error)
	SubmitForm(ctx context.Context, formID string) (FormSubmitResult, error)

	OpenBatch(category quiz.Category) BatchState
	GetBatch(batchID string) (BatchState, error)
	AddForm(batchID string) (authoring.FormView, error)
	RemoveForm(batchID, formID string) (BatchState, bool, error)
	EditBatchForm(batchID, formID string, edit authoring.Edit) (authoring.FormView, error)
	SubmitBatchForm(batchID, formID string) (authoring.FormView, error)
	SaveAll(ctx context.Context, batchID string) (SaveReport, error)
}

type formSession struct {
	mu   sync.Mutex
	form *authoring.QuestionForm
}

type authoringService struct {
	gateway QuestionGateway
	forms   *workspaces[*formSession]
	batches *workspaces[*authoring.Batch]
	banner  time.Duration
}

func NewAuthoringService(gateway QuestionGateway, cfg *config.Config) AuthoringService {
	return &authoringService{
		gateway: gateway,
		forms:   newWorkspaces[*formSession]("form", cfg.Authoring),
		batches: newWorkspaces[*authoring.Batch]("batch", cfg.Authoring),
		banner:  cfg.Authoring.SuccessBannerDuration,
	}
}

// ListingPath is the admin listing a category's authoring flow returns to.
func ListingPath(category quiz.Category) string {
	switch category {
	case quiz.CategoryCounting:
		return "/admin/counting"
	case quiz.CategoryRecognizeObject:
		return "/admin/object-recognition"
	default:
		return "/admin/questions"
	}
}

// OpenForm starts a create form, or an edit form when questionID is set.
func (s *authoringService) OpenForm(ctx context.Context, category quiz.Category, questionID string) (FormState, error) {
	opts := []authoring.FormOption{authoring.WithBannerDuration(s.banner)}

	var form *authoring.QuestionForm
	if questionID != "" {
		res := s.gateway.FetchByIDWithAnswers(ctx, questionID)
		if err := res.Err(); err != nil {
			return FormState{}, err
		}
		form = authoring.NewEditForm(res.Data, opts...)
	} else {
		form = authoring.NewCreateForm(category, opts...)
	}

	formID := uuid.NewString()
	sess := &formSession{form: form}
	state := stateOf(formID, form)
	s.forms.add(formID, sess)
	return state, nil
}

func (s *authoringService) GetForm(formID string) (FormState, error) {
	sess, err := s.forms.get(formID)
	if err != nil {
		return FormState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return stateOf(formID, sess.form), nil
}

func (s *authoringService) EditForm(formID string, edit authoring.Edit) (FormState, error) {
	sess, err := s.forms.get(formID)
	if err != nil {
		return FormState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := edit.Apply(sess.form); err != nil {
		return stateOf(formID, sess.form), err
	}
	return stateOf(formID, sess.form), nil
}

// SubmitForm validates and persists the form. Create mode inserts, edit mode updates.
func (s *authoringService) SubmitForm(ctx context.Context, formID string) (FormSubmitResult, error) {
	sess, err := s.forms.get(formID)
	if err != nil {
		return FormSubmitResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	mode := sess.form.Mode()
	var stored quiz.Question
	submitted, err := sess.form.Submit(func(q quiz.Question) error {
		var res Result[quiz.Question]
		if mode == authoring.ModeEdit {
			res = s.gateway.Update(ctx, q)
		} else {
			res = s.gateway.Create(ctx, q)
		}
		stored = res.Data
		return res.Err()
	})
	if err != nil {
		log.Warn().Err(err).Str("formID", formID).Msg("SubmitForm: rejected")
		return FormSubmitResult{Form: stateOf(formID, sess.form)}, err
	}

	result := FormSubmitResult{Question: stored, Form: stateOf(formID, sess.form)}
	if mode == authoring.ModeEdit {
		result.Redirect = ListingPath(submitted.Category)
	}
	log.Info().Str("formID", formID).Str("questionID", stored.ID).Str("mode", string(mode)).Msg("Question form submitted")
	return result, nil
}

func (s *authoringService) OpenBatch(category quiz.Category) BatchState {
	batchID := uuid.NewString()
	batch := authoring.NewBatch(batchID, category, authoring.WithBannerDuration(s.banner))
	s.batches.add(batchID, batch)
	return batchStateOf(batch)
}

func (s *authoringService) GetBatch(batchID string) (BatchState, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return BatchState{}, err
	}
	return batchStateOf(batch), nil
}

func (s *authoringService) AddForm(batchID string) (authoring.FormView, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return authoring.FormView{}, err
	}
	return batch.AddForm(), nil
}

// RemoveForm reports false when the form was the batch's last one and was kept.
func (s *authoringService) RemoveForm(batchID, formID string) (BatchState, bool, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return BatchState{}, false, err
	}
	removed, err := batch.RemoveForm(formID)
	if err != nil {
		return BatchState{}, false, err
	}
	return batchStateOf(batch), removed, nil
}

func (s *authoringService) EditBatchForm(batchID, formID string, edit authoring.Edit) (authoring.FormView, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return authoring.FormView{}, err
	}
	return batch.Edit(formID, edit.Apply)
}

func (s *authoringService) SubmitBatchForm(batchID, formID string) (authoring.FormView, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return authoring.FormView{}, err
	}
	return batch.SubmitForm(formID)
}

type saveOutcome struct {
	formID        string
	revision      int
	originalIndex int
	err           error
}

// SaveAll persists every valid draft of the batch in parallel and waits for
// all writes. Invalid drafts are skipped; failed writes are counted but not
// rolled back or retried. Drafts already claimed by a running save are left to
// it, and a draft edited while its write was in flight stays a draft.
func (s *authoringService) SaveAll(ctx context.Context, batchID string) (SaveReport, error) {
	batch, err := s.batches.get(batchID)
	if err != nil {
		return SaveReport{}, err
	}

	pending := batch.Claim()
	if len(pending) == 0 {
		return SaveReport{}, ErrNothingToSave
	}

	var report SaveReport
	var valid []authoring.FormView
	for _, fv := range pending {
		if err := quiz.ValidateForSave(*fv.Payload); err != nil {
			title := strings.TrimSpace(fv.Payload.Title)
			if title == "" {
				title = fv.ID
			}
			log.Warn().Err(err).Str("formID", fv.ID).Msg("SaveAll: skipping invalid draft")
			batch.Release(fv.ID)
			report.Skipped++
			report.SkippedTitles = append(report.SkippedTitles, title)
			continue
		}
		valid = append(valid, fv)
	}
	if len(valid) == 0 {
		return report, fmt.Errorf("%w: %s", ErrNoValidQuestions, strings.Join(report.SkippedTitles, ", "))
	}

	// Writes outlive the request that triggered them.
	writeCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	resultsChan := make(chan saveOutcome, len(valid))
	for i := range valid {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			fv := valid[idx]
			q := fv.Payload.Clone()
			var res Result[quiz.Question]
			if fv.Stored {
				res = s.gateway.Update(writeCtx, q)
			} else {
				res = s.gateway.Create(writeCtx, q)
			}
			resultsChan <- saveOutcome{formID: fv.ID, revision: fv.Revision, originalIndex: idx, err: res.Err()}
		}(i)
	}
	wg.Wait()
	close(resultsChan)

	errs := make([]error, len(valid))
	edited := 0
	for outcome := range resultsChan {
		if outcome.err != nil {
			errs[outcome.originalIndex] = outcome.err
			batch.Release(outcome.formID)
			continue
		}
		if !batch.MarkSaved(outcome.formID, outcome.revision) {
			log.Warn().Str("formID", outcome.formID).Msg("SaveAll: form edited during save, kept as draft")
			edited++
		}
		report.Saved++
	}
	for i, e := range errs {
		if e != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", valid[i].Payload.Title, e))
		}
	}
	if report.Failed == 0 && edited == 0 {
		report.Redirect = ListingPath(batch.Category())
	}

	log.Info().
		Str("batchID", batchID).
		Int("saved", report.Saved).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("Batch save finished")
	return report, nil
}

func stateOf(formID string, form *authoring.QuestionForm) FormState {
	return FormState{
		FormID:         formID,
		Mode:           form.Mode(),
		Question:       form.Snapshot(),
		SuccessVisible: form.SuccessVisible(),
	}
}

func batchStateOf(b *authoring.Batch) BatchState {
	return BatchState{
		BatchID:  b.ID(),
		Category: b.Category(),
		Forms:    b.Forms(),
		Counts:   b.Counts(),
	}
}
