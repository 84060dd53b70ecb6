package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/config"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/repository"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/lshigami/tinysteps/internal/testutil"
)

func newAdminEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return newAdminEngineWith(t, service.NewQuestionGateway(repository.NewQuestionRepository(testutil.NewDB(t))))
}

func newAdminEngineWith(t *testing.T, gateway service.QuestionGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Authoring: config.Authoring{WorkspaceTTL: time.Hour, MaxWorkspaces: 16}}

	r := gin.New()
	group := r.Group("/api/v1/admin")
	NewQuestionController(gateway).RegisterRoutes(group)
	NewAuthoringController(service.NewAuthoringService(gateway, cfg)).RegisterRoutes(group)
	return r
}

func send(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func countStarsRequest() dto.QuestionUpsertDTO {
	three, five := 3, 5
	return dto.QuestionUpsertDTO{
		Title:    "Count stars",
		ImageURL: "a.png",
		Category: "counting",
		Answers: []dto.AnswerInputDTO{
			{IsCorrect: true, ImageURL: "s1.png", Count: &three},
			{IsCorrect: true, ImageURL: "s2.png", Count: &five},
		},
	}
}

// TestCreateQuestionRoundTrip verifies create, fetch, update and delete over HTTP.
func TestCreateQuestionRoundTrip(t *testing.T) {
	r := newAdminEngine(t)

	rec := send(t, r, http.MethodPost, "/api/v1/admin/questions", countStarsRequest())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created dto.QuestionDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(created.Answers) != 2 || created.Answers[1].Count != 5 {
		t.Fatalf("expected two counting answers, got %+v", created.Answers)
	}

	rec = send(t, r, http.MethodGet, "/api/v1/admin/questions/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	update := countStarsRequest()
	update.Title = "Count moons"
	update.Answers = update.Answers[:1]
	rec = send(t, r, http.MethodPut, "/api/v1/admin/questions/"+created.ID, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated dto.QuestionDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Title != "Count moons" || len(updated.Answers) != 1 {
		t.Fatalf("expected updated question with one answer, got %+v", updated)
	}

	rec = send(t, r, http.MethodDelete, "/api/v1/admin/questions/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = send(t, r, http.MethodGet, "/api/v1/admin/questions/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

// TestCreateQuestionRejectsBadInput verifies binding and validation statuses.
func TestCreateQuestionRejectsBadInput(t *testing.T) {
	r := newAdminEngine(t)

	rec := send(t, r, http.MethodPost, "/api/v1/admin/questions", map[string]string{"category": "history"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d", rec.Code)
	}

	req := countStarsRequest()
	req.Title = "  "
	rec = send(t, r, http.MethodPost, "/api/v1/admin/questions", req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for blank title, got %d", rec.Code)
	}

	rec = send(t, r, http.MethodGet, "/api/v1/admin/questions?category=history", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter, got %d", rec.Code)
	}
}

// TestSaveBatchWithNothingSubmitted verifies an untouched batch cannot be saved.
func TestSaveBatchWithNothingSubmitted(t *testing.T) {
	r := newAdminEngine(t)

	rec := send(t, r, http.MethodPost, "/api/v1/admin/batches", dto.OpenBatchDTO{Category: "counting"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var batch dto.BatchDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &batch)
	if len(batch.Forms) != 1 || batch.Counts.Editing != 1 {
		t.Fatalf("expected one editing form, got %+v", batch)
	}

	rec = send(t, r, http.MethodPost, "/api/v1/admin/batches/"+batch.BatchID+"/save", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec = send(t, r, http.MethodDelete, "/api/v1/admin/batches/"+batch.BatchID+"/forms/"+batch.Forms[0].ID, nil)
	var removed dto.RemoveFormResultDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &removed)
	if rec.Code != http.StatusOK || removed.Removed {
		t.Fatalf("expected the last form to stay, got %d %+v", rec.Code, removed)
	}

	rec = send(t, r, http.MethodGet, "/api/v1/admin/batches/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown batch, got %d", rec.Code)
	}
}

// rejectingGateway fails Create for one title.
type rejectingGateway struct {
	service.QuestionGateway
	title string
}

func (g rejectingGateway) Create(ctx context.Context, q quiz.Question) service.Result[quiz.Question] {
	if q.Title == g.title {
		return service.Result[quiz.Question]{Error: "boom", Kind: service.KindBackend}
	}
	return g.QuestionGateway.Create(ctx, q)
}

// TestSaveBatchPartialFailure verifies a batch with a failed write answers 207 with the counts.
func TestSaveBatchPartialFailure(t *testing.T) {
	inner := service.NewQuestionGateway(repository.NewQuestionRepository(testutil.NewDB(t)))
	r := newAdminEngineWith(t, rejectingGateway{QuestionGateway: inner, title: "Rocket 2"})

	rec := send(t, r, http.MethodPost, "/api/v1/admin/batches", dto.OpenBatchDTO{Category: "recognize_object"})
	var batch dto.BatchDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &batch)
	rec = send(t, r, http.MethodPost, "/api/v1/admin/batches/"+batch.BatchID+"/forms", nil)
	var added dto.FormViewDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &added)
	formIDs := []string{batch.Forms[0].ID, added.ID}

	image := "rocket.png"
	for i, id := range formIDs {
		title := fmt.Sprintf("Rocket %d", i+1)
		edit := dto.FormEditDTO{
			Title:      &title,
			ImageURL:   &image,
			SetCorrect: &dto.CorrectSelectionDTO{AnswerID: "answer1", Checked: true},
		}
		path := "/api/v1/admin/batches/" + batch.BatchID + "/forms/" + id
		if rec = send(t, r, http.MethodPatch, path, edit); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on edit, got %d: %s", rec.Code, rec.Body.String())
		}
		if rec = send(t, r, http.MethodPost, path+"/submit", nil); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on submit, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec = send(t, r, http.MethodPost, "/api/v1/admin/batches/"+batch.BatchID+"/save", nil)
	if rec.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207, got %d: %s", rec.Code, rec.Body.String())
	}
	var report dto.SaveReportDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &report)
	if report.Saved != 1 || report.Failed != 1 || report.Redirect != "" {
		t.Fatalf("expected 1 saved and 1 failed without redirect, got %+v", report)
	}
	if n := inner.Count(context.Background()).Data; n != 1 {
		t.Fatalf("expected the saved write to be kept, got %d questions", n)
	}
}
