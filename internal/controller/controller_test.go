package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/authoring"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
)

// TestStatusFor verifies each error family maps to its HTTP status.
func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{quiz.ErrTitleRequired, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: a, b", service.ErrNoValidQuestions), http.StatusUnprocessableEntity},
		{authoring.ErrLastAnswer, http.StatusUnprocessableEntity},
		{quiz.ErrIncompleteAnswers, http.StatusUnprocessableEntity},
		{quiz.ErrAlreadyAnswered, http.StatusConflict},
		{service.ErrWrongRoundKind, http.StatusConflict},
		{service.ErrWorkspaceNotFound, http.StatusNotFound},
		{service.ErrLessonNotFound, http.StatusNotFound},
		{authoring.ErrFormNotFound, http.StatusNotFound},
		{&service.GatewayError{Kind: service.KindNotFound, Message: "gone"}, http.StatusNotFound},
		{&service.GatewayError{Kind: service.KindConflict, Message: "dup"}, http.StatusConflict},
		{&service.GatewayError{Kind: service.KindBackend, Message: "down"}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("expected %d for %v, got %d", tc.want, tc.err, got)
		}
	}
}

// TestRespondErrorCarriesField verifies validation failures name the field.
func TestRespondErrorCarriesField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	RespondError(ctx, "test", quiz.ErrImageRequired)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", recorder.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0] != quiz.ErrImageRequired.Field {
		t.Fatalf("expected field detail, got %+v", resp)
	}
}
