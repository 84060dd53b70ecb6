// Package controller holds what the admin and user handlers share: mapping
// service errors to HTTP responses and binding request bodies.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/authoring"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor picks the HTTP status for an error coming out of a service.
func StatusFor(err error) int {
	var gerr *service.GatewayError
	switch {
	case quiz.IsValidation(err),
		errors.Is(err, quiz.ErrIncompleteAnswers),
		errors.Is(err, quiz.ErrNotANumber),
		errors.Is(err, service.ErrNothingToSave),
		errors.Is(err, service.ErrNoValidQuestions),
		errors.Is(err, authoring.ErrLastAnswer),
		errors.Is(err, authoring.ErrNegativeCount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, service.ErrWrongRoundKind):
		return http.StatusConflict
	case errors.Is(err, quiz.ErrUnknownAnswer),
		errors.Is(err, authoring.ErrAnswerMissing),
		errors.Is(err, authoring.ErrFormNotFound),
		errors.Is(err, service.ErrWorkspaceNotFound),
		errors.Is(err, service.ErrLessonNotFound):
		return http.StatusNotFound
	case errors.As(err, &gerr):
		switch gerr.Kind {
		case service.KindNotFound:
			return http.StatusNotFound
		case service.KindConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// RespondError writes err as a dto.ErrorResponse. Validation errors carry the
// offending field in Details.
func RespondError(ctx *gin.Context, op string, err error) {
	status := StatusFor(err)
	resp := dto.ErrorResponse{Message: err.Error()}

	var ve *quiz.ValidationError
	if errors.As(err, &ve) {
		resp.Details = []string{ve.Field}
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Msg("Request failed")
		resp = dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}}
	} else {
		log.Warn().Err(err).Str("op", op).Int("status", status).Msg("Request rejected")
	}
	ctx.JSON(status, resp)
}

// BindJSON binds the body into req and answers 400 on failure.
func BindJSON(ctx *gin.Context, op string, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}
