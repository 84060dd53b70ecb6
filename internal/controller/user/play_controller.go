package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/audio"
	"github.com/lshigami/tinysteps/internal/controller"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
)

// PlayController runs quiz sessions and serves the feedback sounds they reference.
type PlayController struct {
	play  service.PlayService
	audio *audio.Library
}

func NewPlayController(play service.PlayService, library *audio.Library) *PlayController {
	return &PlayController{play: play, audio: library}
}

// StartPlay godoc
// @Summary Start playing a question
// @Description Opens a recognition or counting session depending on the question category. Counting sessions come with three number options per answer.
// @Tags Play
// @Accept json
// @Produce json
// @Param start body dto.StartPlayDTO true "Question to play"
// @Success 201 {object} dto.PlaySessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /play [post]
func (c *PlayController) StartPlay(ctx *gin.Context) {
	var req dto.StartPlayDTO
	if !controller.BindJSON(ctx, "StartPlay", &req) {
		return
	}
	view, err := c.play.Start(ctx.Request.Context(), req.QuestionID)
	if err != nil {
		controller.RespondError(ctx, "StartPlay", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromPlayView(view))
}

// GetPlay godoc
// @Summary View a play session
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.PlaySessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /play/{session_id} [get]
func (c *PlayController) GetPlay(ctx *gin.Context) {
	view, err := c.play.Get(ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, "GetPlay", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromPlayView(view))
}

// SelectAnswer godoc
// @Summary Pick an answer in a recognition session
// @Description Only the first pick counts. The response names the cue to play.
// @Tags Play
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param selection body dto.SelectAnswerDTO true "Chosen answer"
// @Success 200 {object} dto.SelectionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session or answer not found"
// @Failure 409 {object} dto.ErrorResponse "Already answered, or not a recognition session"
// @Router /play/{session_id}/select [post]
func (c *PlayController) SelectAnswer(ctx *gin.Context) {
	var req dto.SelectAnswerDTO
	if !controller.BindJSON(ctx, "SelectAnswer", &req) {
		return
	}
	sel, err := c.play.Select(ctx.Param("session_id"), req.AnswerID)
	if err != nil {
		controller.RespondError(ctx, "SelectAnswer", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromSelection(sel))
}

// SetValues godoc
// @Summary Enter counts in a counting session
// @Description Maps answer IDs to typed numbers. An empty string clears the entry; anything else must be digits.
// @Tags Play
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param values body dto.CountingValuesDTO true "Entered values"
// @Success 200 {object} dto.PlaySessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session or answer not found"
// @Failure 409 {object} dto.ErrorResponse "Not a counting session"
// @Failure 422 {object} dto.ErrorResponse "Value is not a number"
// @Router /play/{session_id}/values [put]
func (c *PlayController) SetValues(ctx *gin.Context) {
	var req dto.CountingValuesDTO
	if !controller.BindJSON(ctx, "SetValues", &req) {
		return
	}
	view, err := c.play.SetValues(ctx.Param("session_id"), req.Values)
	if err != nil {
		controller.RespondError(ctx, "SetValues", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromPlayView(view))
}

// CheckAnswers godoc
// @Summary Check a counting session
// @Description Compares every entered value with its expected count. Fails with 422 while any entry is empty.
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.CheckResultDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 409 {object} dto.ErrorResponse "Not a counting session"
// @Failure 422 {object} dto.ErrorResponse "Some answers are still empty"
// @Router /play/{session_id}/check [post]
func (c *PlayController) CheckAnswers(ctx *gin.Context) {
	result, err := c.play.Check(ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, "CheckAnswers", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromCheck(result))
}

// RetryCounting godoc
// @Summary Try a counting session again
// @Description Clears the entered values and the result. The number options stay the same.
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.RetryResultDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 409 {object} dto.ErrorResponse "Not a counting session"
// @Router /play/{session_id}/retry [post]
func (c *PlayController) RetryCounting(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	cue, err := c.play.Retry(sessionID)
	if err != nil {
		controller.RespondError(ctx, "RetryCounting", err)
		return
	}
	view, err := c.play.Get(sessionID)
	if err != nil {
		controller.RespondError(ctx, "RetryCounting", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RetryResultDTO{Cue: dto.FromCue(cue), Session: dto.FromPlayView(view)})
}

// GetCue godoc
// @Summary Fetch a feedback sound
// @Tags Audio
// @Produce audio/wav
// @Param cue path string true "Cue name" Enums(correct, incorrect, click)
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Unknown cue"
// @Router /audio/{cue} [get]
func (c *PlayController) GetCue(ctx *gin.Context) {
	cue, err := audio.ParseCue(ctx.Param("cue"))
	if err != nil {
		log.Warn().Err(err).Msg("GetCue: Unknown cue")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown audio cue", Details: []string{err.Error()}})
		return
	}
	clip, ok := c.audio.WAV(cue)
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown audio cue"})
		return
	}
	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Data(http.StatusOK, "audio/wav", clip)
}

func (c *PlayController) RegisterRoutes(group *gin.RouterGroup) {
	play := group.Group("/play")
	play.POST("", c.StartPlay)
	play.GET("/:session_id", c.GetPlay)
	play.POST("/:session_id/select", c.SelectAnswer)
	play.PUT("/:session_id/values", c.SetValues)
	play.POST("/:session_id/check", c.CheckAnswers)
	play.POST("/:session_id/retry", c.RetryCounting)

	group.GET("/audio/:cue", c.GetCue)
}
