package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/controller"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	gateway service.QuestionGateway
}

func NewQuestionController(gateway service.QuestionGateway) *QuestionController {
	return &QuestionController{gateway: gateway}
}

// categoryQuery reads the optional category filter. An empty value means all categories.
func categoryQuery(ctx *gin.Context) (quiz.Category, bool) {
	raw := ctx.Query("category")
	if raw == "" {
		return "", true
	}
	category, err := quiz.ParseCategory(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid category", Details: []string{err.Error()}})
		return "", false
	}
	return category, true
}

// ListQuestions godoc
// @Summary (Admin) List questions page by page
// @Description Returns one page of questions with their answers, newest first. Page and page size are clamped to valid values.
// @Tags Admin - Questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(10)
// @Param category query string false "Category filter" Enums(recognize_object, counting, shapes, colors, patterns)
// @Success 200 {object} dto.QuestionPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	category, ok := categoryQuery(ctx)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	res := c.gateway.FetchPage(ctx.Request.Context(), page, pageSize, category)
	if err := res.Err(); err != nil {
		controller.RespondError(ctx, "Admin ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromPage(res.Data))
}

// ListAllQuestions godoc
// @Summary (Admin) List every question
// @Description Returns all questions. Answers are left out unless with_answers=true.
// @Tags Admin - Questions
// @Produce json
// @Param category query string false "Category filter" Enums(recognize_object, counting, shapes, colors, patterns)
// @Param with_answers query bool false "Join answers"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/all [get]
func (c *QuestionController) ListAllQuestions(ctx *gin.Context) {
	category, ok := categoryQuery(ctx)
	if !ok {
		return
	}
	var res service.Result[[]quiz.Question]
	if ctx.Query("with_answers") == "true" {
		res = c.gateway.FetchAllWithAnswers(ctx.Request.Context(), category)
	} else {
		res = c.gateway.FetchAll(ctx.Request.Context(), category)
	}
	if err := res.Err(); err != nil {
		controller.RespondError(ctx, "Admin ListAllQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromQuestions(res.Data))
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Description Returns one question with its answers in stored order. Pass with_answers=false for the bare row.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Param with_answers query bool false "Join answers" default(true)
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id := ctx.Param("question_id")
	var res service.Result[quiz.Question]
	if ctx.Query("with_answers") == "false" {
		res = c.gateway.FetchByID(ctx.Request.Context(), id)
	} else {
		res = c.gateway.FetchByIDWithAnswers(ctx.Request.Context(), id)
	}
	if err := res.Err(); err != nil {
		controller.RespondError(ctx, "Admin GetQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromQuestion(res.Data))
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description Validates and stores a question together with its answers in one transaction.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionUpsertDTO true "Question with answers"
// @Success 201 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Duplicate question"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionUpsertDTO
	if !controller.BindJSON(ctx, "Admin CreateQuestion", &req) {
		return
	}
	q := dto.ToQuestion(req)
	if err := quiz.ValidateForSave(q); err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}

	res := c.gateway.Create(ctx.Request.Context(), q)
	if err := res.Err(); err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}
	log.Info().Str("questionID", res.Data.ID).Str("category", string(res.Data.Category)).Msg("Admin CreateQuestion: Question created")
	ctx.JSON(http.StatusCreated, dto.FromQuestion(res.Data))
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Replaces the question fields and its whole answer set.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path string true "Question ID"
// @Param question body dto.QuestionUpsertDTO true "Question with answers"
// @Success 200 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.QuestionUpsertDTO
	if !controller.BindJSON(ctx, "Admin UpdateQuestion", &req) {
		return
	}
	req.ID = ctx.Param("question_id")
	q := dto.ToQuestion(req)
	if err := quiz.ValidateForSave(q); err != nil {
		controller.RespondError(ctx, "Admin UpdateQuestion", err)
		return
	}

	res := c.gateway.Update(ctx.Request.Context(), q)
	if err := res.Err(); err != nil {
		controller.RespondError(ctx, "Admin UpdateQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromQuestion(res.Data))
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Removes the question and its answers.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id := ctx.Param("question_id")
	if err := c.gateway.Delete(ctx.Request.Context(), id).Err(); err != nil {
		controller.RespondError(ctx, "Admin DeleteQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}

func (c *QuestionController) RegisterRoutes(group *gin.RouterGroup) {
	questions := group.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.GET("/all", c.ListAllQuestions)
	questions.GET("/:question_id", c.GetQuestion)
	questions.POST("", c.CreateQuestion)
	questions.PUT("/:question_id", c.UpdateQuestion)
	questions.DELETE("/:question_id", c.DeleteQuestion)
}
