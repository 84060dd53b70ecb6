package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/controller"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
)

type LessonController struct {
	lessons service.LessonService
}

func NewLessonController(lessons service.LessonService) *LessonController {
	return &LessonController{lessons: lessons}
}

// GetCatalog godoc
// @Summary List lessons by category
// @Description Returns every category that has lessons, in menu order. search filters lesson titles case-insensitively.
// @Tags Lessons
// @Produce json
// @Param search query string false "Title filter"
// @Success 200 {array} dto.CategoryLessonsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /learn [get]
func (c *LessonController) GetCatalog(ctx *gin.Context) {
	catalog, err := c.lessons.Catalog(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		controller.RespondError(ctx, "GetCatalog", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromCatalog(catalog))
}

// GetCategory godoc
// @Summary List the lessons of one category
// @Tags Lessons
// @Produce json
// @Param category path string true "Category" Enums(recognize_object, counting, shapes, colors, patterns)
// @Success 200 {object} dto.CategoryLessonsDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /learn/{category} [get]
func (c *LessonController) GetCategory(ctx *gin.Context) {
	category, err := quiz.ParseCategory(ctx.Param("category"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown category", Details: []string{err.Error()}})
		return
	}
	group, err := c.lessons.Category(ctx.Request.Context(), category)
	if err != nil {
		controller.RespondError(ctx, "GetCategory", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromCategoryLessons(group))
}

// GetLesson godoc
// @Summary Get one lesson
// @Description Returns the lesson's questions without revealing which answers are correct.
// @Tags Lessons
// @Produce json
// @Param lesson_id path string true "Lesson ID"
// @Success 200 {object} dto.LessonDTO
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/{lesson_id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	l, err := c.lessons.Lesson(ctx.Request.Context(), ctx.Param("lesson_id"))
	if err != nil {
		controller.RespondError(ctx, "GetLesson", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromLesson(l))
}

func (c *LessonController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/learn", c.GetCatalog)
	group.GET("/learn/:category", c.GetCategory)
	group.GET("/lessons/:lesson_id", c.GetLesson)
}
