package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/internal/controller"
	"github.com/lshigami/tinysteps/internal/dto"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
)

// AuthoringController exposes the single question form and the multi-question batch.
type AuthoringController struct {
	authoring service.AuthoringService
}

func NewAuthoringController(authoring service.AuthoringService) *AuthoringController {
	return &AuthoringController{authoring: authoring}
}

// OpenForm godoc
// @Summary (Admin) Open a question form
// @Description Starts a create form for a category, or an edit form prefilled from question_id.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Param form body dto.OpenFormDTO true "Category for a new question, or question_id to edit"
// @Success 201 {object} dto.FormDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms [post]
func (c *AuthoringController) OpenForm(ctx *gin.Context) {
	var req dto.OpenFormDTO
	if !controller.BindJSON(ctx, "Admin OpenForm", &req) {
		return
	}
	if req.Category == "" && req.QuestionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{"category or question_id is required"}})
		return
	}

	state, err := c.authoring.OpenForm(ctx.Request.Context(), quiz.Category(req.Category), req.QuestionID)
	if err != nil {
		controller.RespondError(ctx, "Admin OpenForm", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromFormState(state))
}

// GetForm godoc
// @Summary (Admin) View a question form
// @Tags Admin - Forms
// @Produce json
// @Param form_id path string true "Form ID"
// @Success 200 {object} dto.FormDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found or expired"
// @Router /admin/forms/{form_id} [get]
func (c *AuthoringController) GetForm(ctx *gin.Context) {
	state, err := c.authoring.GetForm(ctx.Param("form_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin GetForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromFormState(state))
}

// EditForm godoc
// @Summary (Admin) Edit a question form
// @Description Applies any combination of title, image and answer changes. Omitted fields are left alone.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Param form_id path string true "Form ID"
// @Param edit body dto.FormEditDTO true "Changes to apply"
// @Success 200 {object} dto.FormDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Form or answer not found"
// @Failure 422 {object} dto.ErrorResponse "Change rejected, e.g. removing the last answer"
// @Router /admin/forms/{form_id} [patch]
func (c *AuthoringController) EditForm(ctx *gin.Context) {
	var req dto.FormEditDTO
	if !controller.BindJSON(ctx, "Admin EditForm", &req) {
		return
	}
	state, err := c.authoring.EditForm(ctx.Param("form_id"), dto.ToEdit(req))
	if err != nil {
		controller.RespondError(ctx, "Admin EditForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromFormState(state))
}

// SubmitForm godoc
// @Summary (Admin) Submit a question form
// @Description Validates and persists the form. A create form resets and shows the success banner; an edit form returns the listing to go back to.
// @Tags Admin - Forms
// @Produce json
// @Param form_id path string true "Form ID"
// @Success 200 {object} dto.FormSubmitResultDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found or expired"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms/{form_id}/submit [post]
func (c *AuthoringController) SubmitForm(ctx *gin.Context) {
	result, err := c.authoring.SubmitForm(ctx.Request.Context(), ctx.Param("form_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin SubmitForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromFormSubmit(result))
}

// OpenBatch godoc
// @Summary (Admin) Open a multi-question batch
// @Description Starts a batch holding one blank form of the given category.
// @Tags Admin - Batches
// @Accept json
// @Produce json
// @Param batch body dto.OpenBatchDTO true "Batch category"
// @Success 201 {object} dto.BatchDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/batches [post]
func (c *AuthoringController) OpenBatch(ctx *gin.Context) {
	var req dto.OpenBatchDTO
	if !controller.BindJSON(ctx, "Admin OpenBatch", &req) {
		return
	}
	batch := c.authoring.OpenBatch(quiz.Category(req.Category))
	ctx.JSON(http.StatusCreated, dto.FromBatch(batch))
}

// GetBatch godoc
// @Summary (Admin) View a batch
// @Tags Admin - Batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.BatchDTO
// @Failure 404 {object} dto.ErrorResponse "Batch not found or expired"
// @Router /admin/batches/{batch_id} [get]
func (c *AuthoringController) GetBatch(ctx *gin.Context) {
	batch, err := c.authoring.GetBatch(ctx.Param("batch_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin GetBatch", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromBatch(batch))
}

// AddBatchForm godoc
// @Summary (Admin) Add a form to a batch
// @Tags Admin - Batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 201 {object} dto.FormViewDTO
// @Failure 404 {object} dto.ErrorResponse "Batch not found or expired"
// @Router /admin/batches/{batch_id}/forms [post]
func (c *AuthoringController) AddBatchForm(ctx *gin.Context) {
	view, err := c.authoring.AddForm(ctx.Param("batch_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin AddBatchForm", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromFormView(view))
}

// EditBatchForm godoc
// @Summary (Admin) Edit a form inside a batch
// @Description Applies the changes; a form that was already submitted goes back to draft with the new content.
// @Tags Admin - Batches
// @Accept json
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param form_id path string true "Form ID"
// @Param edit body dto.FormEditDTO true "Changes to apply"
// @Success 200 {object} dto.FormViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Batch, form or answer not found"
// @Failure 422 {object} dto.ErrorResponse "Change rejected"
// @Router /admin/batches/{batch_id}/forms/{form_id} [patch]
func (c *AuthoringController) EditBatchForm(ctx *gin.Context) {
	var req dto.FormEditDTO
	if !controller.BindJSON(ctx, "Admin EditBatchForm", &req) {
		return
	}
	view, err := c.authoring.EditBatchForm(ctx.Param("batch_id"), ctx.Param("form_id"), dto.ToEdit(req))
	if err != nil {
		controller.RespondError(ctx, "Admin EditBatchForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromFormView(view))
}

// RemoveBatchForm godoc
// @Summary (Admin) Remove a form from a batch
// @Description The last remaining form is never removed; removed=false is returned instead.
// @Tags Admin - Batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param form_id path string true "Form ID"
// @Success 200 {object} dto.RemoveFormResultDTO
// @Failure 404 {object} dto.ErrorResponse "Batch or form not found"
// @Router /admin/batches/{batch_id}/forms/{form_id} [delete]
func (c *AuthoringController) RemoveBatchForm(ctx *gin.Context) {
	batch, removed, err := c.authoring.RemoveForm(ctx.Param("batch_id"), ctx.Param("form_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin RemoveBatchForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RemoveFormResultDTO{Removed: removed, Batch: dto.FromBatch(batch)})
}

// SubmitBatchForm godoc
// @Summary (Admin) Submit one form of a batch
// @Description Validates the form and stores its payload as a draft. Nothing is persisted until save.
// @Tags Admin - Batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param form_id path string true "Form ID"
// @Success 200 {object} dto.FormViewDTO
// @Failure 404 {object} dto.ErrorResponse "Batch or form not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /admin/batches/{batch_id}/forms/{form_id}/submit [post]
func (c *AuthoringController) SubmitBatchForm(ctx *gin.Context) {
	view, err := c.authoring.SubmitBatchForm(ctx.Param("batch_id"), ctx.Param("form_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin SubmitBatchForm", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromFormView(view))
}

// SaveBatch godoc
// @Summary (Admin) Save every draft of a batch
// @Description Validates each draft, skips the invalid ones and persists the rest concurrently. Returns 207 when some writes failed.
// @Tags Admin - Batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.SaveReportDTO "All valid drafts saved"
// @Success 207 {object} dto.SaveReportDTO "Some writes failed"
// @Failure 404 {object} dto.ErrorResponse "Batch not found or expired"
// @Failure 422 {object} dto.ErrorResponse "Nothing to save, or no valid drafts"
// @Router /admin/batches/{batch_id}/save [post]
func (c *AuthoringController) SaveBatch(ctx *gin.Context) {
	report, err := c.authoring.SaveAll(ctx.Request.Context(), ctx.Param("batch_id"))
	if errors.Is(err, service.ErrNoValidQuestions) {
		log.Warn().Strs("skipped", report.SkippedTitles).Msg("Admin SaveBatch: No valid drafts")
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: service.ErrNoValidQuestions.Error(), Details: report.SkippedTitles})
		return
	}
	if err != nil {
		controller.RespondError(ctx, "Admin SaveBatch", err)
		return
	}
	status := http.StatusOK
	if report.Failed > 0 {
		log.Warn().Int("failed", report.Failed).Int("saved", report.Saved).Msg("Admin SaveBatch: Partial save")
		status = http.StatusMultiStatus
	}
	ctx.JSON(status, dto.FromSaveReport(report))
}

func (c *AuthoringController) RegisterRoutes(group *gin.RouterGroup) {
	forms := group.Group("/forms")
	forms.POST("", c.OpenForm)
	forms.GET("/:form_id", c.GetForm)
	forms.PATCH("/:form_id", c.EditForm)
	forms.POST("/:form_id/submit", c.SubmitForm)

	batches := group.Group("/batches")
	batches.POST("", c.OpenBatch)
	batches.GET("/:batch_id", c.GetBatch)
	batches.POST("/:batch_id/forms", c.AddBatchForm)
	batches.PATCH("/:batch_id/forms/:form_id", c.EditBatchForm)
	batches.DELETE("/:batch_id/forms/:form_id", c.RemoveBatchForm)
	batches.POST("/:batch_id/forms/:form_id/submit", c.SubmitBatchForm)
	batches.POST("/:batch_id/save", c.SaveBatch)
}
