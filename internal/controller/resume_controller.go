package controller

import (
	"errors"

	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Upload godoc
// @Summary Upload a resume
// @Description Stores the file and replaces any previous resume
// @Tags resume
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Resume file (pdf, doc, docx)"
// @Success 201 {object} util.Response{data=model.Resume}
// @Failure 400 {object} util.Response
// @Router /api/resume [post]
func (c *ResumeController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	claims := util.GetUserFromContext(ctx)
	resume, err := c.ResumeService.Upload(ctx.Request.Context(), claims.UserID, header)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, resume)
}

// Get godoc
// @Summary Current resume metadata
// @Tags resume
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Resume}
// @Failure 404 {object} util.Response
// @Router /api/resume [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	resume, err := c.ResumeService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resume)
}
