package controller

import (
	"errors"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// List godoc
// @Summary List subjects
// @Tags subjects
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Subject}
// @Router /api/subjects [get]
func (c *SubjectController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	subjects, err := c.SubjectService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// CreateSubjectRequest defines a new subject.
// swagger:model CreateSubjectRequest
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=strong medium weak"`
}

// Create godoc
// @Summary Add a subject
// @Tags subjects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateSubjectRequest true "Subject"
// @Success 201 {object} util.Response{data=model.Subject}
// @Failure 400 {object} util.Response
// @Router /api/subjects [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	var req CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	subject, err := c.SubjectService.Create(claims.UserID, req.Name, model.SubjectPriority(req.Priority))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, subject)
}

// UpdatePriorityRequest changes a subject's priority band.
// swagger:model UpdatePriorityRequest
type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=strong medium weak"`
}

// UpdatePriority godoc
// @Summary Update subject priority
// @Tags subjects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "Subject ID"
// @Param   body body UpdatePriorityRequest true "New priority"
// @Success 200 {object} util.Response{data=model.Subject}
// @Failure 404 {object} util.Response
// @Router /api/subjects/{id} [put]
func (c *SubjectController) UpdatePriority(ctx *gin.Context) {
	var req UpdatePriorityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	subjectID := util.MustParseUint(ctx.Param("id"))
	subject, err := c.SubjectService.UpdatePriority(claims.UserID, subjectID, model.SubjectPriority(req.Priority))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, subject)
}

// Delete godoc
// @Summary Remove a subject
// @Tags subjects
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Subject ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	subjectID := util.MustParseUint(ctx.Param("id"))
	if err := c.SubjectService.Delete(claims.UserID, subjectID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
