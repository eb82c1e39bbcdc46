package controller

import (
	"errors"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// Generate godoc
// @Summary Generate a roadmap
// @Description Builds the personalized curriculum and replaces any previous one
// @Tags roadmap
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GenerateRequest true "Roadmap inputs"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 400 {object} util.Response
// @Router /api/roadmap/generate [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	roadmap, err := c.RoadmapService.Generate(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

// Get godoc
// @Summary Current roadmap
// @Tags roadmap
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response "No roadmap generated yet"
// @Router /api/roadmap [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmap, err := c.RoadmapService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoRoadmap) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, roadmap)
}

// TopicStatusRequest transitions one roadmap topic.
// swagger:model TopicStatusRequest
type TopicStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress completed"`
}

// UpdateTopicStatus godoc
// @Summary Update topic status
// @Description Transitions a topic and recomputes milestone reached flags
// @Tags roadmap
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "Topic ID"
// @Param   body body TopicStatusRequest true "New status"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/topics/{id} [put]
func (c *RoadmapController) UpdateTopicStatus(ctx *gin.Context) {
	var req TopicStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	topicID := util.MustParseUint(ctx.Param("id"))
	roadmap, err := c.RoadmapService.UpdateTopicStatus(claims.UserID, topicID, model.TopicStatus(req.Status))
	if err != nil {
		if errors.Is(err, util.ErrNoRoadmap) || errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, roadmap)
}

// Progress godoc
// @Summary Roadmap progress and readiness
// @Tags roadmap
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.RoadmapProgress}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/progress [get]
func (c *RoadmapController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	progress, err := c.RoadmapService.Progress(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoRoadmap) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// Branches godoc
// @Summary Supported branches
// @Tags roadmap
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/roadmap/branches [get]
func (c *RoadmapController) Branches(ctx *gin.Context) {
	util.Success(ctx, c.RoadmapService.Branches())
}
