package controller

import (
	"strconv"

	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PerformanceController struct {
	PerformanceService *service.PerformanceService
}

func NewPerformanceController(performanceService *service.PerformanceService) *PerformanceController {
	return &PerformanceController{PerformanceService: performanceService}
}

// Log godoc
// @Summary Log a performance entry
// @Tags performance
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.LogRequest true "Performance entry"
// @Success 201 {object} util.Response{data=model.PerformanceLog}
// @Failure 400 {object} util.Response
// @Router /api/performance [post]
func (c *PerformanceController) Log(ctx *gin.Context) {
	var req service.LogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	entry, err := c.PerformanceService.Log(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, entry)
}

// History godoc
// @Summary Performance history
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Param   limit   query int    false "Max entries, newest first"
// @Param   subject query string false "Restrict to one subject, oldest first"
// @Success 200 {object} util.Response{data=[]model.PerformanceLog}
// @Router /api/performance [get]
func (c *PerformanceController) History(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	subject := ctx.Query("subject")

	claims := util.GetUserFromContext(ctx)
	logs, err := c.PerformanceService.History(claims.UserID, subject, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}

// Aggregates godoc
// @Summary Per-subject performance averages
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]repository.SubjectAggregate}
// @Router /api/performance/subjects [get]
func (c *PerformanceController) Aggregates(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	rows, err := c.PerformanceService.SubjectAggregates(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// ProposeWeights godoc
// @Summary Preview adaptive weight adjustments
// @Description Runs the adjuster over recent mock scores without persisting anything
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.WeightProposal}
// @Router /api/performance/weights/propose [get]
func (c *PerformanceController) ProposeWeights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	proposals, err := c.PerformanceService.ProposeWeights(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposals)
}

// ApplyWeights godoc
// @Summary Apply adaptive weight adjustments
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.WeightProposal}
// @Router /api/performance/weights/apply [post]
func (c *PerformanceController) ApplyWeights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	proposals, err := c.PerformanceService.ApplyWeights(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposals)
}

// FocusSuggestions godoc
// @Summary Focus area suggestions
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/performance/focus [get]
func (c *PerformanceController) FocusSuggestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	suggestions, err := c.PerformanceService.FocusSuggestions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, suggestions)
}

// Readiness godoc
// @Summary Placement readiness score
// @Tags performance
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=planner.Readiness}
// @Router /api/performance/readiness [get]
func (c *PerformanceController) Readiness(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	readiness, err := c.PerformanceService.Readiness(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, readiness)
}
