package controller

import (
	"errors"
	"strconv"
	"time"

	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	ScheduleService *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleService: scheduleService}
}

// Get godoc
// @Summary Current schedule run
// @Description Metadata of the latest generation run; tasks come from the calendar and today endpoints
// @Tags schedule
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudySchedule}
// @Failure 404 {object} util.Response "No schedule generated yet"
// @Router /api/schedule [get]
func (c *ScheduleController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	schedule, err := c.ScheduleService.Current(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoSchedule) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, schedule)
}

// Generate godoc
// @Summary Generate a study schedule
// @Description Produces a full calendar between start and end dates, replacing the prior run
// @Tags schedule
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GenerateScheduleRequest true "Date range and optional daily hours"
// @Success 200 {object} util.Response{data=model.StudySchedule}
// @Failure 400 {object} util.Response
// @Router /api/schedule/generate [post]
func (c *ScheduleController) Generate(ctx *gin.Context) {
	var req service.GenerateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	schedule, err := c.ScheduleService.Generate(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, schedule)
}

// Calendar godoc
// @Summary Month calendar view
// @Tags schedule
// @Produce  json
// @Security BearerAuth
// @Param   year  query int false "Year, defaults to current"
// @Param   month query int false "Month 1-12, defaults to current"
// @Success 200 {object} util.Response{data=[]service.CalendarDay}
// @Router /api/schedule/calendar [get]
func (c *ScheduleController) Calendar(ctx *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		util.BadRequest(ctx, "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		util.BadRequest(ctx, "invalid month")
		return
	}

	claims := util.GetUserFromContext(ctx)
	days, err := c.ScheduleService.Calendar(ctx.Request.Context(), claims.UserID, year, month)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, days)
}

// Today godoc
// @Summary Today's tasks
// @Tags schedule
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudyTask}
// @Router /api/schedule/today [get]
func (c *ScheduleController) Today(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	tasks, err := c.ScheduleService.TodayTasks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// TaskCompletionRequest flips one task's completion state.
// swagger:model TaskCompletionRequest
type TaskCompletionRequest struct {
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// CompleteTask godoc
// @Summary Mark a task complete or incomplete
// @Description Updates the task and recomputes the study streak
// @Tags schedule
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "Task ID"
// @Param   body body TaskCompletionRequest true "Completion state"
// @Success 200 {object} util.Response{data=model.StudyTask}
// @Failure 404 {object} util.Response
// @Router /api/schedule/tasks/{id} [put]
func (c *ScheduleController) CompleteTask(ctx *gin.Context) {
	var req TaskCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	taskID := util.MustParseUint(ctx.Param("id"))
	task, err := c.ScheduleService.SetTaskCompletion(claims.UserID, taskID, req.Completed, req.Notes)
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, task)
}

// Progress godoc
// @Summary Schedule progress
// @Tags schedule
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ScheduleProgress}
// @Router /api/schedule/progress [get]
func (c *ScheduleController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	progress, err := c.ScheduleService.Progress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
