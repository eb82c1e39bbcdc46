package controller

import (
	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/service"
	"placement_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// GetPlanner godoc
// @Summary Planner settings
// @Tags settings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.PlannerSettings}
// @Router /api/settings/planner [get]
func (c *SettingsController) GetPlanner(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	settings, err := c.SettingsService.GetPlanner(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// SavePlanner godoc
// @Summary Save planner settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.PlannerSettings true "Planner settings"
// @Success 200 {object} util.Response{data=model.PlannerSettings}
// @Failure 400 {object} util.Response
// @Router /api/settings/planner [put]
func (c *SettingsController) SavePlanner(ctx *gin.Context) {
	var settings model.PlannerSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	saved, err := c.SettingsService.SavePlanner(claims.UserID, &settings)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, saved)
}

// ReminderRequest toggles the daily study reminder.
// swagger:model ReminderRequest
type ReminderRequest struct {
	Enabled  bool   `json:"enabled"`
	SendTime string `json:"sendTime"`
}

// GetReminder godoc
// @Summary Reminder settings
// @Tags settings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ReminderSettings}
// @Router /api/settings/reminder [get]
func (c *SettingsController) GetReminder(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	settings, err := c.SettingsService.GetReminder(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// SaveReminder godoc
// @Summary Save reminder settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ReminderRequest true "Reminder settings"
// @Success 200 {object} util.Response{data=model.ReminderSettings}
// @Failure 400 {object} util.Response
// @Router /api/settings/reminder [put]
func (c *SettingsController) SaveReminder(ctx *gin.Context) {
	var req ReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	settings, err := c.SettingsService.SaveReminder(claims.UserID, req.Enabled, req.SendTime)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, settings)
}
