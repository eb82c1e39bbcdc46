package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrNoRoadmap          = errors.New("no roadmap generated yet")
	ErrNoSchedule         = errors.New("no schedule generated yet")
	ErrTaskNotFound       = errors.New("study task not found")
	ErrInvalidTimeWindow  = errors.New("window end must be after start")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
)
