package handler

import (
	"signupservice/internal/domain/activity"

	"go.uber.org/zap"
)

type Handler struct {
	ActivitySvc activity.Service
	Log         *zap.Logger
}

func New(activitySvc activity.Service, log *zap.Logger) *Handler {
	return &Handler{
		ActivitySvc: activitySvc,
		Log:         log,
	}
}
