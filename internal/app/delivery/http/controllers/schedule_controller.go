package controllers

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Schedules ScheduleManager
	Log       *zap.Logger
}

func NewScheduleController(schedules ScheduleManager, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{
		Schedules: schedules,
		Log:       logger,
	}
}

func (ctrl *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("ScheduleController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	entries, err := ctrl.Schedules.List(ctx, session.OrganizationFromContext(ctx), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSchedulesFetched, entries)
}

func (ctrl *ScheduleController) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("ScheduleController.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	weekday, ok := models.ParseWeekday(chi.URLParam(r, constvars.URLParamWeekday))
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrValidation(constvars.CustomValidationErrorMessages["weekday"]))
		return
	}

	request := new(requests.UpsertSchedule)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	entry := models.ScheduleEntry{
		DoctorID:  doctorID,
		Weekday:   weekday,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		IsActive:  true,
	}
	if request.IsActive != nil {
		entry.IsActive = *request.IsActive
	}

	saved, err := ctrl.Schedules.Upsert(ctx, session.OrganizationFromContext(ctx), entry)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessScheduleSaved, saved)
}

func (ctrl *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("ScheduleController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	weekday, ok := models.ParseWeekday(chi.URLParam(r, constvars.URLParamWeekday))
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrValidation(constvars.CustomValidationErrorMessages["weekday"]))
		return
	}

	if err := ctrl.Schedules.Delete(ctx, session.OrganizationFromContext(ctx), doctorID, weekday); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessScheduleDeleted, nil)
}
