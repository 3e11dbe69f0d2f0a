package controllers

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Doctors contracts.DoctorClient
	Log     *zap.Logger
}

func NewDoctorController(doctors contracts.DoctorClient, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		Doctors: doctors,
		Log:     logger,
	}
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.Doctors.GetProfile(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessDoctorProfileFetched, profile)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDoctorProfile)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.Doctors.UpdateProfile(ctx, doctorID, &models.DoctorProfile{
		ID:              doctorID,
		Name:            request.Name,
		Speciality:      request.Speciality,
		Email:           request.Email,
		Phone:           request.Phone,
		Qualification:   request.Qualification,
		Bio:             request.Bio,
		ExperienceYears: request.ExperienceYears,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessDoctorProfileUpdated, profile)
}
