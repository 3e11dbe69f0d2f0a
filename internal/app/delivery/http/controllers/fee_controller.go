package controllers

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeeController struct {
	Fees FeeManager
	Log  *zap.Logger
}

func NewFeeController(fees FeeManager, logger *zap.Logger) *FeeController {
	return &FeeController{
		Fees: fees,
		Log:  logger,
	}
}

// Get answers 200 with found=false and zero amounts when the doctor has no fee
// structure yet.
func (ctrl *FeeController) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("FeeController.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	lookup, err := ctrl.Fees.Get(ctx, session.OrganizationFromContext(ctx), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFeeFetched, responses.FeeLookup{
		Fee:   lookup.Fee,
		Found: lookup.Found,
	})
}

func (ctrl *FeeController) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("FeeController.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.UpsertFee)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	saved, err := ctrl.Fees.Upsert(ctx, session.OrganizationFromContext(ctx), models.FeeStructure{
		DoctorID:     doctorID,
		RecurringFee: request.RecurringFee,
		DefaultFee:   request.DefaultFee,
		EmergencyFee: request.EmergencyFee,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFeeSaved, saved)
}

func (ctrl *FeeController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("FeeController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := ctrl.Fees.Delete(ctx, session.OrganizationFromContext(ctx), doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFeeDeleted, nil)
}
