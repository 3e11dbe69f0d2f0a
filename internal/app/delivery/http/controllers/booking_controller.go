package controllers

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/booking"
	"clinic-booking-service/internal/app/services/core/search"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Registry *booking.Registry
	Location *time.Location
	Log      *zap.Logger
}

func NewBookingController(registry *booking.Registry, location *time.Location, logger *zap.Logger) *BookingController {
	if location == nil {
		location = time.UTC
	}
	return &BookingController{
		Registry: registry,
		Location: location,
		Log:      logger,
	}
}

func (ctrl *BookingController) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.OpenSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	wizard, err := ctrl.Registry.Open(ctx, session.OrganizationFromContext(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessBookingSessionOpened, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) GetSession(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "GetSession")
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingSessionFetched, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController.CloseSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, sessionID),
	)

	if err := ctrl.Registry.Close(sessionID, session.OrganizationFromContext(ctx)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBookingSessionClosed, nil)
}

func (ctrl *BookingController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "SearchPatients")
	if !ok {
		return
	}

	request := new(requests.SearchInput)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := wizard.SearchPatients(search.Query{Text: request.Query, Filter: request.Filter}); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SuccessSearchAccepted, patientSearchResponse(wizard.Patients()))
}

func (ctrl *BookingController) Patients(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Patients")
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSearchFetched, patientSearchResponse(wizard.Patients()))
}

func (ctrl *BookingController) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "SearchDoctors")
	if !ok {
		return
	}

	request := new(requests.SearchInput)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := wizard.SearchDoctors(search.Query{Text: request.Query, Filter: request.Filter}); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SuccessSearchAccepted, doctorSearchResponse(wizard.Doctors()))
}

func (ctrl *BookingController) Doctors(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Doctors")
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSearchFetched, doctorSearchResponse(wizard.Doctors()))
}

func (ctrl *BookingController) SelectPatient(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "SelectPatient")
	if !ok {
		return
	}

	request := new(requests.SelectPatient)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := wizard.SelectPatient(request.PatientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessPatientSelected, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "SelectDoctor")
	if !ok {
		return
	}

	request := new(requests.SelectDoctor)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := wizard.SelectDoctor(request.DoctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessDoctorSelected, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) Slots(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Slots")
	if !ok {
		return
	}

	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if err := utils.ValidateStruct(&struct {
		Date string `validate:"required,date_only"`
	}{Date: date}); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	times, err := wizard.LoadSlots(r.Context(), date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSlotsFetched, responses.OfferedSlots{
		Date:  date,
		Times: times,
	})
}

func (ctrl *BookingController) SelectSlot(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "SelectSlot")
	if !ok {
		return
	}

	request := new(requests.SelectSlot)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err := wizard.SelectSlot(r.Context(),
		request.Date,
		request.Time,
		models.FeeType(request.FeeType),
		models.PaymentMethod(request.PaymentMethod),
		request.Reason,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSlotSelected, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) Next(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Next")
	if !ok {
		return
	}

	if _, err := wizard.Next(r.Context()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessStageChanged, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) Back(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Back")
	if !ok {
		return
	}

	if _, err := wizard.Back(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessStageChanged, ctrl.sessionResponse(wizard.Snapshot()))
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	wizard, ok := ctrl.wizard(w, r, "Submit")
	if !ok {
		return
	}

	result, err := wizard.Submit(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessAppointmentCreated, responses.SubmitResult{
		AppointmentID: result.AppointmentID,
		AppointmentAt: result.AppointmentAt.In(ctrl.Location).Format(time.RFC3339),
	})
}

// wizard resolves the session in the URL for the caller's organization and
// writes the error response itself when it cannot.
func (ctrl *BookingController) wizard(w http.ResponseWriter, r *http.Request, operation string) (*booking.Wizard, bool) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, sessionID),
	)

	wizard, err := ctrl.Registry.Get(sessionID, session.OrganizationFromContext(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, false
	}
	return wizard, true
}

func (ctrl *BookingController) sessionResponse(snapshot booking.Snapshot) responses.BookingSession {
	draft := snapshot.Draft
	if draft.Date != nil {
		local := draft.Date.In(ctrl.Location)
		draft.Date = &local
	}
	offered := snapshot.OfferedTimes
	if offered == nil {
		offered = []string{}
	}
	return responses.BookingSession{
		SessionID:     snapshot.ID,
		Stage:         snapshot.Stage.String(),
		StageNumber:   int(snapshot.Stage),
		Draft:         draft,
		OfferedTimes:  offered,
		FeeAmount:     snapshot.FeeAmount,
		FeeFound:      snapshot.Fee.Found,
		LastError:     clientMessage(snapshot.LastErr),
		AppointmentID: snapshot.AppointmentID,
		Patients:      patientSearchResponse(snapshot.Patients),
		Doctors:       doctorSearchResponse(snapshot.Doctors),
	}
}

func patientSearchResponse(snapshot search.Snapshot[models.PatientRef]) responses.SearchSnapshot[models.PatientRef] {
	return searchResponse(snapshot)
}

func doctorSearchResponse(snapshot search.Snapshot[models.DoctorRef]) responses.SearchSnapshot[models.DoctorRef] {
	return searchResponse(snapshot)
}

func searchResponse[T search.Record](snapshot search.Snapshot[T]) responses.SearchSnapshot[T] {
	records := snapshot.Records
	if records == nil {
		records = []T{}
	}
	return responses.SearchSnapshot[T]{
		Query:   snapshot.Query.Text,
		Filter:  snapshot.Query.Filter,
		Records: records,
		Loading: snapshot.Loading || snapshot.Pending,
		Error:   clientMessage(snapshot.Err),
		Seq:     snapshot.Seq,
	}
}

func clientMessage(err error) string {
	if err == nil {
		return ""
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
