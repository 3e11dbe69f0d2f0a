// Package booking drives the appointment booking flow: select a patient, a
// doctor, then a slot with billing details, and submit.
package booking

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/fees"
	"clinic-booking-service/internal/app/services/core/search"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/app/services/core/slot"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type SlotProvider interface {
	OfferedTimes(ctx context.Context, org session.OrganizationContext, doctorID string, date time.Time) ([]string, error)
}

type FeeProvider interface {
	Get(ctx context.Context, org session.OrganizationContext, doctorID string) (fees.Lookup, error)
}

type Dependencies struct {
	Patients       contracts.PatientClient
	Doctors        contracts.DoctorClient
	Appointments   contracts.AppointmentClient
	Slots          SlotProvider
	Fees           FeeProvider
	Events         contracts.BookingEventPublisher
	Location       *time.Location
	Now            func() time.Time
	SearchDebounce time.Duration
	SearchLimit    int
	AfterFunc      search.AfterFunc
	Log            *zap.Logger
}

type SubmitResult struct {
	AppointmentID string
	AppointmentAt time.Time
}

type Snapshot struct {
	ID            string
	Stage         Stage
	Draft         models.AppointmentDraft
	OfferedTimes  []string
	Fee           fees.Lookup
	FeeAmount     int64
	// LastErr is the most recent failure. A failed submission shows up here
	// with Stage back at StageSelectingSlot; there is no separate failed stage.
	LastErr       error
	AppointmentID string
	Closed        bool
	Patients      search.Snapshot[models.PatientRef]
	Doctors       search.Snapshot[models.DoctorRef]
}

// offeredSet remembers which doctor and day a list of offered times belongs to.
type offeredSet struct {
	doctorID string
	date     time.Time
	times    []string
}

func (o *offeredSet) matches(doctorID string, date time.Time) bool {
	return o != nil && o.doctorID == doctorID && o.date.Equal(date)
}

// Wizard holds the single in-progress draft of one booking flow. It is safe for
// concurrent use; network calls are made without holding its lock and every
// state change afterwards re-checks that the wizard is still open.
type Wizard struct {
	ID   string
	org  session.OrganizationContext
	deps Dependencies

	patients *search.Searcher[models.PatientRef]
	doctors  *search.Searcher[models.DoctorRef]

	mu            sync.Mutex
	stage         Stage
	draft         models.AppointmentDraft
	offered       *offeredSet
	fee           fees.Lookup
	feeDoctorID   string
	lastErr       error
	appointmentID string
	closed        bool
	lastActivity  time.Time
}

// NewWizard keeps ctx's values (session token, request ID) for its searches.
func NewWizard(ctx context.Context, id string, org session.OrganizationContext, deps Dependencies) *Wizard {
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	w := &Wizard{
		ID:    id,
		org:   org,
		deps:  deps,
		stage: StageSelectingPatient,
	}
	w.patients = search.New(ctx, search.PatientFetcher(deps.Patients, deps.SearchLimit), search.Options{
		Name:      "patients",
		Debounce:  deps.SearchDebounce,
		AfterFunc: deps.AfterFunc,
	}, deps.Log.With(zap.String(constvars.LoggingWizardIDKey, id)))
	w.doctors = search.New(ctx, search.DoctorFetcher(deps.Doctors, org, deps.SearchLimit), search.Options{
		Name:      "doctors",
		Debounce:  deps.SearchDebounce,
		AfterFunc: deps.AfterFunc,
	}, deps.Log.With(zap.String(constvars.LoggingWizardIDKey, id)))
	w.lastActivity = deps.Now()
	return w
}

// Start issues the default unfiltered patient list.
func (w *Wizard) Start() {
	w.patients.Issue(search.Query{Filter: search.FilterAll})
}

func (w *Wizard) Organization() session.OrganizationContext {
	return w.org
}

func (w *Wizard) SearchPatients(query search.Query) error {
	if err := w.touch(); err != nil {
		return err
	}
	w.patients.Input(query)
	return nil
}

func (w *Wizard) SearchDoctors(query search.Query) error {
	if err := w.touch(); err != nil {
		return err
	}
	w.doctors.Input(query)
	return nil
}

func (w *Wizard) Patients() search.Snapshot[models.PatientRef] {
	return w.patients.Snapshot()
}

func (w *Wizard) Doctors() search.Snapshot[models.DoctorRef] {
	return w.doctors.Snapshot()
}

// SelectPatient picks a record from the current patient results. Re-selection
// replaces the previous patient.
func (w *Wizard) SelectPatient(patientID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingPatient); err != nil {
		return err
	}
	if !utils.IsValidPatientID(patientID) {
		return w.failLocked(exceptions.ErrInvalidIdentifier(string(utils.IdentifierPatient), patientID))
	}
	patient, ok := w.patients.Find(patientID)
	if !ok {
		return w.failLocked(exceptions.ErrRecordNotInResults(constvars.ResourcePatient, patientID))
	}
	w.draft.Patient = &patient
	w.lastErr = nil
	w.logStage("Wizard.SelectPatient succeeded", zap.String(constvars.LoggingPatientIDKey, patientID))
	return nil
}

// SelectDoctor picks a record from the current doctor results. Choosing a
// different doctor invalidates the offered times but keeps the entered slot
// fields; they are checked again against the new doctor's times.
func (w *Wizard) SelectDoctor(doctorID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingDoctor); err != nil {
		return err
	}
	if !utils.IsValidDoctorID(doctorID) {
		return w.failLocked(exceptions.ErrInvalidIdentifier(string(utils.IdentifierDoctor), doctorID))
	}
	doctorID = utils.CanonicalDoctorID(doctorID)
	doctor, ok := w.doctors.Find(doctorID)
	if !ok {
		return w.failLocked(exceptions.ErrRecordNotInResults(constvars.ResourceDoctor, doctorID))
	}
	if w.draft.Doctor == nil || w.draft.Doctor.ID != doctor.ID {
		w.offered = nil
	}
	w.draft.Doctor = &doctor
	w.lastErr = nil
	w.logStage("Wizard.SelectDoctor succeeded", zap.String(constvars.LoggingDoctorIDKey, doctorID))
	return nil
}

// Next moves one stage forward once the current stage's fields are present
// and well formed. Leaving stage 3 is only possible through Submit.
func (w *Wizard) Next(ctx context.Context) (Stage, error) {
	w.mu.Lock()
	if err := w.openLocked(); err != nil {
		w.mu.Unlock()
		return 0, err
	}
	var enteredDoctorStage, enteredSlotStage bool
	switch w.stage {
	case StageSelectingPatient:
		if w.draft.Patient == nil {
			w.mu.Unlock()
			return 0, w.fail(exceptions.ErrWizardMissingField("patient", w.stage.String()))
		}
		if !utils.IsValidPatientID(w.draft.Patient.ID) {
			w.mu.Unlock()
			return 0, w.fail(exceptions.ErrInvalidIdentifier(string(utils.IdentifierPatient), w.draft.Patient.ID))
		}
		w.stage = StageSelectingDoctor
		enteredDoctorStage = true
	case StageSelectingDoctor:
		if w.draft.Doctor == nil {
			w.mu.Unlock()
			return 0, w.fail(exceptions.ErrWizardMissingField("doctor", w.stage.String()))
		}
		if !utils.IsValidDoctorID(w.draft.Doctor.ID) {
			w.mu.Unlock()
			return 0, w.fail(exceptions.ErrInvalidIdentifier(string(utils.IdentifierDoctor), w.draft.Doctor.ID))
		}
		w.stage = StageSelectingSlot
		enteredSlotStage = true
	default:
		stage := w.stage
		w.mu.Unlock()
		return 0, exceptions.ErrWizardStage(stage.String())
	}
	w.lastErr = nil
	stage := w.stage
	w.logStage("Wizard.Next succeeded")
	w.mu.Unlock()

	if enteredDoctorStage {
		if doctors := w.doctors.Snapshot(); doctors.Seq == 0 && !doctors.Loading && !doctors.Pending {
			w.doctors.Issue(search.Query{Filter: search.FilterAll})
		}
	}
	if enteredSlotStage {
		w.refreshFee(ctx)
	}
	return stage, nil
}

// Back moves one stage backward. No field is cleared.
func (w *Wizard) Back() (Stage, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.openLocked(); err != nil {
		return 0, err
	}
	switch w.stage {
	case StageSelectingDoctor:
		w.stage = StageSelectingPatient
	case StageSelectingSlot:
		w.stage = StageSelectingDoctor
	default:
		return 0, exceptions.ErrWizardStage(w.stage.String())
	}
	w.logStage("Wizard.Back succeeded")
	return w.stage, nil
}

// LoadSlots fetches the times offered on date ("YYYY-MM-DD") for the selected
// doctor and makes date the draft's date. A previously chosen time that is not
// offered on the new date is cleared.
func (w *Wizard) LoadSlots(ctx context.Context, date string) ([]string, error) {
	w.mu.Lock()
	if err := w.requireStageLocked(StageSelectingSlot); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	day, err := w.parseBookableDateLocked(date)
	if err != nil {
		w.mu.Unlock()
		return nil, w.fail(err)
	}
	if w.draft.Doctor == nil {
		w.mu.Unlock()
		return nil, w.fail(exceptions.ErrWizardMissingField("doctor", w.stage.String()))
	}
	doctorID := w.draft.Doctor.ID
	w.mu.Unlock()

	times, err := w.deps.Slots.OfferedTimes(ctx, w.org, doctorID, day)
	if err != nil {
		return nil, w.fail(err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingSlot); err != nil {
		return nil, err
	}
	if w.draft.Doctor == nil || w.draft.Doctor.ID != doctorID {
		return nil, w.failLocked(exceptions.ErrWizardStage(w.stage.String()))
	}
	w.offered = &offeredSet{doctorID: doctorID, date: day, times: times}
	w.draft.Date = &day
	if w.draft.Time != "" && !slot.Contains(times, w.draft.Time) {
		w.draft.Time = ""
	}
	w.lastErr = nil
	w.logStage("Wizard.LoadSlots succeeded", zap.Int(constvars.LoggingSlotCountKey, len(times)))
	out := make([]string, len(times))
	copy(out, times)
	return out, nil
}

// SelectTime requires t to be one of the times offered for the draft's date.
func (w *Wizard) SelectTime(t string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingSlot); err != nil {
		return err
	}
	if _, err := utils.ParseClock(t); err != nil {
		return w.failLocked(err)
	}
	if w.draft.Doctor == nil || w.draft.Date == nil || !w.offered.matches(w.draft.Doctor.ID, *w.draft.Date) {
		return w.failLocked(exceptions.ErrWizardMissingField("date", w.stage.String()))
	}
	if !slot.Contains(w.offered.times, t) {
		return w.failLocked(exceptions.ErrValidation(fmt.Sprintf(constvars.ErrDevTimeNotOffered, t)))
	}
	w.draft.Time = t
	w.lastErr = nil
	return nil
}

func (w *Wizard) SetBilling(feeType models.FeeType, paymentMethod models.PaymentMethod) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingSlot); err != nil {
		return err
	}
	if !feeType.IsValid() {
		return w.failLocked(exceptions.ErrValidation("fee_type " + constvars.CustomValidationErrorMessages["fee_type"]))
	}
	if !paymentMethod.IsValid() {
		return w.failLocked(exceptions.ErrValidation("payment_method " + constvars.CustomValidationErrorMessages["payment_method"]))
	}
	w.draft.FeeType = feeType
	w.draft.PaymentMethod = paymentMethod
	w.lastErr = nil
	return nil
}

func (w *Wizard) SetReason(reason string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireStageLocked(StageSelectingSlot); err != nil {
		return err
	}
	w.draft.Reason = strings.TrimSpace(reason)
	return nil
}

// SelectSlot sets every stage 3 field at once, loading the offered times for
// date when they are not loaded yet.
func (w *Wizard) SelectSlot(ctx context.Context, date, t string, feeType models.FeeType, paymentMethod models.PaymentMethod, reason string) error {
	w.mu.Lock()
	needsLoad := true
	if w.draft.Doctor != nil && w.draft.Date != nil && w.draft.Date.Format(utils.LayoutDateOnly) == date {
		needsLoad = !w.offered.matches(w.draft.Doctor.ID, *w.draft.Date)
	}
	w.mu.Unlock()

	if needsLoad {
		if _, err := w.LoadSlots(ctx, date); err != nil {
			return err
		}
	}
	if err := w.SelectTime(t); err != nil {
		return err
	}
	if err := w.SetBilling(feeType, paymentMethod); err != nil {
		return err
	}
	return w.SetReason(reason)
}

// Submit validates the whole draft again, including every identifier, and
// creates the appointment. On success the draft is discarded and the wizard
// closes; on failure it stays at stage 3 and may be retried.
func (w *Wizard) Submit(ctx context.Context) (*SubmitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	w.mu.Lock()
	if err := w.openLocked(); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	switch w.stage {
	case StageSelectingSlot:
	case StageSubmitting:
		w.mu.Unlock()
		return nil, exceptions.ErrWizardSubmitting()
	default:
		stage := w.stage
		w.mu.Unlock()
		return nil, exceptions.ErrWizardStage(stage.String())
	}
	payload, appointmentAt, err := w.buildPayloadLocked()
	if err != nil {
		w.lastErr = err
		w.mu.Unlock()
		return nil, err
	}
	draft := w.draft.Clone()
	offeredKnown := w.offered.matches(draft.Doctor.ID, *draft.Date)
	var offered []string
	if offeredKnown {
		offered = w.offered.times
	}
	w.stage = StageSubmitting
	w.logStage("Wizard.Submit called")
	w.mu.Unlock()

	if !offeredKnown {
		offered, err = w.deps.Slots.OfferedTimes(ctx, w.org, draft.Doctor.ID, *draft.Date)
		if err != nil {
			return nil, w.submitFailed(err)
		}
	}
	if !slot.Contains(offered, draft.Time) {
		return nil, w.submitFailed(exceptions.ErrValidation(fmt.Sprintf(constvars.ErrDevTimeNotOffered, draft.Time)))
	}

	appointmentID, err := w.deps.Appointments.Create(ctx, payload)
	if err != nil {
		return nil, w.submitFailed(err)
	}

	w.mu.Lock()
	w.stage = StageSuccess
	w.appointmentID = appointmentID
	w.draft = models.AppointmentDraft{}
	w.offered = nil
	w.lastErr = nil
	w.closeLocked()
	w.logStage("Wizard.Submit succeeded", zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	w.mu.Unlock()

	if w.deps.Events != nil {
		event := &contracts.AppointmentCreatedEvent{
			AppointmentID:  appointmentID,
			PatientID:      payload.PatientID,
			DoctorID:       payload.DoctorID,
			OrganizationID: payload.OrgID,
			AppointmentAt:  appointmentAt,
			FeeType:        payload.FeeType,
			PaymentMethod:  payload.PaymentMethod,
			OccurredAt:     w.deps.Now(),
		}
		if err := w.deps.Events.PublishAppointmentCreated(ctx, event); err != nil {
			w.deps.Log.Error("Wizard.Submit could not publish appointment event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingWizardIDKey, w.ID),
				zap.Error(err),
			)
		}
	}

	return &SubmitResult{AppointmentID: appointmentID, AppointmentAt: appointmentAt}, nil
}

// buildPayloadLocked checks every field stage 3 needs and every identifier,
// then renders the appointment date in the configured location.
func (w *Wizard) buildPayloadLocked() (*requests.CreateAppointment, time.Time, error) {
	draft := w.draft
	switch {
	case draft.Patient == nil:
		return nil, time.Time{}, exceptions.ErrWizardMissingField("patient", w.stage.String())
	case draft.Doctor == nil:
		return nil, time.Time{}, exceptions.ErrWizardMissingField("doctor", w.stage.String())
	case draft.Date == nil:
		return nil, time.Time{}, exceptions.ErrWizardMissingField("date", w.stage.String())
	case draft.Time == "":
		return nil, time.Time{}, exceptions.ErrWizardMissingField("time", w.stage.String())
	case !draft.FeeType.IsValid():
		return nil, time.Time{}, exceptions.ErrWizardMissingField("fee_type", w.stage.String())
	case !draft.PaymentMethod.IsValid():
		return nil, time.Time{}, exceptions.ErrWizardMissingField("payment_method", w.stage.String())
	}

	if err := utils.RequireIdentifier(utils.IdentifierPatient, draft.Patient.ID); err != nil {
		return nil, time.Time{}, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, draft.Doctor.ID); err != nil {
		return nil, time.Time{}, err
	}
	orgID, err := w.org.ID()
	if err != nil {
		return nil, time.Time{}, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierOrganization, orgID); err != nil {
		return nil, time.Time{}, exceptions.ErrOrganizationInvalid(err)
	}

	if !utils.IsNotBefore(*draft.Date, w.deps.Now()) {
		return nil, time.Time{}, exceptions.ErrValidation(constvars.ErrDevDateInPast)
	}
	clock, err := utils.ParseClock(draft.Time)
	if err != nil {
		return nil, time.Time{}, err
	}
	appointmentAt := utils.CombineDateAndClock(draft.Date.In(w.deps.Location), clock)

	return &requests.CreateAppointment{
		PatientID:       draft.Patient.ID,
		DoctorID:        draft.Doctor.ID,
		OrgID:           orgID,
		AppointmentDate: appointmentAt.Format(time.RFC3339),
		FeeType:         string(draft.FeeType),
		PaymentMethod:   string(draft.PaymentMethod),
		Reason:          draft.Reason,
	}, appointmentAt, nil
}

func (w *Wizard) submitFailed(err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage == StageSubmitting {
		w.stage = StageSelectingSlot
	}
	w.lastErr = err
	w.deps.Log.Warn("Wizard.Submit failed",
		zap.String(constvars.LoggingWizardIDKey, w.ID),
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		zap.Error(err),
	)
	return err
}

// refreshFee loads the fee preview for the selected doctor. A failure is kept
// as the wizard's last error and does not block the flow.
func (w *Wizard) refreshFee(ctx context.Context) {
	if w.deps.Fees == nil {
		return
	}
	w.mu.Lock()
	if w.closed || w.draft.Doctor == nil || w.feeDoctorID == w.draft.Doctor.ID {
		w.mu.Unlock()
		return
	}
	doctorID := w.draft.Doctor.ID
	w.mu.Unlock()

	lookup, err := w.deps.Fees.Get(ctx, w.org, doctorID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.draft.Doctor == nil || w.draft.Doctor.ID != doctorID {
		return
	}
	if err != nil {
		w.lastErr = err
		return
	}
	w.fee = lookup
	w.feeDoctorID = doctorID
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snapshot := Snapshot{
		ID:            w.ID,
		Stage:         w.stage,
		Draft:         w.draft.Clone(),
		LastErr:       w.lastErr,
		AppointmentID: w.appointmentID,
		Closed:        w.closed,
		Patients:      w.patients.Snapshot(),
		Doctors:       w.doctors.Snapshot(),
	}
	if w.draft.Doctor != nil && w.feeDoctorID == w.draft.Doctor.ID {
		snapshot.Fee = w.fee
		snapshot.FeeAmount = w.fee.Fee.AmountFor(w.draft.FeeType)
	}
	if w.draft.Doctor != nil && w.draft.Date != nil && w.offered.matches(w.draft.Doctor.ID, *w.draft.Date) {
		snapshot.OfferedTimes = append([]string(nil), w.offered.times...)
	}
	return snapshot
}

// Close cancels the wizard's searches and discards the draft. It is idempotent.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.draft = models.AppointmentDraft{}
	w.offered = nil
	w.closeLocked()
}

func (w *Wizard) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Wizard) LastActivity() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActivity
}

func (w *Wizard) closeLocked() {
	w.closed = true
	w.patients.Close()
	w.doctors.Close()
	w.logStage("Wizard closed")
}

func (w *Wizard) touch() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.openLocked()
}

// openLocked fails on a closed wizard and otherwise records activity.
func (w *Wizard) openLocked() error {
	if w.closed {
		return exceptions.ErrWizardClosed()
	}
	w.lastActivity = w.deps.Now()
	return nil
}

func (w *Wizard) requireStageLocked(stage Stage) error {
	if err := w.openLocked(); err != nil {
		return err
	}
	if w.stage != stage {
		return exceptions.ErrWizardStage(w.stage.String())
	}
	return nil
}

func (w *Wizard) parseBookableDateLocked(date string) (time.Time, error) {
	day, err := utils.ParseDate(date, w.deps.Location)
	if err != nil {
		return time.Time{}, err
	}
	if !utils.IsNotBefore(day, w.deps.Now()) {
		return time.Time{}, exceptions.ErrValidation(constvars.ErrDevDateInPast)
	}
	return day, nil
}

func (w *Wizard) fail(err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failLocked(err)
}

func (w *Wizard) failLocked(err error) error {
	w.lastErr = err
	return err
}

func (w *Wizard) logStage(msg string, fields ...zap.Field) {
	fields = append(fields,
		zap.String(constvars.LoggingWizardIDKey, w.ID),
		zap.String(constvars.LoggingWizardStageKey, w.stage.String()),
	)
	w.deps.Log.Debug(msg, fields...)
}
