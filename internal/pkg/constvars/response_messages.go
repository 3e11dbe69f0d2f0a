package constvars

const (
	ResponseSuccess = "success"
)

// Success messages for clients
const (
	SuccessBookingSessionOpened  = "booking session opened"
	SuccessBookingSessionFetched = "booking session fetched"
	SuccessBookingSessionClosed  = "booking session closed"
	SuccessSearchAccepted        = "search accepted"
	SuccessSearchFetched         = "search results fetched"
	SuccessPatientSelected       = "patient selected"
	SuccessDoctorSelected        = "doctor selected"
	SuccessSlotsFetched          = "available times fetched"
	SuccessSlotSelected          = "appointment slot selected"
	SuccessStageChanged          = "booking stage changed"
	SuccessAppointmentCreated    = "appointment created"
	SuccessSchedulesFetched      = "doctor schedules fetched"
	SuccessScheduleSaved         = "doctor schedule saved"
	SuccessScheduleDeleted       = "doctor schedule deleted"
	SuccessFeeFetched            = "doctor fee structure fetched"
	SuccessFeeSaved              = "doctor fee structure saved"
	SuccessFeeDeleted            = "doctor fee structure deleted"
	SuccessDoctorProfileFetched  = "doctor profile fetched"
	SuccessDoctorProfileUpdated  = "doctor profile updated"
)
