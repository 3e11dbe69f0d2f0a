package normalizer

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/utils"

	"github.com/tidwall/gjson"
)

var (
	patientEnvelopes      = []string{"data", "patients", "results"}
	doctorEnvelopes       = []string{"doctors", "data", "results"}
	scheduleEnvelopes     = []string{"schedules", "data"}
	feeEnvelopes          = []string{"fees", "data"}
	profileEnvelopes      = []string{"profile", "doctor", "data"}
	organizationEnvelopes = []string{"organization", "data"}
	appointmentEnvelopes  = []string{"appointment", "data"}
)

func Patients(raw []byte) []models.PatientRef {
	var out []models.PatientRef
	for _, item := range records(raw, patientEnvelopes...) {
		if patient, ok := Patient(item); ok {
			out = append(out, patient)
		}
	}
	return out
}

func Patient(obj gjson.Result) (models.PatientRef, bool) {
	f := indexFields(obj)
	patient := models.PatientRef{
		ID:        f.str("patient_id", "id"),
		Name:      f.str("name", "full_name", "patient_name"),
		Email:     f.str("email"),
		Phone:     f.str("phone", "phone_number", "mobile"),
		Gender:    f.str("gender", "sex"),
		BirthDate: f.str("birth_date", "dob", "date_of_birth"),
	}
	return patient, patient.ID != ""
}

func Doctors(raw []byte) []models.DoctorRef {
	var out []models.DoctorRef
	for _, item := range records(raw, doctorEnvelopes...) {
		if doctor, ok := Doctor(item); ok {
			out = append(out, doctor)
		}
	}
	return out
}

func Doctor(obj gjson.Result) (models.DoctorRef, bool) {
	f := indexFields(obj)
	doctor := models.DoctorRef{
		ID:         utils.CanonicalDoctorID(f.str("doctor_id", "id", "uuid")),
		Name:       f.str("name", "full_name", "doctor_name"),
		Speciality: f.str("speciality", "specialty", "specialization"),
		Email:      f.str("email"),
		Phone:      f.str("phone", "phone_number", "mobile"),
	}
	return doctor, doctor.ID != ""
}

func DoctorProfile(raw []byte) (models.DoctorProfile, bool) {
	f := indexFields(object(raw, profileEnvelopes...))
	profile := models.DoctorProfile{
		ID:              utils.CanonicalDoctorID(f.str("doctor_id", "id", "uuid")),
		Name:            f.str("name", "full_name", "doctor_name"),
		Speciality:      f.str("speciality", "specialty", "specialization"),
		Email:           f.str("email"),
		Phone:           f.str("phone", "phone_number", "mobile"),
		Qualification:   f.str("qualification", "qualifications", "degree"),
		Bio:             f.str("bio", "about", "description"),
		ExperienceYears: int(f.integer("experience_years", "experience", "years_of_experience")),
	}
	return profile, profile.ID != ""
}

func Schedules(raw []byte) []models.ScheduleEntry {
	var out []models.ScheduleEntry
	for _, item := range records(raw, scheduleEnvelopes...) {
		if entry, ok := Schedule(item); ok {
			out = append(out, entry)
		}
	}
	return out
}

// Schedule drops entries without a doctor or with an unrecognised weekday.
// Times sent with seconds ("09:00:00") are cut to HH:MM.
func Schedule(obj gjson.Result) (models.ScheduleEntry, bool) {
	f := indexFields(obj)
	weekday, ok := models.ParseWeekday(f.str("day_of_week", "weekday", "day"))
	entry := models.ScheduleEntry{
		DoctorID:       utils.CanonicalDoctorID(f.str("doctor_id", "practitioner_id")),
		OrganizationID: f.str("org_id", "organization_id", "organization"),
		Weekday:        weekday,
		StartTime:      utils.NormalizeClock(f.str("start_time", "start", "from")),
		EndTime:        utils.NormalizeClock(f.str("end_time", "end", "to")),
		IsActive:       f.boolean(true, "is_active", "active", "status"),
	}
	return entry, ok && entry.DoctorID != ""
}

func Fees(raw []byte) []models.FeeStructure {
	var out []models.FeeStructure
	for _, item := range records(raw, feeEnvelopes...) {
		if fee, ok := Fee(item); ok {
			out = append(out, fee)
		}
	}
	return out
}

func Fee(obj gjson.Result) (models.FeeStructure, bool) {
	f := indexFields(obj)
	fee := models.FeeStructure{
		DoctorID:       utils.CanonicalDoctorID(f.str("doctor_id", "practitioner_id")),
		OrganizationID: f.str("org_id", "organization_id", "organization"),
		RecurringFee:   f.integer("recurring_fee", "recurring"),
		DefaultFee:     f.integer("default_fee", "default"),
		EmergencyFee:   f.integer("emergency_fee", "emergency"),
	}
	return fee, fee.DoctorID != ""
}

func Organization(raw []byte) (models.Organization, bool) {
	f := indexFields(object(raw, organizationEnvelopes...))
	org := models.Organization{
		ID:   f.str("org_id", "organization_id", "id"),
		Name: f.str("name", "org_name", "organization_name"),
	}
	return org, org.ID != ""
}

// AppointmentID reads the identifier a create call may return. Empty when absent.
func AppointmentID(raw []byte) string {
	return indexFields(object(raw, appointmentEnvelopes...)).str("appointment_id", "id")
}

// ErrorMessage reads an upstream {error} body, also accepting {message} and {error:{message}}.
func ErrorMessage(raw []byte) string {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return ""
	}
	f := indexFields(root)
	if nested := f.lookup("error"); nested.IsObject() {
		return indexFields(nested).str("message", "detail")
	}
	return f.str("error", "message", "detail")
}
