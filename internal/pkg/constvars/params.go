package constvars

const (
	URLParamSessionID = "sessionID"
	URLParamDoctorID  = "doctorID"
	URLParamWeekday   = "weekday"
)

const (
	URLQueryParamDate = "date"
)

// Query parameter names understood by the clinic API.
const (
	ClinicAPIQueryQ          = "q"
	ClinicAPIQueryBy         = "by"
	ClinicAPIQuerySpeciality = "speciality"
	ClinicAPIQueryLimit      = "limit"
	ClinicAPIQueryPage       = "page"
	ClinicAPIQuerySearch     = "search"
	ClinicAPIQueryOrgID      = "org_id"
	ClinicAPIQueryDoctorID   = "doctor_id"
)
