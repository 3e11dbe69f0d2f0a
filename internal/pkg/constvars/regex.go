package constvars

const (
	RegexPatientID      = `^[A-Z0-9]{8}$`
	RegexDoctorID       = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`
	RegexOrganizationID = `^org_[A-Z0-9]{26}$`
	RegexClockHHMM      = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
	RegexDateYYYYMMDD   = `^\d{4}-\d{2}-\d{2}$`
)
