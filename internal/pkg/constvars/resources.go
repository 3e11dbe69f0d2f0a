package constvars

// Clinic API routes.
const (
	RouteDoctorsSearch        = "/doctors/search"
	RouteDoctorProfileFormat  = "/doctors/%s/profile"
	RoutePatients             = "/patients"
	RouteAppointmentsCreate   = "/appointments/create"
	RouteDoctorSchedules      = "/doctors/schedules"
	RouteDoctorFees           = "/doctors/fees"
	RouteCurrentOrganization  = "/organizations/current"
	RouteCompositeResourceFmt = "%s/%s"
)

// Resource names used in error and log messages.
const (
	ResourceDoctor        = "Doctor"
	ResourceDoctorProfile = "DoctorProfile"
	ResourcePatient       = "Patient"
	ResourceAppointment   = "Appointment"
	ResourceSchedule      = "Schedule"
	ResourceFee           = "FeeStructure"
	ResourceOrganization  = "Organization"
)
