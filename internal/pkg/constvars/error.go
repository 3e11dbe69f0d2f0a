package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s",
	"max":             "must be at most %s",
	"oneof":           "must be one of %s",
	"patient_id":      "must be 8 uppercase alphanumeric characters",
	"doctor_id":       "must be a UUID",
	"organization_id": "must be org_ followed by 26 uppercase alphanumeric characters",
	"hhmm":            "must be a time in HH:MM format",
	"date_only":       "must be a date in YYYY-MM-DD format",
	"weekday":         "must be a weekday name",
	"fee_type":        "must be one of default, recurring, emergency",
	"payment_method":  "must be one of online, insurance, cash",
}

// Tags whose message carries the validator param
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientServiceUnavailable            = "the clinic service is unreachable right now, please try again"
	ErrClientOrganizationNotResolved       = "your organization could not be determined, please sign in again"
	ErrClientScheduleAlreadyExists         = "a schedule for this weekday already exists, refresh and edit the existing one"
	ErrClientFeeAlreadyExists              = "a fee structure for this doctor already exists, refresh and edit the existing one"
	ErrClientConflict                      = "the data was changed by someone else, refresh and try again"
	ErrClientBookingSessionNotFound        = "your booking session has expired, please start again"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevReadHTTPResponse        = "failed to read HTTP response"
	ErrDevDecodeResponse          = "failed to decode %s response from clinic API"
	ErrDevClinicAPINotFound       = "clinic API returned not found for %s"
	ErrDevClinicAPIConflict       = "clinic API returned conflict for %s"
	ErrDevClinicAPIRejected       = "clinic API rejected %s request"
	ErrDevClinicAPIUnavailable    = "clinic API unavailable for %s"
	ErrDevOrganizationNotResolved = "organization context is not resolved"
	ErrDevOrganizationInvalid     = "organization ID from clinic API is malformed"
	ErrDevInvalidIdentifier       = "invalid %s"
	ErrDevInvalidCompositeKey     = "invalid composite key %q"
	ErrDevInvalidTimeRange        = "start time must be before end time"
	ErrDevNegativeFee             = "fee amounts must not be negative"
	ErrDevWizardStage             = "operation not allowed at stage %s"
	ErrDevWizardClosed            = "booking wizard is closed"
	ErrDevWizardSubmitting        = "submission already in progress"
	ErrDevWizardMissingField      = "%s is required before leaving stage %s"
	ErrDevDateInPast              = "appointment date must not be before today"
	ErrDevTimeNotOffered          = "time %s is not offered for the selected date"
	ErrDevRecordNotInResults      = "%s %s is not in the current search results"
	ErrDevBookingSessionNotFound  = "booking session %s not found"
	ErrDevRedisGet                = "failed to get data from redis"
	ErrDevRedisSet                = "failed to set data into redis"
	ErrDevRedisDelete             = "failed to delete data from redis"
	ErrDevRabbitMQPublish         = "failed to publish message to queue %s"
	ErrDevServerProcess           = "failed to process request"
	ErrDevUnknownPanic            = "unknown error"
	ErrDevRouteNotFound           = "route %s %s does not exist"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
