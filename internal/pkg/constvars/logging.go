package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorKey          = "error"
	LoggingOperationKey      = "operation"
	LoggingClinicAPIURLKey   = "clinic_api_url"
	LoggingHTTPMethodKey     = "http_method"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKindKey      = "error_kind"
	LoggingLocationKey       = "location"
)

const (
	LoggingPatientIDKey      = "patient_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingOrganizationIDKey = "organization_id"
	LoggingWeekdayKey        = "weekday"
	LoggingCompositeKey      = "composite_key"
	LoggingFeeTypeKey        = "fee_type"
	LoggingPaymentMethodKey  = "payment_method"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAppointmentAtKey  = "appointment_at"
	LoggingRecordCountKey    = "record_count"
	LoggingSlotCountKey      = "slot_count"
)

const (
	LoggingWizardIDKey       = "wizard_id"
	LoggingWizardStageKey    = "wizard_stage"
	LoggingSearchNameKey     = "search_name"
	LoggingSearchSeqKey      = "search_seq"
	LoggingSearchAppliedKey  = "search_applied_seq"
	LoggingSearchQueryKey    = "search_query"
	LoggingRedisKey          = "redis_key"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"
	LoggingOpenSessionsKey   = "open_sessions"
	LoggingClosedSessionsKey = "closed_sessions"
)
