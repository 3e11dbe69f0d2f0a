package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_TOKEN_KEY        ContextKey = "session_token"
	CONTEXT_ORGANIZATION_KEY         ContextKey = "organization"
)

const (
	REQUEST_ID_PREFIX = "BOOKING_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ServiceName = "clinic-booking-service"
)
