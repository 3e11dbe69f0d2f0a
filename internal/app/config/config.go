package config

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		ClinicAPI: ClinicAPI{
			BaseUrl:                utils.GetEnvString("CLINIC_API_BASE_URL", "http://localhost:3000/api"),
			TimeoutInSeconds:       utils.GetEnvInt("CLINIC_API_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:   utils.GetEnvInt("CLINIC_API_MAX_REQUESTS_PER_SECOND", 50),
			SessionTokenHeaderName: utils.GetEnvString("CLINIC_API_SESSION_TOKEN_HEADER", constvars.HeaderAuthorization),
		},
		Booking: Booking{
			SearchDebounceInMilliseconds:  utils.GetEnvInt("BOOKING_SEARCH_DEBOUNCE_IN_MILLISECONDS", 300),
			SearchPageLimit:               utils.GetEnvInt("BOOKING_SEARCH_PAGE_LIMIT", 20),
			SlotMinutes:                   utils.GetEnvInt("BOOKING_SLOT_MINUTES", 30),
			MaxOpenSessions:               utils.GetEnvInt("BOOKING_MAX_OPEN_SESSIONS", 1000),
			SessionIdleTimeoutInMinutes:   utils.GetEnvInt("BOOKING_SESSION_IDLE_TIMEOUT_IN_MINUTES", 30),
			JanitorCronSpec:               utils.GetEnvString("BOOKING_JANITOR_CRON_SPEC", "@every 1m"),
			OrganizationCacheTTLInMinutes: utils.GetEnvInt("BOOKING_ORGANIZATION_CACHE_TTL_IN_MINUTES", 60),
			EventQueue:                    utils.GetEnvString("BOOKING_EVENT_QUEUE", ""),
		},
	}
}

func (c *InternalConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
