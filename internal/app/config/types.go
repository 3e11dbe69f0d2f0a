package config

type (
	InternalConfig struct {
		App       App
		ClinicAPI ClinicAPI
		Booking   Booking
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
	}

	ClinicAPI struct {
		BaseUrl                string
		TimeoutInSeconds       int
		MaxRequestsPerSecond   int
		SessionTokenHeaderName string
	}

	Booking struct {
		SearchDebounceInMilliseconds  int
		SearchPageLimit               int
		SlotMinutes                   int
		MaxOpenSessions               int
		SessionIdleTimeoutInMinutes   int
		JanitorCronSpec               string
		OrganizationCacheTTLInMinutes int
		EventQueue                    string
	}

	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
