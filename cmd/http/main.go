package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/app/delivery/http/routers"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/app/drivers/messaging"
	"clinic-booking-service/internal/app/services/clinic_api/appointments"
	"clinic-booking-service/internal/app/services/clinic_api/doctors"
	"clinic-booking-service/internal/app/services/clinic_api/fees"
	"clinic-booking-service/internal/app/services/clinic_api/organizations"
	"clinic-booking-service/internal/app/services/clinic_api/patients"
	"clinic-booking-service/internal/app/services/clinic_api/schedules"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/app/services/core/booking"
	coreFees "clinic-booking-service/internal/app/services/core/fees"
	coreSchedules "clinic-booking-service/internal/app/services/core/schedules"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/app/services/core/slot"
	"clinic-booking-service/internal/app/services/shared/eventbus"
	"clinic-booking-service/internal/app/services/shared/redis"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient, err := database.NewRedisClient(context.Background(), driverConfig)
	if err != nil {
		zapLogger.Warn("Redis unavailable, organization lookups will not be cached", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if internalConfig.Booking.EventQueue != "" {
		rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			zapLogger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		bootstrap.RabbitMQ = rabbitMQ
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Clinic API
	clinicAPI := transport.NewClient(transport.Options{
		BaseUrl:                internalConfig.ClinicAPI.BaseUrl,
		Timeout:                time.Duration(internalConfig.ClinicAPI.TimeoutInSeconds) * time.Second,
		MaxRequestsPerSecond:   internalConfig.ClinicAPI.MaxRequestsPerSecond,
		SessionTokenHeaderName: internalConfig.ClinicAPI.SessionTokenHeaderName,
	}, log)
	patientClient := patients.NewPatientClient(clinicAPI, log)
	doctorClient := doctors.NewDoctorClient(clinicAPI, log)
	appointmentClient := appointments.NewAppointmentClient(clinicAPI, log)
	scheduleClient := schedules.NewScheduleClient(clinicAPI, log)
	feeClient := fees.NewFeeClient(clinicAPI, log)
	organizationClient := organizations.NewOrganizationClient(clinicAPI, log)

	// Organization context
	var organizationCache contracts.RedisRepository
	if bootstrap.Redis != nil {
		organizationCache = redis.NewRedisRepository(bootstrap.Redis)
	}
	initializer := session.NewInitializer(
		organizationClient,
		organizationCache,
		time.Duration(internalConfig.Booking.OrganizationCacheTTLInMinutes)*time.Minute,
		log,
	)

	// Events
	events := eventbus.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		publisher, err := eventbus.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Booking.EventQueue, log)
		if err != nil {
			return err
		}
		events = publisher
	}

	// Resource managers
	scheduleManager := coreSchedules.NewManager(scheduleClient, log)
	feeManager := coreFees.NewManager(feeClient, log)
	slotService := slot.NewService(scheduleManager, internalConfig.Booking.SlotMinutes, log)

	// Booking
	registry, err := booking.NewRegistry(
		internalConfig.Booking.MaxOpenSessions,
		time.Duration(internalConfig.Booking.SessionIdleTimeoutInMinutes)*time.Minute,
		booking.NewFactory(booking.Dependencies{
			Patients:       patientClient,
			Doctors:        doctorClient,
			Appointments:   appointmentClient,
			Slots:          slotService,
			Fees:           feeManager,
			Events:         events,
			Location:       internalConfig.Location(),
			SearchDebounce: time.Duration(internalConfig.Booking.SearchDebounceInMilliseconds) * time.Millisecond,
			SearchLimit:    internalConfig.Booking.SearchPageLimit,
			Log:            log,
		}),
		log,
	)
	if err != nil {
		return err
	}
	janitor := booking.NewJanitor(registry, internalConfig.Booking.JanitorCronSpec, log)
	janitor.Start()
	bootstrap.JanitorStop = janitor.Stop
	bootstrap.SessionsClose = registry.CloseAll

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, initializer, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, routers.Controllers{
		Booking:  controllers.NewBookingController(registry, internalConfig.Location(), log),
		Schedule: controllers.NewScheduleController(scheduleManager, log),
		Fee:      controllers.NewFeeController(feeManager, log),
		Doctor:   controllers.NewDoctorController(doctorClient, log),
	})
	return nil
}
