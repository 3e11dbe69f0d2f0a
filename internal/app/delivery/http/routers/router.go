package routers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Booking  *controllers.BookingController
	Schedule *controllers.ScheduleController
	Fee      *controllers.FeeController
	Doctor   *controllers.DoctorController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	m *middlewares.Middlewares,
	c Controllers,
) {
	router.Use(m.ErrorHandler)
	router.Use(m.RequestIDMiddleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(m.Logging)
	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(r.Method, r.URL.Path))
	})

	router.Route("/"+internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/"+internalConfig.App.Version, func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(m.OrganizationScope)
				attachBookingRoutes(r, c.Booking)
				attachDoctorRoutes(r, c.Schedule, c.Fee, c.Doctor)
			})
		})
	})
}
