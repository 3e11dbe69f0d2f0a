package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	schedule *controllers.ScheduleController,
	fee *controllers.FeeController,
	doctor *controllers.DoctorController,
) {
	router.Route("/doctors/{doctorID}", func(r chi.Router) {
		r.Get("/schedules", schedule.List)
		r.Put("/schedules/{weekday}", schedule.Upsert)
		r.Delete("/schedules/{weekday}", schedule.Delete)

		r.Get("/fees", fee.Get)
		r.Put("/fees", fee.Upsert)
		r.Delete("/fees", fee.Delete)

		r.Get("/profile", doctor.GetProfile)
		r.Put("/profile", doctor.UpdateProfile)
	})
}
