package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, c *controllers.BookingController) {
	router.Route("/booking/sessions", func(r chi.Router) {
		r.Post("/", c.OpenSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", c.GetSession)
			r.Delete("/", c.CloseSession)

			r.Post("/patients/search", c.SearchPatients)
			r.Get("/patients", c.Patients)
			r.Post("/doctors/search", c.SearchDoctors)
			r.Get("/doctors", c.Doctors)

			r.Put("/patient", c.SelectPatient)
			r.Put("/doctor", c.SelectDoctor)
			r.Get("/slots", c.Slots)
			r.Put("/slot", c.SelectSlot)

			r.Post("/next", c.Next)
			r.Post("/back", c.Back)
			r.Post("/submit", c.Submit)
		})
	})
}
