package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterDeps struct {
	Logger           *slog.Logger
	FrontendURL      string
	StaffHandler     StaffHandler
	ScheduleHandler  ScheduleHandler
	PatientHandler   PatientHandler
	BedHandler       BedHandler
	EquipmentHandler EquipmentHandler
	DashboardHandler DashboardHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(deps.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/staffs", func(r chi.Router) {
			r.Get("/", deps.StaffHandler.List)
			r.Post("/", deps.StaffHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deps.StaffHandler.Get)
				r.Put("/", deps.StaffHandler.Update)
				r.Delete("/", deps.StaffHandler.Delete)

				r.Post("/duty/toggle", deps.StaffHandler.ToggleDuty)

				r.Route("/schedule", func(r chi.Router) {
					r.Get("/", deps.ScheduleHandler.GetMerged)
					r.Post("/", deps.ScheduleHandler.AssignShift)
					r.Delete("/", deps.ScheduleHandler.Clear)
				})

				r.Route("/time-off", func(r chi.Router) {
					r.Get("/", deps.ScheduleHandler.ListTimeOff)
					r.Post("/", deps.ScheduleHandler.RequestTimeOff)
				})
			})
		})

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", deps.PatientHandler.List)
			r.Post("/", deps.PatientHandler.Admit)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deps.PatientHandler.Get)
				r.Put("/", deps.PatientHandler.Update)
				r.Post("/bed", deps.PatientHandler.AssignBed)
				r.Delete("/bed", deps.PatientHandler.UnassignBed)
				r.Post("/discharge", deps.PatientHandler.Discharge)
			})
		})

		r.Route("/beds", func(r chi.Router) {
			r.Get("/", deps.BedHandler.List)
			r.Post("/", deps.BedHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deps.BedHandler.Get)
				r.Put("/", deps.BedHandler.Update)
				r.Delete("/", deps.BedHandler.Delete)
			})
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", deps.EquipmentHandler.List)
			r.Post("/", deps.EquipmentHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deps.EquipmentHandler.Get)
				r.Put("/", deps.EquipmentHandler.Update)
				r.Delete("/", deps.EquipmentHandler.Delete)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", deps.DashboardHandler.GetStats)
			r.Get("/events", deps.DashboardHandler.Events)
		})
	})

	return r
}
