package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/interntrack/interntrack-backend-go/internal/config"
	"github.com/interntrack/interntrack-backend-go/internal/handler/http/middleware"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/jwt"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/metrics"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	User       UserHandler
	Master     MasterHandler
}

func NewRouter(cfg *config.Config, db *database.DB, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "interntrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !db.Healthy(r.Context()) {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", metrics.Handler())

	// Check-in photos are served straight from local storage.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "..") {
				http.NotFound(w, r)
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/status", h.Attendance.Status)
				r.Get("/history", h.Attendance.GetHistory)
				r.Get("/range", h.Attendance.GetRange)
				r.Get("/stats", h.Attendance.GetStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Get("/summary", h.Attendance.Summary)
					r.Get("/roster", h.Attendance.Roster)
					r.Post("/sweep", h.Attendance.TriggerSweep)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.ListMine)
				r.Delete("/my/{id}", h.Leave.DeleteMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListAll)
					r.Get("/pending-count", h.Leave.PendingCount)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Get("/{id}", h.User.Get)
					r.Get("/{id}/attendance", h.User.Attendance)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})

				r.Route("/periods", func(r chi.Router) {
					r.Get("/", h.Master.ListPeriods)
					r.Post("/", h.Master.CreatePeriod)
					r.Get("/{id}", h.Master.GetPeriod)
					r.Put("/{id}", h.Master.UpdatePeriod)
					r.Delete("/{id}", h.Master.DeletePeriod)
				})

				r.Route("/supervisors", func(r chi.Router) {
					r.Get("/", h.Master.ListSupervisors)
					r.Post("/", h.Master.CreateSupervisor)
					r.Delete("/{id}", h.Master.DeleteSupervisor)
				})
			})
		})
	})

	return r
}
