package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/middleware"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/me", attendanceHandler.ListMine)

				// Management views and corrections
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
					r.Patch("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/me", leaveHandler.ListMine)
				r.Get("/{id}", leaveHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Patch("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/", departmentHandler.Create)
					r.Patch("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/overview", reportHandler.Overview)
					r.Get("/departments", reportHandler.DepartmentAttendance)
					r.Get("/daily/export", reportHandler.ExportDailyPDF)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/monthly-hours", reportHandler.MonthlyHours)
				})
			})
		})
	})

	return r
}
