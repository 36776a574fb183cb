package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse-hq/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse-hq/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/oauth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse-hq/workpulse-backend-go/internal/service/attendance"
	serviceAuth "github.com/workpulse-hq/workpulse-backend-go/internal/service/auth"
	departmentService "github.com/workpulse-hq/workpulse-backend-go/internal/service/department"
	employeeService "github.com/workpulse-hq/workpulse-backend-go/internal/service/employee"
	leaveService "github.com/workpulse-hq/workpulse-backend-go/internal/service/leave"
	reportService "github.com/workpulse-hq/workpulse-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
		[]string{cfg.App.FrontendURL},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
