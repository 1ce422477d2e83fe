package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Sneha051188/employee-management-system/internal/config"
	"github.com/Sneha051188/employee-management-system/internal/db"
	"github.com/Sneha051188/employee-management-system/internal/handlers"
	"github.com/Sneha051188/employee-management-system/internal/middleware"
	"github.com/Sneha051188/employee-management-system/internal/routes"
	"github.com/Sneha051188/employee-management-system/internal/services"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}
	log := cfg.NewLogger()

	if cfg.AppEnv != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Open(cfg.DbDriver, cfg.DbDsn, log)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	employeeStore := stores.NewEmployeeStore(database)
	departmentStore := stores.NewDepartmentStore(database)
	attendanceStore := stores.NewAttendanceStore(database)
	leaveStore := stores.NewLeaveStore(database)
	payrollStore := stores.NewPayrollStore(database)
	reportStore := stores.NewReportStore(database)
	userStore := stores.NewUserStore(database)

	bootstrapper := services.NewBootstrapper(attendanceStore, payrollStore, leaveStore, log)
	authService := services.NewAuthService(userStore, employeeStore, bootstrapper, log, cfg.JwtSecret, cfg.JwtAccessMinutes)

	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Employees:   handlers.NewEmployeeHandler(services.NewEmployeeService(employeeStore, departmentStore, attendanceStore, leaveStore, payrollStore)),
		Departments: handlers.NewDepartmentHandler(services.NewDepartmentService(departmentStore)),
		Attendance:  handlers.NewAttendanceHandler(services.NewAttendanceService(attendanceStore, employeeStore)),
		Leaves:      handlers.NewLeaveHandler(services.NewLeaveService(leaveStore, employeeStore)),
		Payrolls:    handlers.NewPayrollHandler(services.NewPayrollService(payrollStore, employeeStore)),
		Reports:     handlers.NewReportHandler(services.NewReportService(reportStore)),
		Dashboard:   handlers.NewDashboardHandler(services.NewDashboardService(employeeStore, departmentStore, attendanceStore, leaveStore, payrollStore)),
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	routes.Register(router, h, cfg)

	log.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"driver": cfg.DbDriver,
		"auth":   cfg.AuthRequired,
	}).Info("starting server")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
