package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/config"
	"github.com/Sneha051188/employee-management-system/internal/handlers"
	"github.com/Sneha051188/employee-management-system/internal/metrics"
	"github.com/Sneha051188/employee-management-system/internal/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Employees   *handlers.EmployeeHandler
	Departments *handlers.DepartmentHandler
	Attendance  *handlers.AttendanceHandler
	Leaves      *handlers.LeaveHandler
	Payrolls    *handlers.PayrollHandler
	Reports     *handlers.ReportHandler
	Dashboard   *handlers.DashboardHandler
}

func Register(router *gin.Engine, h Handlers, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOrigins()))
	router.Use(metrics.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "employee-management-system"})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.MetricsPath != "" {
		router.GET(cfg.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	api := router.Group("/api")
	api.POST("/signup", h.Auth.Signup)
	api.POST("/login", h.Auth.Login)

	protected := api.Group("")
	if cfg.AuthRequired {
		protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	}

	protected.GET("/dashboard", h.Dashboard.Get)

	employees := protected.Group("/employees")
	{
		employees.POST("", h.Employees.Create)
		employees.GET("", h.Employees.List)
		employees.GET("/:id", h.Employees.Get)
		employees.PUT("/:id", h.Employees.Update)
		employees.DELETE("/:id", h.Employees.Delete)
	}

	departments := protected.Group("/departments")
	{
		departments.POST("", h.Departments.Create)
		departments.GET("", h.Departments.List)
		departments.GET("/:id", h.Departments.Get)
		departments.PUT("/:id", h.Departments.Update)
		departments.DELETE("/:id", h.Departments.Delete)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.POST("", h.Attendance.Create)
		attendance.GET("", h.Attendance.List)
		attendance.GET("/export", h.Attendance.Export)
		attendance.GET("/employee/:employeeId", h.Attendance.ListByEmployee)
		attendance.GET("/date/:date", h.Attendance.ListByDate)
		attendance.GET("/:id", h.Attendance.Get)
		attendance.PUT("/:id", h.Attendance.Update)
		attendance.DELETE("/:id", h.Attendance.Delete)
	}

	leaves := protected.Group("/leave")
	{
		leaves.POST("", h.Leaves.Create)
		leaves.GET("", h.Leaves.List)
		leaves.GET("/employee/:employeeId", h.Leaves.ListByEmployee)
		leaves.GET("/status/:status", h.Leaves.ListByStatus)
		leaves.GET("/:id", h.Leaves.Get)
		leaves.PUT("/:id", h.Leaves.Update)
		leaves.DELETE("/:id", h.Leaves.Delete)
	}

	payroll := protected.Group("/payroll")
	{
		payroll.POST("", h.Payrolls.Create)
		payroll.GET("", h.Payrolls.List)
		payroll.GET("/export", h.Payrolls.Export)
		payroll.GET("/employee/:employeeId", h.Payrolls.ListByEmployee)
		payroll.GET("/month/:month", h.Payrolls.ListByMonth)
		payroll.GET("/:id", h.Payrolls.Get)
		payroll.PUT("/:id", h.Payrolls.Update)
		payroll.DELETE("/:id", h.Payrolls.Delete)
	}

	reports := protected.Group("/reports")
	{
		reports.POST("", h.Reports.Create)
		reports.GET("", h.Reports.List)
		reports.GET("/type/:reportType", h.Reports.ListByType)
		reports.GET("/:id", h.Reports.Get)
		reports.PUT("/:id", h.Reports.Update)
		reports.DELETE("/:id", h.Reports.Delete)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
