package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type EmployeeHandler struct {
	Employees *services.EmployeeService
}

func NewEmployeeHandler(employees *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeDto
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Employees.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	employee, err := h.Employees.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// List accepts an optional ?email= filter and then returns at most one employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		employee, err := h.Employees.FindByEmail(c.Request.Context(), email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, []dto.EmployeeDto{*employee})
		return
	}

	employees, err := h.Employees.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EmployeeDto
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Employees.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Employees.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Employee")
}
