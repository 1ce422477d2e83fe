package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type DepartmentHandler struct {
	Departments *services.DepartmentService
}

func NewDepartmentHandler(departments *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{Departments: departments}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.DepartmentDto
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Departments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	department, err := h.Departments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.Departments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.DepartmentDto
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Departments.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Departments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Department")
}
