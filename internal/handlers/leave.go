package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type LeaveHandler struct {
	Leaves *services.LeaveService
}

func NewLeaveHandler(leaves *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{Leaves: leaves}
}

func (h *LeaveHandler) Create(c *gin.Context) {
	var req dto.LeaveDto
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Leaves.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LeaveHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	leave, err := h.Leaves.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leave)
}

func (h *LeaveHandler) List(c *gin.Context) {
	leaves, err := h.Leaves.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId")
	if !ok {
		return
	}
	leaves, err := h.Leaves.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) ListByStatus(c *gin.Context) {
	leaves, err := h.Leaves.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.LeaveDto
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Leaves.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LeaveHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Leaves.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Leave")
}
