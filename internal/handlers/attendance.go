package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/export"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type AttendanceHandler struct {
	Attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{Attendance: attendance}
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.AttendanceDto
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Attendance.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	record, err := h.Attendance.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.Attendance.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId")
	if !ok {
		return
	}
	records, err := h.Attendance.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	records, err := h.Attendance.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AttendanceDto
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Attendance.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Attendance.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Attendance")
}

// Export returns an xlsx workbook, limited to ?date= when present.
func (h *AttendanceHandler) Export(c *gin.Context) {
	var (
		records []dto.AttendanceDto
		err     error
	)
	filename := "attendance.xlsx"
	if raw := c.Query("date"); raw != "" {
		date, ok := parseDate(c, raw)
		if !ok {
			return
		}
		records, err = h.Attendance.ListByDate(c.Request.Context(), date)
		filename = "attendance-" + raw + ".xlsx"
	} else {
		records, err = h.Attendance.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteAttendance(&buf, records); err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, filename, buf.Bytes())
}

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.ContentType, data)
}
