package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/export"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type PayrollHandler struct {
	Payrolls *services.PayrollService
}

func NewPayrollHandler(payrolls *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{Payrolls: payrolls}
}

func (h *PayrollHandler) Create(c *gin.Context) {
	var req dto.PayrollDto
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Payrolls.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PayrollHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payroll, err := h.Payrolls.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payroll)
}

func (h *PayrollHandler) List(c *gin.Context) {
	payrolls, err := h.Payrolls.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (h *PayrollHandler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId")
	if !ok {
		return
	}
	payrolls, err := h.Payrolls.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (h *PayrollHandler) ListByMonth(c *gin.Context) {
	payrolls, err := h.Payrolls.ListByMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (h *PayrollHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PayrollDto
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Payrolls.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PayrollHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Payrolls.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Payroll")
}

// Export returns an xlsx workbook with a totals row, limited to ?month= when present.
func (h *PayrollHandler) Export(c *gin.Context) {
	var (
		payrolls []dto.PayrollDto
		err      error
	)
	filename := "payroll.xlsx"
	if month := c.Query("month"); month != "" {
		payrolls, err = h.Payrolls.ListByMonth(c.Request.Context(), month)
		filename = "payroll-" + strings.ReplaceAll(strings.ToLower(month), " ", "-") + ".xlsx"
	} else {
		payrolls, err = h.Payrolls.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePayroll(&buf, payrolls); err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, filename, buf.Bytes())
}
