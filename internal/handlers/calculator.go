package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"reliability_calc/internal/models"
	"reliability_calc/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errTemplate        = "failed to build template"
	errUploadTooLarge  = "uploaded file is too large"

	formFile  = "file"
	formStart = "start"
	formEnd   = "end"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for the JSON calculation endpoint.
type calculationRequest struct {
	Manual []service.ManualEntry `json:"manual"`
	Table  *models.Table         `json:"table"`
}

// CalculationRequest is an exported model for Swagger docs of the calculate payload.
type CalculationRequest struct {
	// Manually entered pairs; entries with an empty field are skipped.
	Manual []service.ManualEntry `json:"manual"`
	// Optional table; columns must include "Start Time" and "End Time".
	Table *models.Table `json:"table,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Validate one failure interval
// @Description  Timestamps must be YYYY-MM-DD HH:MM:SS. Empty fields yield status "skipped".
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      service.ManualEntry  true  "Start/end pair"
// @Success      200   {object}  service.ParseResult
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/intervals/validate [post]
func (h *Handler) validateInterval(c *gin.Context) {
	var req service.ManualEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.Calculator.Validate(req.Start, req.End))
}

// @Summary      Compute MTTR and MTBF
// @Description  Merges manual pairs and table rows, removes duplicates, and computes the metrics.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      CalculationRequest  true  "Manual pairs and/or table"
// @Success      200   {object}  models.Report
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/calculations [post]
func (h *Handler) calculate(c *gin.Context) {
	var req calculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.runCalculation(c, service.CalculationInput{Manual: req.Manual, Table: req.Table})
}

// @Summary      Compute MTTR and MTBF from an uploaded CSV
// @Description  CSV header must contain "Start Time" and "End Time". Repeated start/end form fields add manual pairs.
// @Tags         calculator
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    false  "CSV table"
// @Param        start  formData  []string  false  "Manual failure start times"  collectionFormat(multi)
// @Param        end    formData  []string  false  "Manual repair end times"  collectionFormat(multi)
// @Success      200    {object}  models.Report
// @Failure      400    {object}  map[string]string
// @Failure      413    {object}  map[string]string
// @Router       /api/v1/calculations/upload [post]
func (h *Handler) uploadCalculation(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errUploadTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	in := service.CalculationInput{
		Manual: pairFormEntries(c.PostFormArray(formStart), c.PostFormArray(formEnd)),
	}
	in.Table, in.TableErr = readUploadedTable(c)

	h.runCalculation(c, in)
}

// readUploadedTable returns (nil, nil) when no file was sent.
func readUploadedTable(c *gin.Context) (*models.Table, error) {
	fh, err := c.FormFile(formFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return service.ReadCSVTable(f)
}

// pairFormEntries zips start/end form values; a missing partner is left empty.
func pairFormEntries(starts, ends []string) []service.ManualEntry {
	n := max(len(starts), len(ends))
	out := make([]service.ManualEntry, n)
	for i := range out {
		if i < len(starts) {
			out[i].Start = starts[i]
		}
		if i < len(ends) {
			out[i].End = ends[i]
		}
	}
	return out
}

// runCalculation responds with the report even when the audit write fails.
func (h *Handler) runCalculation(c *gin.Context, in service.CalculationInput) {
	report, err := h.services.Calculator.Calculate(c.Request.Context(), in)
	if h.log != nil {
		if err != nil {
			h.log.Errorw("calculation_audit_failed", "err", err, "calculation_id", report.CalculationID)
		}
		h.log.Infow("calculation_completed",
			"calculation_id", report.CalculationID,
			"status", report.Status,
			"intervals", len(report.Intervals),
			"diagnostics", len(report.Diagnostics),
		)
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Download CSV template
// @Tags         calculator
// @Produce      text/csv
// @Success      200
// @Router       /api/v1/template.csv [get]
func (h *Handler) template(c *gin.Context) {
	b, err := service.TemplateCSV()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errTemplate, "template_build_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="failures_template.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}
