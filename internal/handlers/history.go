package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"reliability_calc/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339, YYYY-MM-DD HH:MM:SS or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339, YYYY-MM-DD HH:MM:SS or YYYY-MM-DD"
	errListHistory = "failed to load calculations"

	layoutDate = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List past calculations
// @Description  Audit summaries only; submitted intervals are never stored. Date-only 'to' is end-of-day inclusive.
// @Tags         history
// @Produce      json
// @Param        from    query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to      query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        status  query   string  false  "Calculation status"  Enums(ok,no_data)
// @Success      200     {object}  map[string]interface{}  "count, calculations"
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/calculations [get]
// @Security     BearerAuth
func (h *Handler) listCalculations(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from   time.Time
		to     time.Time
		status = c.Query("status")
		err    error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Second).UTC()
		}
	}

	calcs, err := h.services.History.List(ctx, service.HistoryFilter{
		From:   from,
		To:     to,
		Status: status,
	})
	if err != nil {
		if service.IsFilterError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListHistory, "calculations_list_failed", err,
			"from", from, "to", to, "status", status)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(calcs),
		"calculations": calcs,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, service.TimestampLayout, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
