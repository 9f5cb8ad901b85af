package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	layoutDate = "2006-01-02"

	errDateInvalid = "invalid 'date'; use YYYY-MM-DD"
	errExportCSV   = "failed to export CSV"
)

// parseDay reads the optional ?date=YYYY-MM-DD query, defaulting to today.
func parseDay(c *gin.Context) (time.Time, error) {
	qs := c.Query("date")
	if qs == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(layoutDate, qs, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return day, nil
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getTelemetry generates a full day of synthetic data and returns it.
func (h *Handler) getTelemetry(c *gin.Context) {
	day, err := parseDay(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errDateInvalid})
		return
	}
	points := h.services.Generate(day)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(points),
		"points": points,
	})
}

// getTelemetryCSV generates a day and streams it as a CSV download.
func (h *Handler) getTelemetryCSV(c *gin.Context) {
	day, err := parseDay(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errDateInvalid})
		return
	}
	doc, err := h.services.ExportCSV(day)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("telemetry_csv_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errExportCSV})
		return
	}
	filename := fmt.Sprintf("energy_data_%s.csv", day.Format(layoutDate))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(doc))
}

func (h *Handler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Summary())
}
