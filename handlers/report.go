package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fisioagenda/services/reporting"
	"fisioagenda/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the reporting aggregator over HTTP.
type ReportHandler struct {
	Service reporting.Service
}

func NewReportHandler(svc reporting.Service) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) periodAnchor(c *gin.Context) (string, bool) {
	period := c.Query("period")
	if period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing period (day|week|month)"})
		return "", false
	}
	return period, true
}

// GetReport builds the paid/unpaid time series for a period.
func (h *ReportHandler) GetReport(c *gin.Context) {
	period, ok := h.periodAnchor(c)
	if !ok {
		return
	}
	anchor, err := utils.ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid anchor date"})
		return
	}

	report, err := h.Service.BuildReport(c.Request.Context(), period, anchor)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reporting.ErrUnknownPeriod) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to build report", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetArrears sums the unpaid backlog dated before the viewed period.
func (h *ReportHandler) GetArrears(c *gin.Context) {
	period, ok := h.periodAnchor(c)
	if !ok {
		return
	}
	anchor, err := utils.ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid anchor date"})
		return
	}

	entries, err := h.Service.Arrears(c.Request.Context(), period, anchor)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reporting.ErrUnknownPeriod) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to compute arrears", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"arrears": entries})
}

// GetBucketDetail lists the individual records behind one report bucket.
func (h *ReportHandler) GetBucketDetail(c *gin.Context) {
	period, ok := h.periodAnchor(c)
	if !ok {
		return
	}
	anchor, err := utils.ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid anchor date"})
		return
	}
	bucket, err := strconv.Atoi(c.Query("bucket"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid bucket index"})
		return
	}

	records, err := h.Service.BucketDetail(c.Request.Context(), period, anchor, bucket)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reporting.ErrUnknownPeriod) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to fetch bucket detail", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
