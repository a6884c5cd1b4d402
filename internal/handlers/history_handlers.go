package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lomasaltas/boxcode/internal/middleware"
	"github.com/lomasaltas/boxcode/internal/models"
	"github.com/lomasaltas/boxcode/internal/repository"
	"github.com/lomasaltas/boxcode/internal/services"
)

// HistoryHandler handles per-station scan history endpoints
type HistoryHandler struct {
	validationSvc *services.ValidationService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(validationSvc *services.ValidationService) *HistoryHandler {
	return &HistoryHandler{validationSvc: validationSvc}
}

// Get handles GET /stations/history
// @Summary Recent scans of a station
// @Description Returns the station's recent scans, newest first, with valid/invalid counters.
// @Description source=memory (default) reads the in-process history; source=db reads the scan log.
// @Tags stations
// @Produce json
// @Param X-Station-ID header string false "Packing station"
// @Param source query string false "memory or db"
// @Param limit query int false "Maximum number of scans"
// @Success 200 {object} models.HistoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /stations/history [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	resp, err := h.validationSvc.History(c.Request.Context(), middleware.GetStation(c), c.Query("source"), limit)
	if err != nil {
		writeHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reset handles DELETE /stations/history
// @Summary Reset a station's history
// @Description Clears the in-memory history and counters of the station.
// @Description With source=db the station's rows are also deleted from the scan log.
// @Tags stations
// @Produce json
// @Param X-Station-ID header string false "Packing station"
// @Param source query string false "memory (default) or db"
// @Success 200 {object} models.ResetHistoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /stations/history [delete]
func (h *HistoryHandler) Reset(c *gin.Context) {
	station := middleware.GetStation(c)
	source := c.Query("source")
	deleted, err := h.validationSvc.ResetHistory(c.Request.Context(), station, source)
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	if source == "" {
		source = services.SourceMemory
	}

	c.JSON(http.StatusOK, models.ResetHistoryResponse{Station: station, Source: source, Deleted: deleted})
}

// GetScan handles GET /scans/:id
// @Summary One scan from the scan log
// @Tags stations
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} models.ScanRecord
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /scans/{id} [get]
func (h *HistoryHandler) GetScan(c *gin.Context) {
	rec, err := h.validationSvc.Scan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// writeHistoryError maps history and scan log errors to status codes
func writeHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidSource):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
	case errors.Is(err, repository.ErrScanNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrHistoryUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "unavailable",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
