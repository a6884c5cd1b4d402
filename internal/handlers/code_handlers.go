package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/lomasaltas/boxcode/internal/middleware"
	"github.com/lomasaltas/boxcode/internal/models"
	"github.com/lomasaltas/boxcode/internal/services"
)

// CodeHandler handles code validation endpoints
type CodeHandler struct {
	validationSvc *services.ValidationService
	batchSvc      *services.BatchService
}

// NewCodeHandler creates a new CodeHandler
func NewCodeHandler(validationSvc *services.ValidationService, batchSvc *services.BatchService) *CodeHandler {
	return &CodeHandler{
		validationSvc: validationSvc,
		batchSvc:      batchSvc,
	}
}

// Validate handles POST /codes/validate
// @Summary Validate a box code
// @Description Parse and validate a 16-digit box code. Invalid codes are reported in the body with status 200.
// @Tags codes
// @Accept json
// @Produce json
// @Param X-Station-ID header string false "Packing station"
// @Param request body models.ValidateRequest true "Code to validate"
// @Success 200 {object} models.ValidateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /codes/validate [post]
func (h *CodeHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	resp := h.validationSvc.Validate(warnCtx, middleware.GetStation(c), &req)
	resp.ServiceWarnings = wc.GetWarnings()

	c.JSON(http.StatusOK, resp)
}

// ValidateBatch handles POST /codes/validate/batch
// @Summary Validate many box codes
// @Description Validate a JSON list of codes, or a CSV upload (multipart field "file") with a "code" column.
// @Description Expected shift/format/company may be sent as form fields with the upload.
// @Tags codes
// @Accept json,mpfd
// @Produce json
// @Param X-Station-ID header string false "Packing station"
// @Param request body models.BatchValidateRequest false "Codes to validate"
// @Param file formData file false "CSV file with a code column"
// @Success 200 {object} models.BatchValidateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /codes/validate/batch [post]
func (h *CodeHandler) ValidateBatch(c *gin.Context) {
	warnCtx, wc := services.NewWarningContext(c.Request.Context())

	var codes []string
	var expected *boxcode.ExpectedParams

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "multipart upload requires a 'file' field",
			})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
			return
		}
		defer f.Close()

		parsed, blankRows, err := ParseCodesCSV(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		for _, row := range blankRows {
			services.AddWarningf(warnCtx, models.WarnBlankRowSkipped, "row %d of %s has no code", row, fileHeader.Filename)
		}
		codes = parsed

		exp := boxcode.ExpectedParams{
			Shift:   c.PostForm("shift"),
			Format:  c.PostForm("format"),
			Company: c.PostForm("company"),
		}
		if !exp.IsZero() {
			expected = &exp
		}
	} else {
		var req models.BatchValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		codes = req.Codes
		expected = req.Expected
	}

	resp, err := h.batchSvc.ValidateBatch(warnCtx, middleware.GetStation(c), codes, expected)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyBatch):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
		case errors.Is(err, services.ErrBatchTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "too_large",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
		}
		return
	}
	resp.Warnings = wc.GetWarnings()

	c.JSON(http.StatusOK, resp)
}

// Encode handles POST /codes/encode
// @Summary Build a box code
// @Description Build a 16-digit code from its fields. Day, week and year come from produced_at (default now) in the plant timezone; shift defaults to the shift working at that time.
// @Tags codes
// @Accept json
// @Produce json
// @Param request body models.EncodeRequest true "Code fields"
// @Success 200 {object} models.EncodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /codes/encode [post]
func (h *CodeHandler) Encode(c *gin.Context) {
	var req models.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.validationSvc.Encode(&req)
	if err != nil {
		if errors.Is(err, boxcode.ErrFieldWidth) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Help handles GET /codes/help/:field
// @Summary Help text for a finding field
// @Tags codes
// @Produce json
// @Param field path string true "Finding field, e.g. calibre"
// @Success 200 {object} models.HelpResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /codes/help/{field} [get]
func (h *CodeHandler) Help(c *gin.Context) {
	field := c.Param("field")
	help := boxcode.HelpForField(field)
	if help == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "no help available for field: " + field,
		})
		return
	}

	c.JSON(http.StatusOK, models.HelpResponse{Field: field, Help: help})
}

// Reference handles GET /reference
// @Summary Reference tables
// @Description Calibers, JUMBO calibers, shifts, formats, companies and day names used by the validator
// @Tags codes
// @Produce json
// @Success 200 {object} boxcode.ReferenceTables
// @Router /reference [get]
func (h *CodeHandler) Reference(c *gin.Context) {
	c.JSON(http.StatusOK, boxcode.Reference())
}
