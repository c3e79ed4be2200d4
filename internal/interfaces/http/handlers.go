package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guicheweb/recibo/internal/application/port"
	"github.com/guicheweb/recibo/internal/application/service"
	"github.com/guicheweb/recibo/internal/cpf"
	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/internal/locations"
	"github.com/guicheweb/recibo/internal/ptbr"
	"github.com/guicheweb/recibo/internal/storage"
	"github.com/guicheweb/recibo/internal/voucher"
	"github.com/guicheweb/recibo/pkg/utils"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeText = "text/plain; charset=utf-8"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	receiptService service.ReceiptService
	directory      port.CityDirectory
	version        string
	logger         Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	receiptService service.ReceiptService,
	directory port.CityDirectory,
	version string,
	logger Logger,
) *Handlers {
	return &Handlers{
		receiptService: receiptService,
		directory:      directory,
		version:        version,
		logger:         logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// WordsResponse is the spelled-out form of an amount
type WordsResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
	Words     string          `json:"words"`
}

// CPFResponse describes a CPF typed by the user
type CPFResponse struct {
	Masked string `json:"masked"`
	Valid  *bool  `json:"valid,omitempty"`
}

// CitiesResponse lists the cities of a federative unit
type CitiesResponse struct {
	State  string   `json:"state"`
	Cities []string `json:"cities"`
}

// LocationsStatusResponse reports whether remote city lookups are in flight
type LocationsStatusResponse struct {
	Loading bool `json:"loading"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// Total handles POST /api/receipts/total
func (h *Handlers) Total(c *gin.Context) {
	receipt, ok := h.bindReceipt(c)
	if !ok {
		return
	}

	summary, err := h.receiptService.Total(c.Request.Context(), receipt)
	if err != nil {
		h.respondError(c, "Failed to compute total", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// Preview handles POST /api/receipts/preview
func (h *Handlers) Preview(c *gin.Context) {
	receipt, ok := h.bindReceipt(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.Preview(c.Request.Context(), receipt)
	if err != nil {
		h.respondError(c, "Failed to compose preview", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    doc,
	})
}

// RenderPDF handles POST /api/receipts/pdf
func (h *Handlers) RenderPDF(c *gin.Context) {
	h.renderFile(c, service.FormatPDF)
}

// RenderXLSX handles POST /api/receipts/xlsx
func (h *Handlers) RenderXLSX(c *gin.Context) {
	h.renderFile(c, service.FormatXLSX)
}

// RenderText handles POST /api/receipts/text
func (h *Handlers) RenderText(c *gin.Context) {
	h.renderFile(c, service.FormatText)
}

// Export handles POST /api/receipts/export?format=pdf|xlsx|text
func (h *Handlers) Export(c *gin.Context) {
	format, err := service.ParseFormat(c.DefaultQuery("format", string(service.FormatPDF)))
	if err != nil {
		h.respondError(c, "Invalid export format", err)
		return
	}

	receipt, ok := h.bindReceipt(c)
	if !ok {
		return
	}

	result, err := h.receiptService.Export(c.Request.Context(), receipt, format)
	if err != nil {
		h.respondError(c, "Failed to export receipt", err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    result,
	})
}

// AmountToWords handles GET /api/words?amount=
func (h *Handlers) AmountToWords(c *gin.Context) {
	amount, err := utils.ParseAmount(c.Query("amount"))
	if err == nil {
		err = utils.ValidateAmount(amount)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	words, err := ptbr.AmountToWords(amount)
	if err != nil {
		h.respondError(c, "Failed to spell amount", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: WordsResponse{
			Amount:    amount,
			Formatted: ptbr.FormatBRL(amount),
			Words:     words,
		},
	})
}

// MaskCPF handles GET /api/cpf/mask?value=
func (h *Handlers) MaskCPF(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    CPFResponse{Masked: cpf.Mask(c.Query("value"))},
	})
}

// ValidateCPF handles GET /api/cpf/validate?value=
func (h *Handlers) ValidateCPF(c *gin.Context) {
	value := c.Query("value")
	valid := cpf.IsValid(value)

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    CPFResponse{Masked: cpf.Mask(value), Valid: &valid},
	})
}

// ListStates handles GET /api/locations/states
func (h *Handlers) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    h.directory.States(),
	})
}

// ListCities handles GET /api/locations/states/:code/cities
func (h *Handlers) ListCities(c *gin.Context) {
	state, err := locations.Lookup(c.Param("code"))
	if err != nil {
		h.respondError(c, "Unknown state", err)
		return
	}

	cities := h.directory.Cities(c.Request.Context(), state.Code)

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: CitiesResponse{
			State:  state.Code,
			Cities: cities,
		},
	})
}

// LocationsStatus handles GET /api/locations/status. Cities requests are
// synchronous, so the flag is meant for clients polling while another
// request waits on the IBGE service.
func (h *Handlers) LocationsStatus(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    LocationsStatusResponse{Loading: h.directory.Loading()},
	})
}

func (h *Handlers) renderFile(c *gin.Context, format service.Format) {
	receipt, ok := h.bindReceipt(c)
	if !ok {
		return
	}

	data, err := h.receiptService.Render(c.Request.Context(), receipt, format)
	if err != nil {
		h.respondError(c, "Failed to render receipt", err)
		return
	}

	fileType, contentType := storage.FileTypeText, contentTypeText
	switch format {
	case service.FormatPDF:
		fileType, contentType = storage.FileTypePDF, contentTypePDF
	case service.FormatXLSX:
		fileType, contentType = storage.FileTypeExcel, contentTypeXLSX
	}

	fileName := storage.ReceiptFileName(receipt.Info.FullName, receipt.Mode.String(), fileType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, contentType, data)
}

// bindReceipt decodes and cleans the receipt in the request body. It writes
// the error response itself and reports whether the handler may continue.
func (h *Handlers) bindReceipt(c *gin.Context) (*entity.Receipt, bool) {
	var receipt entity.Receipt
	if err := c.ShouldBindJSON(&receipt); err != nil {
		h.logger.Error("Invalid receipt payload", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid receipt payload: " + err.Error(),
		})
		return nil, false
	}

	if err := service.SanitizeReceipt(&receipt); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return nil, false
	}
	return &receipt, true
}

// respondError maps domain errors to status codes
func (h *Handlers) respondError(c *gin.Context, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, "error", err, "path", c.Request.URL.Path)
	}

	c.JSON(status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidMode),
		errors.Is(err, entity.ErrFullNameRequired),
		errors.Is(err, entity.ErrUnknownService),
		errors.Is(err, ptbr.ErrNegativeAmount),
		errors.Is(err, ptbr.ErrAmountOutOfRange),
		errors.Is(err, ptbr.ErrInvalidDate),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, voucher.ErrNilReceipt):
		return http.StatusBadRequest
	case errors.Is(err, locations.ErrUnknownState):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
