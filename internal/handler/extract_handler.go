package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"invotab/internal/csvexport"
	"invotab/internal/service"
)

// ExtractHandler handles document extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// Extract handles POST /api/v1/extract
// @Summary Extract invoice data from a document
// @Description Upload an invoice document (XLSX, XLS, PDF, or image) and receive reconciled invoices, products, and customers
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract (XLSX, XLS, PDF, JPG, PNG, WEBP, HEIC)"
// @Success 200 {object} APIResponse{data=domain.ExtractedData} "Extraction result"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "Spreadsheet could not be read"
// @Failure 429 {object} APIResponse "Model providers rate limited"
// @Failure 502 {object} APIResponse "Extraction failed"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractInput{
		File:   file,
		Header: header,
	}

	data, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, data)
}

// ExtractCSV handles POST /api/v1/extract/csv
// @Summary Extract invoice data and download it as CSV
// @Description Upload an invoice document and receive the reconciled invoice table as a CSV download
// @Tags extract
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "Document to extract (XLSX, XLS, PDF, JPG, PNG, WEBP, HEIC)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Router /extract/csv [post]
func (h *ExtractHandler) ExtractCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := h.extractionService.Extract(c.Request.Context(), service.ExtractInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	baseName := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename(baseName)+`"`)
	c.Status(http.StatusOK)

	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	_ = w.WriteHeader()
	_ = w.WriteInvoices(data.Invoices)
	w.Flush()
}
