package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"procura/internal/domain"
	"procura/internal/port"
	"procura/internal/service"
)

// FileHandler handles indexed-file listing and the scan/accept flow.
type FileHandler struct {
	files       port.FileIndexRepository
	scanService service.ScanService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(files port.FileIndexRepository, scanService service.ScanService) *FileHandler {
	return &FileHandler{files: files, scanService: scanService}
}

// List handles GET /api/v1/files?category=po&offset=0&limit=50
func (h *FileHandler) List(c *gin.Context) {
	category, ok := domain.ParseCategory(c.Query("category"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "UNKNOWN_CATEGORY", "unknown folder category; allowed: po, bank_slip")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	files, total, err := h.files.List(c.Request.Context(), category, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, files, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// scanRequest is the body for POST /files/:id/scan. The caller supplies the
// candidate pool, already filtered to awaiting-delivery records.
type scanRequest struct {
	Candidates []domain.CandidateRecord `json:"candidates"`
}

// Scan handles POST /api/v1/files/:id/scan
func (h *FileHandler) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	result, err := h.scanService.Scan(c.Request.Context(), service.ScanInput{
		RemoteID:   c.Param("id"),
		Candidates: req.Candidates,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// acceptRequest is the body for POST /files/:id/accept.
type acceptRequest struct {
	PurchaseOrderID uuid.UUID            `json:"purchase_order_id" binding:"required"`
	SupplierID      uuid.UUID            `json:"supplier_id" binding:"required"`
	Items           []domain.ResolveItem `json:"items"`
}

// Accept handles POST /api/v1/files/:id/accept
func (h *FileHandler) Accept(c *gin.Context) {
	var req acceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	report, err := h.scanService.Accept(c.Request.Context(), service.AcceptInput{
		RemoteID:        c.Param("id"),
		PurchaseOrderID: req.PurchaseOrderID,
		SupplierID:      req.SupplierID,
		Items:           req.Items,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ArchiveURL handles GET /api/v1/files/:id/archive-url
func (h *FileHandler) ArchiveURL(c *gin.Context) {
	url, err := h.scanService.ArchiveURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}
