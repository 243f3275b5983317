package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/domain"
	"procura/internal/service"
)

// SyncHandler handles folder sync endpoints.
type SyncHandler struct {
	syncService service.SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Trigger handles POST /api/v1/sync/:category. It runs the sync inline and
// returns the run report; long folders simply hold the request open.
func (h *SyncHandler) Trigger(c *gin.Context) {
	category, ok := domain.ParseCategory(c.Param("category"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "UNKNOWN_CATEGORY", "unknown folder category; allowed: po, bank_slip")
		return
	}

	report, err := h.syncService.Sync(c.Request.Context(), category)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Status handles GET /api/v1/sync/:category/status
func (h *SyncHandler) Status(c *gin.Context) {
	category, ok := domain.ParseCategory(c.Param("category"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "UNKNOWN_CATEGORY", "unknown folder category; allowed: po, bank_slip")
		return
	}

	cfg, err := h.syncService.Status(c.Request.Context(), category)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cfg)
}
