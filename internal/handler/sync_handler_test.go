package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"procura/internal/domain"
	"procura/internal/handler"
	"procura/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func syncRouter(h *handler.SyncHandler) *gin.Engine {
	r := gin.New()
	r.POST("/sync/:category", h.Trigger)
	r.GET("/sync/:category/status", h.Status)
	return r
}

func TestSyncHandler_Trigger_Success(t *testing.T) {
	svc := new(mocks.MockSyncService)
	h := handler.NewSyncHandler(svc)

	svc.On("Sync", mock.Anything, domain.CategoryPurchaseOrder).
		Return(&domain.SyncReport{FoldersScanned: 2, FilesSynced: 5, Status: domain.SyncStatusSuccess}, nil)

	w := performRequest(syncRouter(h), http.MethodPost, "/sync/po", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Data    domain.SyncReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Data.FilesSynced)
	svc.AssertExpectations(t)
}

func TestSyncHandler_Trigger_UnknownCategory(t *testing.T) {
	svc := new(mocks.MockSyncService)
	h := handler.NewSyncHandler(svc)

	w := performRequest(syncRouter(h), http.MethodPost, "/sync/receipts", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestSyncHandler_Trigger_AlreadySyncing(t *testing.T) {
	svc := new(mocks.MockSyncService)
	h := handler.NewSyncHandler(svc)

	svc.On("Sync", mock.Anything, domain.CategoryBankSlip).Return(nil, domain.ErrAlreadySyncing)

	w := performRequest(syncRouter(h), http.MethodPost, "/sync/bank_slip", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ALREADY_SYNCING", resp.Error.Code)
}

func TestSyncHandler_Trigger_NotConnected(t *testing.T) {
	svc := new(mocks.MockSyncService)
	h := handler.NewSyncHandler(svc)

	svc.On("Sync", mock.Anything, domain.CategoryPurchaseOrder).Return(nil, domain.ErrNotConnected)

	w := performRequest(syncRouter(h), http.MethodPost, "/sync/po", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSyncHandler_Status(t *testing.T) {
	svc := new(mocks.MockSyncService)
	h := handler.NewSyncHandler(svc)

	svc.On("Status", mock.Anything, domain.CategoryPurchaseOrder).
		Return(&domain.SyncConfig{FolderCategory: domain.CategoryPurchaseOrder, LastSyncStatus: domain.SyncStatusSuccess}, nil)

	w := performRequest(syncRouter(h), http.MethodGet, "/sync/po/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
