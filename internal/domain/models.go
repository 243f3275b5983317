package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is the minimal counterparty shape the pipeline needs. The full
// supplier record (addresses, contacts, terms) lives with the CRUD screens.
type Supplier struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ShortCode string    `db:"short_code" json:"short_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IndexedFile is a remote file observed during folder sync, cached locally.
// RemoteID is the stable external identity; re-observing the same RemoteID
// refreshes the mutable fields but never clears Processed or the record links.
type IndexedFile struct {
	RemoteID        string         `db:"remote_id" json:"remote_id"`
	Name            string         `db:"name" json:"name"`
	FolderCategory  FolderCategory `db:"folder_category" json:"folder_category"`
	FolderWatermark string         `db:"folder_watermark" json:"folder_watermark"`
	MimeType        string         `db:"mime_type" json:"mime_type"`
	SizeBytes       *int64         `db:"size_bytes" json:"size_bytes,omitempty"`
	LastSeenAt      time.Time      `db:"last_seen_at" json:"last_seen_at"`
	Processed       bool           `db:"processed" json:"processed"`
	ProcessedAt     *time.Time     `db:"processed_at" json:"processed_at,omitempty"`
	PurchaseOrderID *uuid.UUID     `db:"purchase_order_id" json:"purchase_order_id,omitempty"`
	PaymentReqID    *uuid.UUID     `db:"payment_request_id" json:"payment_request_id,omitempty"`
	InvoiceID       *uuid.UUID     `db:"invoice_id" json:"invoice_id,omitempty"`
	ArchiveKey      string         `db:"archive_key" json:"archive_key,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// SyncConfig is the per-category sync bookkeeping row, mutated only at the end
// of a sync pass.
type SyncConfig struct {
	FolderCategory   FolderCategory `db:"folder_category" json:"folder_category"`
	LastSyncedAt     *time.Time     `db:"last_synced_at" json:"last_synced_at,omitempty"`
	LastSyncStatus   SyncStatus     `db:"last_sync_status" json:"last_sync_status"`
	LastSyncError    string         `db:"last_sync_error" json:"last_sync_error"`
	FilesSyncedCount int            `db:"files_synced_count" json:"files_synced_count"`
}

// SyncReport summarizes a single sync run. FilesSynced is a per-run count,
// not a cumulative total.
type SyncReport struct {
	FoldersScanned int        `json:"folders_scanned"`
	FilesSynced    int        `json:"files_synced"`
	Status         SyncStatus `json:"status"`
	Errors         []string   `json:"errors,omitempty"`
}

// ExtractedLineItem is one line item as returned by the extraction oracle.
type ExtractedLineItem struct {
	Name      string           `json:"name"`
	Quantity  float64          `json:"quantity"`
	Unit      string           `json:"unit"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// ExtractedDocument is the structured output of a delivery-note extraction.
// It is consumed once per reconciliation call and never persisted.
type ExtractedDocument struct {
	CounterpartyName string              `json:"counterparty_name,omitempty"`
	Items            []ExtractedLineItem `json:"items"`
}

// CandidateLineItem is one expected line of a pending business record.
type CandidateLineItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}

// CandidateRecord is a pending business record eligible for reconciliation,
// e.g. an approved purchase order awaiting delivery. The caller supplies the
// pool already filtered to the awaiting-delivery state.
type CandidateRecord struct {
	ID           uuid.UUID           `json:"id"`
	SupplierID   uuid.UUID           `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	LineItems    []CandidateLineItem `json:"line_items"`
}

// ItemMatchReport explains how one line item was classified during
// reconciliation.
type ItemMatchReport struct {
	ExtractedName string      `json:"extracted_name,omitempty"`
	ExtractedQty  float64     `json:"extracted_qty,omitempty"`
	ExtractedUnit string      `json:"extracted_unit,omitempty"`
	MatchedName   string      `json:"matched_name,omitempty"`
	MatchedQty    float64     `json:"matched_qty,omitempty"`
	MatchedUnit   string      `json:"matched_unit,omitempty"`
	Status        MatchStatus `json:"status"`
}

// MatchResult is the reconciliation decision for one extracted document
// against a candidate pool.
type MatchResult struct {
	Matched          bool              `json:"matched"`
	Score            float64           `json:"score"`
	CandidateID      *uuid.UUID        `json:"candidate_id,omitempty"`
	CounterpartyName string            `json:"counterparty_name,omitempty"`
	ItemReports      []ItemMatchReport `json:"item_reports"`
}

// SkuRecord is a canonical product identity. The code is immutable once
// created; descriptive fields may be edited later by the CRUD screens.
type SkuRecord struct {
	Code        string           `db:"code" json:"code"`
	ProductName string           `db:"product_name" json:"product_name"`
	Unit        string           `db:"unit" json:"unit"`
	UnitPrice   decimal.Decimal  `db:"unit_price" json:"unit_price"`
	SupplierID  *uuid.UUID       `db:"supplier_id" json:"supplier_id,omitempty"`
	Category    string           `db:"category" json:"category"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// ResolveItem is a line item passing through SKU resolution.
type ResolveItem struct {
	ID          uuid.UUID        `json:"id"`
	ProductName string           `json:"product_name"`
	Unit        string           `json:"unit"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	SkuCode     string           `json:"sku_code,omitempty"`
}

// ResolveReport counts the outcome of one batch SKU resolution.
type ResolveReport struct {
	Linked  int `json:"linked"`
	Created int `json:"created"`
	Failed  int `json:"failed"`
}
