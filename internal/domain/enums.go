package domain

// FolderCategory identifies a synced remote root folder.
type FolderCategory string

const (
	CategoryPurchaseOrder FolderCategory = "po"
	CategoryBankSlip      FolderCategory = "bank_slip"
)

// AllCategories lists every folder category the synchronizer knows about.
var AllCategories = []FolderCategory{CategoryPurchaseOrder, CategoryBankSlip}

// ParseCategory validates a folder category string from an API path or config key.
func ParseCategory(s string) (FolderCategory, bool) {
	switch FolderCategory(s) {
	case CategoryPurchaseOrder, CategoryBankSlip:
		return FolderCategory(s), true
	}
	return "", false
}

// SyncStatus is the outcome of the most recent sync pass for a category.
type SyncStatus string

const (
	SyncStatusNone    SyncStatus = "none"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

// MatchStatus classifies a single line item in a reconciliation report.
type MatchStatus string

const (
	MatchStatusMatch    MatchStatus = "match"
	MatchStatusMismatch MatchStatus = "mismatch"
	MatchStatusExtra    MatchStatus = "extra"
	MatchStatusMissing  MatchStatus = "missing"
)

// UserRole defines the operator role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ImageContentTypes lists the MIME types the synchronizer indexes from remote
// date folders. Everything else in a folder is skipped.
var ImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}
