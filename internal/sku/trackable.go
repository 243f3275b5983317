package sku

import (
	"strings"

	"procura/internal/domain"
	"procura/internal/matching"
	"procura/internal/port"
)

// serviceKeywords are normalized substrings that mark a line item as a
// service or charge rather than a physical good.
var serviceKeywords = []string{
	"phi van chuyen", // shipping fee
	"phi giao hang",  // delivery fee
	"van chuyen",
	"tien cong", // labor
	"nhan cong",
	"cong tho",
	"chiet khau", // discount line
	"giam gia",
	"dich vu", // service
	"phi khac",
}

// KeywordPredicate is the default trackable-goods predicate: any line whose
// normalized name contains a service keyword is skipped by SKU resolution.
type KeywordPredicate struct{}

// NewKeywordPredicate creates the default predicate.
func NewKeywordPredicate() port.TrackableGoodsPredicate {
	return &KeywordPredicate{}
}

func (p *KeywordPredicate) IsTrackable(item domain.ResolveItem) bool {
	name := matching.NormalizeText(item.ProductName)
	if name == "" {
		return false
	}
	for _, kw := range serviceKeywords {
		if strings.Contains(name, kw) {
			return false
		}
	}
	return true
}
