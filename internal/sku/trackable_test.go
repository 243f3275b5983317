package sku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"procura/internal/domain"
	"procura/internal/sku"
)

func TestKeywordPredicate(t *testing.T) {
	pred := sku.NewKeywordPredicate()

	trackable := []string{
		"Bột mì số 8",
		"Đường cát trắng",
		"Nước mắm Phú Quốc",
		"Thùng carton 5 lớp",
	}
	for _, name := range trackable {
		assert.True(t, pred.IsTrackable(domain.ResolveItem{ProductName: name}), "%q should be trackable", name)
	}

	services := []string{
		"Phí vận chuyển",
		"PHÍ GIAO HÀNG nội thành",
		"Tiền công lắp đặt",
		"Chiết khấu thanh toán",
		"Dịch vụ bốc xếp",
		"",
		"   ",
	}
	for _, name := range services {
		assert.False(t, pred.IsTrackable(domain.ResolveItem{ProductName: name}), "%q should not be trackable", name)
	}
}
