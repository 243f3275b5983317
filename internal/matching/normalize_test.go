package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"procura/internal/matching"
)

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bột mì", "Bot mi"},
		{"Đường cát trắng", "Duong cat trang"},
		{"Cà phê sữa đá", "Ca phe sua da"},
		{"Nước mắm", "Nuoc mam"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matching.StripDiacritics(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "bot mi", matching.NormalizeText("  Bột Mì  "))
	assert.Equal(t, "duong", matching.NormalizeText("ĐƯỜNG"))
	assert.Equal(t, "", matching.NormalizeText("   "))
}

func TestNormalizeUnit_Synonyms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kilogram", "kg"},
		{"kgs", "kg"},
		{"KG", "kg"},
		{"lít", "l"},
		{"Litre", "l"},
		{"quả", "cai"},
		{"trái", "cai"},
		{"chiếc", "cai"},
		{"pcs", "cai"},
		{"Thùng", "thung"},
		{"carton", "thung"},
		{"hộp", "hop"},
		{"box", "hop"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matching.NormalizeUnit(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeUnit_Unrecognized(t *testing.T) {
	// Unknown units pass through normalized but otherwise untouched.
	assert.Equal(t, "vien", matching.NormalizeUnit("Viên"))
}
