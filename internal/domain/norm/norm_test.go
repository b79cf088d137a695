package norm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-ledger/internal/domain/norm"
)

func TestSize_ColapsaVariantesNumericas(t *testing.T) {
	cases := map[string]string{
		"36":       "36",
		"36.0":     "36",
		"36,":      "36",
		" 36 ":     "36",
		"36,5":     "36.5",
		"36.5":     "36.5",
		"xs":       "XS",
		"t36":      "T36",
		"única":    "U",
		"UNITALLA": "U",
		"one size": "U",
		"tu":       "U",
		"":         "",
		"  ":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, norm.Size(in), "Size(%q)", in)
	}
}

func TestCode_RespetaCerosALaIzquierda(t *testing.T) {
	assert.Equal(t, "1234", norm.Code("1234.0"))
	assert.Equal(t, "1234", norm.Code(" 1234 "))
	assert.Equal(t, "00123", norm.Code("  00123 "))
	assert.Equal(t, "", norm.Code(""))
	assert.Equal(t, "ALB-7", norm.Code("ALB-7"))
}

func TestDate_FormatosComunes(t *testing.T) {
	assert.Equal(t, "2024-01-05", norm.Date("2024-01-05"))
	assert.Equal(t, "2024-01-05", norm.Date("2024-01-05 10:30:00"))
	assert.Equal(t, "2024-01-05", norm.Date("05/01/2024"))
	assert.Equal(t, "2024-01-05", norm.Date("05-01-24"))
	assert.Equal(t, "", norm.Date("no es fecha"))
	assert.Equal(t, "", norm.Date("32/01/2024"))
	assert.Equal(t, "", norm.Date(""))
}

func TestSortSizes_OrdenNatural(t *testing.T) {
	sizes := []string{"U", "XL", "38", "36.5", "XS", "36", "ZZZ", "T40", "M"}
	norm.SortSizes(sizes)
	assert.Equal(t, []string{"36", "36.5", "38", "T40", "XS", "M", "XL", "U", "ZZZ"}, sizes)
}
