package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patchDTO struct {
	Name        *string  `json:"name"`
	TotalBudget *float64 `json:"total_budget"`
	Internal    *string  `json:"-"`
	Ignored     *string
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdatesFromPtrDTO(t *testing.T) {
	in := patchDTO{
		Name:     strPtr("Gudang Baru"),
		Internal: strPtr("hidden"),
	}

	updates := UpdatesFromPtrDTO(&in, nil)

	assert.Equal(t, map[string]any{"name": "Gudang Baru"}, updates)
}

func TestUpdatesFromPtrDTORenames(t *testing.T) {
	in := patchDTO{TotalBudget: f64Ptr(5000)}

	updates := UpdatesFromPtrDTO(&in, map[string]string{"total_budget": "budget"})

	assert.Equal(t, map[string]any{"budget": float64(5000)}, updates)
}

func TestNormalizePtrDTO(t *testing.T) {
	in := patchDTO{
		Name:        strPtr("  padded  "),
		TotalBudget: f64Ptr(10.005),
	}

	NormalizePtrDTO(&in)

	assert.Equal(t, "padded", *in.Name)
	assert.InDelta(t, 10.01, *in.TotalBudget, 1e-9)
	assert.Nil(t, in.Ignored, "nil pointers stay nil so GORM skips them")
}

func TestNormalizeDTOTrimsSliceElements(t *testing.T) {
	in := struct {
		InvoiceNumber string
		Amount        float64
		InvoiceIDs    []string
	}{
		InvoiceNumber: "  INV-001  ",
		Amount:        10.005,
		InvoiceIDs:    []string{" a ", "b", "\tc\n"},
	}

	NormalizeDTO(&in)

	assert.Equal(t, "INV-001", in.InvoiceNumber)
	assert.InDelta(t, 10.01, in.Amount, 1e-9)
	assert.Equal(t, []string{"a", "b", "c"}, in.InvoiceIDs)
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 25, ParseIntDefault(" 25 ", 10))
	assert.Equal(t, 10, ParseIntDefault("abc", 10))
	assert.Equal(t, 10, ParseIntDefault("-3", 10))
}
