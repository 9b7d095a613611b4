package pdf

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type failingAssets struct{}

func (failingAssets) Logo(context.Context) ([]byte, string, error) {
	return nil, "", errors.New("asset backend unreachable")
}

func testGenerator() *Generator {
	g := NewGenerator(NoLogo)
	g.Now = fixedClock(time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC))
	return g
}

func singleItemRequest() Request {
	return Request{
		Items: []LineItem{
			{Description: "Jasa Konsultasi", Price: 1_000_000, Quantity: 1, TotalAmount: 1_000_000},
		},
		Project:       &ProjectInfo{Name: "Sistem Kasir", CustomerName: "PT Maju Jaya"},
		InvoiceNumber: "INV-001",
		InvoiceDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Mode:          ModeSave,
	}
}

func TestGenerateFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty items", func(r *Request) { r.Items = nil }},
		{"blank invoice number", func(r *Request) { r.InvoiceNumber = "   " }},
		{"missing invoice date", func(r *Request) { r.InvoiceDate = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := singleItemRequest()
			tt.mutate(&req)

			doc, err := testGenerator().Generate(context.Background(), req)

			require.Error(t, err)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Nil(t, doc, "no artifact may be produced on validation failure")
		})
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		subtotal float64
		tax      float64
	}{
		{
			name:     "single item",
			items:    []LineItem{{TotalAmount: 1_000_000}},
			subtotal: 1_000_000,
			tax:      110_000,
		},
		{
			name:     "fractional tax rounds to whole rupiah",
			items:    []LineItem{{TotalAmount: 1_000_001}},
			subtotal: 1_000_001,
			tax:      110_000, // 110000.11 rounds down
		},
		{
			name:     "rounds up past the half unit",
			items:    []LineItem{{TotalAmount: 1_000_005}},
			subtotal: 1_000_005,
			tax:      110_001, // 110000.55 rounds up
		},
		{
			name:     "multiple items sum before tax",
			items:    []LineItem{{TotalAmount: 250_000}, {TotalAmount: 750_000}, {TotalAmount: 500_000}},
			subtotal: 1_500_000,
			tax:      165_000,
		},
		{
			name:     "zero subtotal",
			items:    []LineItem{{TotalAmount: 0}},
			subtotal: 0,
			tax:      0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items)
			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.tax, totals.Tax)
			assert.Equal(t, tt.subtotal+tt.tax, totals.Total)
		})
	}
}

func TestGenerateSingleItem(t *testing.T) {
	for _, mode := range []Mode{ModeSave, ModePreview} {
		t.Run(string(mode), func(t *testing.T) {
			req := singleItemRequest()
			req.Mode = mode

			doc, err := testGenerator().Generate(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, float64(1_000_000), doc.Subtotal)
			assert.Equal(t, float64(110_000), doc.Tax)
			assert.Equal(t, float64(1_110_000), doc.Total)
			assert.Equal(t, "invoice-INV-001-20250110.pdf", doc.Filename)
			assert.Equal(t, 1, doc.Pages)
			require.NotEmpty(t, doc.Bytes)
			assert.Equal(t, "%PDF", string(doc.Bytes[:4]))
		})
	}
}

func TestGenerateTotalsAreIdempotent(t *testing.T) {
	req := singleItemRequest()
	req.Items = append(req.Items, LineItem{Description: "Instalasi", Price: 333_333, Quantity: 3, TotalAmount: 999_999})

	g := testGenerator()
	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal, second.Subtotal)
	assert.Equal(t, first.Tax, second.Tax)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Filename, second.Filename)
	assert.Equal(t, first.Pages, second.Pages)
}

func TestGenerateDegradesWithoutLogo(t *testing.T) {
	req := singleItemRequest()

	g := testGenerator()
	g.Assets = failingAssets{}
	doc, err := g.Generate(context.Background(), req)

	require.NoError(t, err, "unreachable logo asset must not fail the render")
	assert.NotEmpty(t, doc.Bytes)

	// Same render with a file provider pointed at nothing behaves the same.
	g.Assets = &FileAssetProvider{Path: "/nonexistent/logo.jpg"}
	doc, err = g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
}

func TestGeneratePaginatesLongTables(t *testing.T) {
	req := singleItemRequest()
	req.Items = nil
	for i := 0; i < 60; i++ {
		req.Items = append(req.Items, LineItem{
			Description: fmt.Sprintf("Pekerjaan tahap %d", i+1),
			Price:       100_000,
			Quantity:    1,
			TotalAmount: 100_000,
		})
	}

	doc, err := testGenerator().Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Greater(t, doc.Pages, 1, "60 rows cannot fit one A4 page")
	assert.Equal(t, float64(6_000_000), doc.Subtotal)
	assert.Equal(t, float64(660_000), doc.Tax)
}

func TestGenerateWithoutProjectInfo(t *testing.T) {
	req := singleItemRequest()
	req.Project = nil

	doc, err := testGenerator().Generate(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
}

func TestTruncateToWidthIsConsistent(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	r := &renderer{doc: doc}

	maxWidth := colDesc - 2*cellPad
	long := "Pengadaan dan pemasangan instalasi jaringan komputer beserta seluruh perangkat pendukungnya untuk gedung kantor pusat"

	descriptions := []string{
		"Jasa Konsultasi",
		long,
		long + " tahap kedua",
		long + " tahap ketiga dengan tambahan pekerjaan finishing",
	}
	for i, desc := range descriptions {
		got := r.truncateToWidth(desc, maxWidth)
		assert.LessOrEqual(t, doc.GetStringWidth(got), maxWidth, "row %d overflows the description column", i)
		if doc.GetStringWidth(desc) > maxWidth {
			assert.True(t, len(got) < len(desc), "row %d should have been cut", i)
			assert.Contains(t, got, "...", "row %d is missing the ellipsis marker", i)
		} else {
			assert.Equal(t, desc, got, "short descriptions pass through untouched")
		}
	}
}
