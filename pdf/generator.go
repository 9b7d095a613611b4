// Package pdf renders invoice documents: a paginated A4 layout with a
// header band, itemized table, totals ledger and footer, produced entirely
// in memory. A Generator is stateless; concurrent Generate calls are safe
// because every call owns its own document instance.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"techforge-backend/utils"

	"github.com/go-pdf/fpdf"
)

// TaxRate is the Indonesian PPN rate applied to every invoice subtotal.
// It is a statutory rate, not a per-caller knob.
const TaxRate = 0.11

type Mode string

const (
	ModePreview Mode = "preview"
	ModeSave    Mode = "save"
)

// LineItem is one row of the invoice table. TotalAmount is trusted as
// supplied: the generator re-displays and re-sums it but never recomputes
// it from Price and Quantity.
type LineItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

// ProjectInfo is the subject/customer metadata printed above the table.
type ProjectInfo struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
}

type Request struct {
	Items         []LineItem   `json:"items"`
	Project       *ProjectInfo `json:"project"`
	InvoiceNumber string       `json:"invoice_number"`
	InvoiceDate   time.Time    `json:"invoice_date"`
	Mode          Mode         `json:"mode"`
}

// Document is the rendered artifact. The caller owns it; the generator
// keeps nothing after Generate returns.
type Document struct {
	Bytes    []byte
	Filename string
	Pages    int
	Subtotal float64
	Tax      float64
	Total    float64
}

// ValidationError reports insufficient caller input, raised before any
// drawing starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid invoice input: " + e.Reason
}

// RenderError wraps a failure of the underlying drawing engine. The whole
// render is aborted; no partial document is returned.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "invoice render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Totals are the three monetary aggregates of an invoice.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals sums the supplied line totals and applies the tax rate,
// rounded to the whole rupiah (IDR has no display subunits).
func ComputeTotals(items []LineItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalAmount
	}
	tax := utils.RoundIDR(subtotal * TaxRate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// Generator renders invoice documents. Zero value works: no logo, wall
// clock time.
type Generator struct {
	Assets AssetProvider    // optional issuer logo; failures degrade to a blank slot
	Now    func() time.Time // injectable clock for the generation stamp and filename
}

func NewGenerator(assets AssetProvider) *Generator {
	return &Generator{Assets: assets, Now: time.Now}
}

// Issuer identity and layout constants (mm unless noted).
const (
	issuerName    = "RS TechForge"
	issuerTagline = "Technology Services"
	issuerFooter  = "RS TechForge Technology Services"
	thankYouText  = "Terima kasih atas kepercayaan Anda!"

	contactName  = "Rahul Subagio"
	contactEmail = "rahulsubagio99@gmail.com"
	contactPhone = "+6282296365028"

	pageMargin = 20.0
	rowHeight  = 10.0
	cellPad    = 2.0

	colDesc   = 90.0
	colPrice  = 30.0
	colQty    = 20.0
	colAmount = 30.0
)

type rgb struct{ r, g, b int }

var (
	colorPrimary  = rgb{16, 185, 129}  // emerald-600
	colorText     = rgb{31, 41, 55}    // gray-800
	colorGray     = rgb{107, 114, 128} // gray-500
	colorLine     = rgb{200, 200, 200}
	colorHeadFill = rgb{240, 240, 240}
	colorAltFill  = rgb{250, 250, 250}
	colorStamp    = rgb{150, 150, 150}
)

// Generate validates the request, lays out the document and returns the
// finished artifact. Validation failures surface as *ValidationError
// before any drawing; engine failures as *RenderError.
func (g *Generator) Generate(ctx context.Context, req Request) (*Document, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Reason: "no items"}
	}
	if strings.TrimSpace(req.InvoiceNumber) == "" {
		return nil, &ValidationError{Reason: "missing invoice number"}
	}
	if req.InvoiceDate.IsZero() {
		return nil, &ValidationError{Reason: "missing invoice date"}
	}

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	totals := ComputeTotals(req.Items)

	assets := g.Assets
	if assets == nil {
		assets = NoLogo
	}
	logo, logoType, err := assets.Logo(ctx)
	if err != nil {
		// Logo is decorative: degrade to a blank slot.
		logo, logoType = nil, ""
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice "+strings.TrimSpace(req.InvoiceNumber), true)
	doc.SetAutoPageBreak(false, 0) // pagination is the cursor's job

	r := &renderer{
		doc:      doc,
		req:      &req,
		totals:   totals,
		now:      now,
		logo:     logo,
		logoType: logoType,
	}
	r.pageW, r.pageH = doc.GetPageSize()
	r.cur = newCursor(25, r.pageH-45)

	r.render()

	if doc.Err() {
		return nil, &RenderError{Err: doc.Error()}
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Filename: fmt.Sprintf("invoice-%s-%s.pdf", strings.TrimSpace(req.InvoiceNumber), FormatDateCompact(now)),
		Pages:    doc.PageCount(),
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}

// renderer holds the per-call drawing state.
type renderer struct {
	doc          *fpdf.Fpdf
	cur          *cursor
	req          *Request
	totals       Totals
	now          time.Time
	logo         []byte
	logoType     string
	pageW, pageH float64
}

func (r *renderer) render() {
	r.doc.AddPage()

	r.drawHeaderBand()
	metaBottom := r.drawMetadataBlock()
	subjectY := r.drawSubjectLine(metaBottom)

	// Rule between subject and table.
	ruleY := subjectY + 10
	r.setDraw(colorLine)
	r.doc.SetLineWidth(0.5)
	r.doc.Line(pageMargin, ruleY, r.pageW-pageMargin, ruleY)

	r.cur.moveTo(ruleY + 10)
	r.drawTable()
	r.drawTotalsAndContact()
	r.drawFooterBand()
}

// drawHeaderBand lays out the three-part band: logo slot, issuer identity,
// INVOICE title. A missing or undecodable logo leaves the slot blank.
func (r *renderer) drawHeaderBand() {
	const bandTop = 25.0

	if len(r.logo) > 0 {
		opt := fpdf.ImageOptions{ImageType: r.logoType}
		r.doc.RegisterImageOptionsReader("issuer-logo", opt, bytes.NewReader(r.logo))
		if r.doc.Err() {
			// Provider handed us bytes the engine cannot decode; still decorative.
			r.doc.ClearError()
		} else {
			r.doc.ImageOptions("issuer-logo", pageMargin+2, bandTop, 15, 15, false, opt, 0, "")
		}
	}

	identityX := pageMargin + 22
	r.doc.SetFont("Helvetica", "B", 18)
	r.setText(colorText)
	r.doc.Text(identityX, bandTop+8, issuerName)

	r.doc.SetFont("Helvetica", "", 14)
	r.setText(colorGray)
	r.doc.Text(identityX, bandTop+16, issuerTagline)

	// Title centered over the right third of the band.
	r.doc.SetFont("Helvetica", "B", 32)
	r.setText(colorPrimary)
	titleZoneX := pageMargin + 20 + 80
	titleZoneW := r.pageW - pageMargin - titleZoneX
	titleW := r.doc.GetStringWidth("INVOICE")
	r.doc.Text(titleZoneX+(titleZoneW-titleW)/2, bandTop+16, "INVOICE")
}

// drawMetadataBlock prints the invoice number, date and customer as a
// label:value column anchored to a fixed right margin, and returns the Y
// below the block.
func (r *renderer) drawMetadataBlock() float64 {
	labelX := r.pageW - pageMargin - 80
	valueX := labelX + 30
	y := 60.0

	customer := "N/A"
	if r.req.Project != nil && strings.TrimSpace(r.req.Project.CustomerName) != "" {
		customer = r.req.Project.CustomerName
	}

	rows := []struct{ label, value string }{
		{"Invoice #:", strings.TrimSpace(r.req.InvoiceNumber)},
		{"Date:", FormatDateLong(r.req.InvoiceDate)},
		{"Customer:", customer},
	}
	for _, row := range rows {
		r.doc.SetFont("Helvetica", "", 11)
		r.setText(colorText)
		r.doc.Text(labelX, y, row.label)
		r.doc.SetFont("Helvetica", "B", 11)
		r.doc.Text(valueX, y, row.value)
		y += 8
	}
	return y - 8
}

func (r *renderer) drawSubjectLine(metaBottom float64) float64 {
	y := math.Max(metaBottom+10, 80)

	name := "N/A"
	if r.req.Project != nil && strings.TrimSpace(r.req.Project.Name) != "" {
		name = r.req.Project.Name
	}

	r.doc.SetFont("Helvetica", "B", 14)
	r.setText(colorPrimary)
	r.doc.Text(pageMargin, y, "Proyek:")
	r.doc.SetFont("Helvetica", "", 14)
	r.setText(colorText)
	r.doc.Text(pageMargin+22, y, name)
	return y
}

// drawTable emits the header row plus one fixed-height row per line item,
// breaking to a new page (with a repeated header row) whenever the next
// row would not fit.
func (r *renderer) drawTable() {
	r.drawTableHeader()
	for i, item := range r.req.Items {
		if r.cur.ensure(rowHeight) {
			r.doc.AddPage()
			r.drawTableHeader()
		}
		r.drawTableRow(item, i%2 == 1)
	}
}

func (r *renderer) drawTableHeader() {
	r.doc.SetFont("Helvetica", "B", 12)
	r.setText(colorText)
	r.setFill(colorHeadFill)
	r.setDraw(colorLine)
	r.doc.SetLineWidth(0.1)

	r.doc.SetXY(pageMargin, r.cur.pos())
	r.doc.CellFormat(colDesc, rowHeight, "Description", "1", 0, "L", true, 0, "")
	r.doc.CellFormat(colPrice, rowHeight, "Price", "1", 0, "L", true, 0, "")
	r.doc.CellFormat(colQty, rowHeight, "Qty.", "1", 0, "L", true, 0, "")
	r.doc.CellFormat(colAmount, rowHeight, "Amount", "1", 0, "L", true, 0, "")
	r.cur.advance(rowHeight)
}

func (r *renderer) drawTableRow(item LineItem, shaded bool) {
	r.doc.SetFont("Helvetica", "", 11)
	r.setText(colorText)
	r.setFill(colorAltFill)
	r.setDraw(colorLine)
	r.doc.SetLineWidth(0.1)

	desc := r.truncateToWidth(item.Description, colDesc-2*cellPad)

	r.doc.SetXY(pageMargin, r.cur.pos())
	r.doc.CellFormat(colDesc, rowHeight, desc, "1", 0, "L", shaded, 0, "")
	r.doc.CellFormat(colPrice, rowHeight, FormatIDR(item.Price), "1", 0, "L", shaded, 0, "")
	r.doc.CellFormat(colQty, rowHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "L", shaded, 0, "")
	r.doc.CellFormat(colAmount, rowHeight, FormatIDR(item.TotalAmount), "1", 0, "L", shaded, 0, "")
	r.cur.advance(rowHeight)
}

// truncateToWidth cuts s to fit maxWidth in the current font, marking the
// cut with an ellipsis. Applied uniformly to every description cell.
func (r *renderer) truncateToWidth(s string, maxWidth float64) string {
	if r.doc.GetStringWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 && r.doc.GetStringWidth(string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// drawTotalsAndContact places the contact block bottom-left of the table
// and the Subtotal/Tax/Total ledger right-aligned to a common edge.
func (r *renderer) drawTotalsAndContact() {
	// The whole block is drawn as a unit; move it to a fresh page rather
	// than splitting it.
	const blockHeight = 45.0
	r.cur.advance(5)
	if r.cur.ensure(blockHeight) {
		r.doc.AddPage()
	}

	sepY := r.cur.pos()
	r.setDraw(colorLine)
	r.doc.SetLineWidth(0.5)
	r.doc.Line(pageMargin, sepY, r.pageW-pageMargin, sepY)
	r.cur.advance(15)

	y := r.cur.pos()

	// Contact info, left.
	r.doc.SetFont("Helvetica", "B", 14)
	r.setText(colorPrimary)
	r.doc.Text(pageMargin, y, "Contact Info:")
	r.doc.SetFont("Helvetica", "", 11)
	r.setText(colorText)
	r.doc.Text(pageMargin, y+8, contactName)
	r.doc.Text(pageMargin, y+15, contactEmail)
	r.doc.Text(pageMargin, y+22, contactPhone)

	// Totals ledger, right. Values share one right edge so the column
	// reads like a ledger regardless of magnitude.
	labelX := r.pageW - pageMargin - 80
	colonX := labelX + 35
	valueEdge := r.pageW - pageMargin - 10
	ty := y

	ledger := []struct {
		label string
		value float64
	}{
		{"Subtotal", r.totals.Subtotal},
		{"Tax (11%)", r.totals.Tax},
	}
	for _, line := range ledger {
		r.doc.SetFont("Helvetica", "", 11)
		r.setText(colorText)
		r.doc.Text(labelX, ty, line.label)
		r.doc.Text(colonX, ty, ":")
		r.doc.SetFont("Helvetica", "B", 11)
		text := FormatIDR(line.value)
		r.doc.Text(valueEdge-r.doc.GetStringWidth(text), ty, text)
		ty += 8
	}

	r.doc.SetFont("Helvetica", "B", 12)
	r.setText(colorPrimary)
	r.doc.Text(labelX, ty, "Total")
	r.doc.Text(colonX, ty, ":")
	totalText := FormatIDR(r.totals.Total)
	r.doc.Text(valueEdge-r.doc.GetStringWidth(totalText), ty, totalText)

	r.cur.advance(29)
}

// drawFooterBand stamps the thank-you message and the generation footer on
// the last page.
func (r *renderer) drawFooterBand() {
	r.doc.SetFont("Helvetica", "B", 14)
	r.setText(colorPrimary)
	thankW := r.doc.GetStringWidth(thankYouText)
	r.doc.Text((r.pageW-thankW)/2, r.pageH-30, thankYouText)

	r.doc.SetFont("Helvetica", "", 9)
	r.setText(colorStamp)
	r.doc.Text(pageMargin, r.pageH-15, "Generated on "+FormatTimestamp(r.now))
	footW := r.doc.GetStringWidth(issuerFooter)
	r.doc.Text(r.pageW-pageMargin-footW, r.pageH-15, issuerFooter)
}

func (r *renderer) setText(c rgb) { r.doc.SetTextColor(c.r, c.g, c.b) }
func (r *renderer) setFill(c rgb) { r.doc.SetFillColor(c.r, c.g, c.b) }
func (r *renderer) setDraw(c rgb) { r.doc.SetDrawColor(c.r, c.g, c.b) }
