package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/muaina/reportpdf"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Story  []reportpdf.Block
	Writer io.Writer
	Config Config
}

// creationDate is fixed so that identical input yields identical bytes.
var creationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render paginates a block list into a PDF document.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if !isCoreFont(cfg.FontFamily) {
		return fmt.Errorf("pdf render: core font family required (got %q)", cfg.FontFamily)
	}

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(true, cfg.Margin)
	doc.SetCompression(cfg.Compress)
	doc.SetCreationDate(creationDate)
	doc.SetTitle("Muaina Pathology Report", true)
	doc.AddPage()
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: setup failed: %w", err)
	}

	r := renderer{
		doc: doc,
		cfg: cfg,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
	for _, block := range req.Story {
		r.block(block)
	}
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

type renderer struct {
	doc *fpdf.Fpdf
	cfg Config
	tr  func(string) string
}

func (r *renderer) block(b reportpdf.Block) {
	switch b.Kind {
	case reportpdf.BlockParagraph:
		r.paragraph(b)
	case reportpdf.BlockTable:
		r.table(b)
	case reportpdf.BlockSpacer:
		r.doc.Ln(b.Height)
	case reportpdf.BlockRule:
		r.rule(b)
	case reportpdf.BlockPageBreak:
		r.doc.AddPage()
	}
}

func (r *renderer) paragraph(b reportpdf.Block) {
	st := b.Style
	if st.Leading <= 0 {
		st.Leading = st.Size * 1.2
	}
	if st.SpaceBefore > 0 {
		r.doc.Ln(st.SpaceBefore)
	}
	if st.Indent > 0 {
		r.doc.SetLeftMargin(r.cfg.Margin + st.Indent)
		r.doc.SetX(r.cfg.Margin + st.Indent)
	}
	r.setTextColor(st.Color)
	if b.BoldPrefix != "" {
		r.doc.SetFont(r.cfg.FontFamily, "B", st.Size)
		prefix := r.text(b.BoldPrefix)
		r.doc.CellFormat(r.doc.GetStringWidth(prefix), st.Leading, prefix, "", 0, "L", false, 0, "")
	}
	r.doc.SetFont(r.cfg.FontFamily, fontStyle(st.Bold), st.Size)
	r.doc.MultiCell(0, st.Leading, r.text(b.Text), "", "L", false)
	if st.Indent > 0 {
		r.doc.SetLeftMargin(r.cfg.Margin)
		r.doc.SetX(r.cfg.Margin)
	}
	if st.SpaceAfter > 0 {
		r.doc.Ln(st.SpaceAfter)
	}
}

func (r *renderer) table(b reportpdf.Block) {
	st := b.Style
	for _, row := range b.Rows {
		r.doc.SetFont(r.cfg.FontFamily, "B", st.Size)
		r.setTextColor(st.Color)
		r.doc.CellFormat(b.KeyWidth, st.Leading, r.text(row.Key), "", 0, "L", false, 0, "")
		r.doc.SetFont(r.cfg.FontFamily, "", st.Size)
		r.setTextColor(row.Color)
		r.doc.MultiCell(b.ValWidth, st.Leading, r.text(row.Value), "", "L", false)
		if b.Height > 0 {
			r.doc.Ln(b.Height)
		}
	}
}

func (r *renderer) rule(b reportpdf.Block) {
	c := b.Style.Color
	r.doc.SetDrawColor(c.R, c.G, c.B)
	r.doc.SetLineWidth(b.Height)
	pageW, _ := r.doc.GetPageSize()
	y := r.doc.GetY() + b.Height/2
	r.doc.Line(r.cfg.Margin, y, pageW-r.cfg.Margin, y)
	r.doc.SetY(y + b.Height/2)
}

func (r *renderer) setTextColor(c reportpdf.Color) {
	r.doc.SetTextColor(c.R, c.G, c.B)
}

func (r *renderer) text(s string) string {
	return r.tr(glyphFallbacks.Replace(s))
}
