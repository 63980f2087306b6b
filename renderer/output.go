package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/thirteenf"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Terminal prints a markdown document styled for a terminal.
// style is a glamour standard style name, "auto" detects the terminal
// background.
func Terminal(w io.Writer, markdown, style string, width int) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("cannot create terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// HTML converts a markdown document into an HTML fragment.
func HTML(w io.Writer, markdown string) error {
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return nil
}

const (
	holdingsSheet = "Holdings"
	summarySheet  = "Summary"
)

// XLSX writes the report as an Excel workbook: one "Holdings" sheet with
// the rows and a "Summary" sheet with the firm statistics.
func XLSX(w io.Writer, f *thirteenf.Firm, rows []Row) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", holdingsSheet); err != nil {
		return err
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := book.SetSheetRow(holdingsSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		h := r.Holding
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			h.IssuerName(),
			h.ShareClass(),
			h.CUSIP(),
			h.MarketValue(),
			h.Shares(),
			r.PerShare.Decimal().InexactFloat64(),
			float64(r.Percent),
			h.Discretion(),
			h.VotingSole(),
			string(h.Instrument()),
		}
		if err := book.SetSheetRow(holdingsSheet, cell, &values); err != nil {
			return err
		}
	}

	// two decimals on the price and percent columns.
	style, err := book.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := book.SetCellStyle(holdingsSheet, "F2", fmt.Sprintf("G%d", len(rows)+1), style); err != nil {
			return err
		}
	}
	if err := book.SetColWidth(holdingsSheet, "A", "A", 32); err != nil {
		return err
	}

	if _, err := book.NewSheet(summarySheet); err != nil {
		return err
	}
	s := f.Stats()
	summary := [][]any{
		{"Firm", s.Name},
		{"Total Firm AUM", f.TotalMarketValue()},
		{"Unique Positions", s.UniquePosition},
		{"Total Positions", s.TotalPosition},
	}
	for i, line := range summary {
		if err := book.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &line); err != nil {
			return err
		}
	}

	if _, err := book.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// jsonReport is the JSON document written by JSON.
type jsonReport struct {
	Firm            string    `json:"firm"`
	TotalValue      int64     `json:"totalValue"`
	UniquePositions int       `json:"uniquePositions"`
	TotalPositions  int       `json:"totalPositions"`
	Holdings        []jsonRow `json:"holdings"`
}

type jsonRow struct {
	Holding  thirteenf.Holding `json:"holding"`
	PerShare float64           `json:"perShare"`
	Percent  float64           `json:"percentOfPortfolio"`
}

// JSON writes the firm statistics and the rows as an indented JSON document.
func JSON(w io.Writer, f *thirteenf.Firm, rows []Row) error {
	report := jsonReport{
		Firm:            f.Name(),
		TotalValue:      f.TotalMarketValue(),
		UniquePositions: f.UniquePositionCount(),
		TotalPositions:  f.TotalPositionCount(),
		Holdings:        make([]jsonRow, 0, len(rows)),
	}
	for _, r := range rows {
		report.Holdings = append(report.Holdings, jsonRow{
			Holding:  r.Holding,
			PerShare: r.PerShare.Decimal().InexactFloat64(),
			Percent:  float64(r.Percent),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
