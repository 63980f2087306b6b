// Package renderer formats a firm portfolio as a report: a markdown document
// that can be printed on a terminal or converted to HTML, an Excel workbook,
// or a JSON document.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/thirteenf"
	md "github.com/nao1215/markdown"
	"github.com/samber/lo"
)

// Columns are the report columns, in order.
var Columns = []string{
	"Company Name", "Share Class", "CUSIP", "Market Value", "Shares",
	"Per Share", "% of Portfolio", "Discretion", "Sole Voting", "Instrument",
}

// Row is a holding with the metrics derived from its firm.
type Row struct {
	Holding  thirteenf.Holding
	PerShare thirteenf.Money
	Percent  thirteenf.Percent
}

// Rows computes the report rows of the firm's largest holdings. A limit lower
// or equal to zero selects all the holdings.
func Rows(f *thirteenf.Firm, limit int) ([]Row, error) {
	holdings := f.Holdings()
	if limit > 0 && limit < len(holdings) {
		holdings = holdings[:limit]
	}
	rows := make([]Row, 0, len(holdings))
	for _, h := range holdings {
		perShare, err := h.PricePerShare()
		if err != nil {
			return nil, err
		}
		pct, err := f.PercentOfPortfolio(h)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Holding: h, PerShare: perShare, Percent: pct})
	}
	return rows, nil
}

// cells returns the row as text, in Columns order.
func (r Row) cells() []string {
	h := r.Holding
	return []string{
		h.IssuerName(),
		h.ShareClass(),
		h.CUSIP(),
		h.Value().String(),
		strconv.FormatInt(h.Shares(), 10),
		r.PerShare.String(),
		r.Percent.String(),
		h.Discretion(),
		strconv.FormatInt(h.VotingSole(), 10),
		string(h.Instrument()),
	}
}

// Markdown renders the firm report: the holdings table followed by the
// summary statistics and the top holding.
func Markdown(f *thirteenf.Firm, rows []Row) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s 13F Holdings", f.Name()))
	if len(rows) < f.TotalPositionCount() {
		doc.PlainText(fmt.Sprintf("Top %d of %d positions by market value.", len(rows), f.TotalPositionCount()))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: Columns,
		Rows:   lo.Map(rows, func(r Row, _ int) []string { return r.cells() }),
	}
	doc.Table(table)

	writeSummary(doc, f)
	return doc.String()
}

// SummaryMarkdown renders the firm statistics and its top holding.
func SummaryMarkdown(f *thirteenf.Firm) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(f.Name())
	writeSummary(doc, f)
	return doc.String()
}

func writeSummary(doc *md.Markdown, f *thirteenf.Firm) {
	s := f.Stats()
	doc.H2("Summary")
	doc.BulletList(
		fmt.Sprintf("%s %s", md.Bold("Total Firm AUM:"), s.TotalValue),
		fmt.Sprintf("%s %d", md.Bold("Unique Positions:"), s.UniquePosition),
		fmt.Sprintf("%s %d", md.Bold("Total Positions:"), s.TotalPosition),
	)

	top, err := f.TopHolding()
	if err != nil {
		// an empty filing has no top holding, the summary says it all.
		return
	}
	doc.H2("Top Holding")
	doc.BulletList(holdingDetails(top)...)
}

// holdingDetails lists the fields of a holding as "label: value" items.
func holdingDetails(h thirteenf.Holding) []string {
	return lo.Map(h.Details(), func(d thirteenf.Detail, _ int) string {
		return fmt.Sprintf("%s %s", md.Bold(d.Label+":"), d.Value)
	})
}

// HoldingsMarkdown renders the details of each holding, typically the
// holdings sharing a CUSIP.
func HoldingsMarkdown(f *thirteenf.Firm, holdings []thirteenf.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	for _, h := range holdings {
		doc.H2(fmt.Sprintf("%s %s", h.IssuerName(), h.ShareClass()))
		details := holdingDetails(h)
		if pct, err := f.PercentOfPortfolio(h); err == nil {
			details = append(details, fmt.Sprintf("%s %s", md.Bold("% of Portfolio:"), pct))
		}
		doc.BulletList(details...)
	}
	return doc.String()
}
