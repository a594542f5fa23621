package renderer

import (
	"bytes"
	"fmt"

	"github.com/MarcovChain/FlaskFinance/date"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders the last closes of ticker with their moving averages.
//
// sma50 and sma200 are aligned on h, as returned by quote.SMA.
func QuoteMarkdown(ticker string, h *date.History[float64], sma50, sma200 []*float64, last int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Quotes for %s", ticker))
	if h.Len() == 0 {
		doc.PlainText("No quotes.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Close", "SMA 50", "SMA 200"},
	}
	days, closes := h.Days(), h.Series()
	start := max(0, len(days)-last)
	for i := len(days) - 1; i >= start; i-- {
		table.Rows = append(table.Rows, []string{
			days[i].String(),
			fmt.Sprintf("%.2f", closes[i]),
			optional(sma50, i),
			optional(sma200, i),
		})
	}
	doc.Table(table)
	return doc.String()
}

func optional(series []*float64, i int) string {
	if i >= len(series) || series[i] == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *series[i])
}
