package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/MarcovChain/FlaskFinance"
	md "github.com/nao1215/markdown"
)

// StocksMarkdown renders the performance of every ticker, best daily return first.
func StocksMarkdown(summaries []finance.StockSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stocks")
	if len(summaries) == 0 {
		doc.PlainText("No stock transactions.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Ticker", "Buy Date", "Years Held", "Book Value", "Current Value", "Total Gain", "Capital Gain", "Dividend Gain", "Capital Return", "Total Return", "Daily Return",
		},
	}
	var book, current, gain finance.Money
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.Ticker,
			s.BuyDate.String(),
			fmt.Sprintf("%.2f", s.YearsHeld),
			s.BookValue.String(),
			s.CurrentValue.String(),
			s.TotalGain.SignedString(),
			s.CapitalGain.SignedString(),
			s.DividendGain.String(),
			s.CapitalReturn.SignedString(),
			s.TotalReturn.SignedString(),
			s.DailyReturn.SignedString(),
		})
		book, current, gain = book.Add(s.BookValue), current.Add(s.CurrentValue), gain.Add(s.TotalGain)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", md.Bold(book.String()), md.Bold(current.String()), md.Bold(gain.SignedString()), "", "", "", "", "",
	})
	doc.Table(table)
	return doc.String()
}

// TradesMarkdown renders the stock transactions in file order.
func TradesMarkdown(rows []finance.TradeRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Transactions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Date", "Type", "Number", "Price", "Total"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Ticker,
			r.Date.String(),
			string(r.Type),
			r.Number.String(),
			r.Price.String(),
			r.Total.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
