package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/MarcovChain/FlaskFinance"
	md "github.com/nao1215/markdown"
)

// LotsMarkdown renders the sells of the share account, and its full ledger.
func LotsMarkdown(l *finance.Lots) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Share Account (%s)", l.Quote.Ticker))
	if len(l.Lines) == 0 {
		doc.PlainText("No share account transactions.")
		return doc.String()
	}
	if open, ok := l.Open(); ok {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{md.Bold(fmt.Sprintf("Value on %s", open.Date)), md.Bold(open.Proceeds.String())},
			Rows: [][]string{
				{"Last Close", l.Quote.Price.String()},
				{"Unrealized Profit", open.Profit.SignedString()},
				{"Realized Profit", l.Realized().SignedString()},
			},
		})
	}

	doc.H2("Sells")
	sells := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Days", "Type", "ACB/Share", "Shares", "ACB", "Proceeds", "Profit", "Return", "Daily Return"},
	}
	for _, s := range l.Sells {
		typ := string(s.Type)
		if s.Synthetic {
			typ = md.Italic(typ)
		}
		perShare := "-"
		if s.ACBPerShare != nil {
			perShare = s.ACBPerShare.String()
		}
		sells.Rows = append(sells.Rows, []string{
			s.Date.String(),
			fmt.Sprint(s.Days),
			typ,
			perShare,
			s.Shares.String(),
			s.ACB.String(),
			s.Proceeds.String(),
			s.Profit.SignedString(),
			s.Return.SignedString(),
			s.DailyReturn.SignedString(),
		})
	}
	doc.Table(sells)

	doc.H2("Ledger")
	ledger := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Shares", "ACB", "Proceeds", "Price", "Profit", "Return"},
	}
	for _, line := range l.Lines {
		ledger.Rows = append(ledger.Rows, []string{
			line.Date.String(),
			string(line.Type),
			line.Shares.String(),
			line.ACB.String(),
			line.Proceeds.String(),
			line.Price.String(),
			line.Profit.SignedString(),
			line.Return.SignedString(),
		})
	}
	doc.Table(ledger)
	return doc.String()
}
