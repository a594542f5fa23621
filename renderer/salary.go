package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/MarcovChain/FlaskFinance"
	md "github.com/nao1215/markdown"
)

// SalaryMarkdown renders the salary history.
func SalaryMarkdown(s finance.Salary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Salary")
	latest, ok := s.Latest()
	if !ok {
		doc.PlainText("No salary entries.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Latest (" + latest.Date.String() + ")"), md.Bold(latest.Amount.String())},
		Rows: [][]string{
			{"Growth", s.Growth().SignedString()},
			{"Period", period(s)},
		},
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Type", "Amount"},
	}
	for _, r := range s.Rows {
		table.Rows = append(table.Rows, []string{r.Date.String(), r.Type, r.Amount.String()})
	}
	doc.Table(table)
	return doc.String()
}

// period is the span of the history, in years.
func period(s finance.Salary) string {
	r, ok := s.Range()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%.1f years)", r, float64(r.Days())/365)
}
