package renderer

import (
	"bytes"

	finance "github.com/MarcovChain/FlaskFinance"
	md "github.com/nao1215/markdown"
)

// MortgageSummaryMarkdown renders the summary of the mortgage.
func MortgageSummaryMarkdown(m *finance.Mortgage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := m.Summary
	doc.H1("Mortgage")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Loan"),
			md.Bold(m.Loan.String()),
		},
		Rows: [][]string{
			{"Total Payments", s.TotalPayments.String()},
			{"Total Extra", s.TotalExtra.String()},
			{"Total Principal", s.TotalPrincipal.String()},
			{"Principal %", s.PrincipalPct.String()},
			{"Total Interest", s.TotalInterest.String()},
			{"Interest %", s.InterestPct.String()},
			{md.Bold("Remaining Balance"), md.Bold(s.RemainingBalance.String())},
			{"Paid Off", m.Paid().String()},
		},
	})
	return doc.String()
}

// MortgageMarkdown renders the summary and the whole schedule of the mortgage.
func MortgageMarkdown(m *finance.Mortgage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText(MortgageSummaryMarkdown(m))

	if len(m.Lines) > 0 {
		doc.H2("Schedule")
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
			},
			Header: []string{
				"Date", "Type", "Principal", "Interest", "Principal %", "Principal Total", "Interest %", "Interest Total", "Balance",
			},
		}
		for _, l := range m.Lines {
			table.Rows = append(table.Rows, []string{
				l.Date.String(),
				string(l.Type),
				l.Principal.String(),
				l.Interest.String(),
				l.PrincipalPct.String(),
				l.PrincipalTotal.String(),
				l.InterestPct.String(),
				l.InterestTotal.String(),
				l.Balance.String(),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
