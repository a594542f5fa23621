package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/renderer"
	"github.com/google/subcommands"
)

type mortgageCmd struct {
	summary bool
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "display the mortgage summary and schedule" }
func (*mortgageCmd) Usage() string {
	return `m4 mortgage [-s]

  Displays the mortgage summary, and every payment with its running totals
  and the remaining balance. See 'm4 topic mortgage'.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "s", false, "Display the summary only")
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if a.cfg.LoanAmount.IsZero() {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", finance.ErrNoLoan)
		return subcommands.ExitUsageError
	}
	rows, err := a.loader.Mortgage()
	if err != nil {
		return fail(err)
	}
	m := finance.DeriveMortgage(rows, a.loan())
	md := renderer.MortgageSummaryMarkdown(m)
	if !c.summary {
		md = renderer.MortgageMarkdown(m)
	}
	printMarkdown(md, m.Check())
	return subcommands.ExitSuccess
}

type stocksCmd struct {
	ticker string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "display the performance of each stock" }
func (*stocksCmd) Usage() string {
	return `m4 stocks [-t <ticker>]

  Displays the returns of every ticker of the stock ledger, best daily return
  first, then the ledger itself. See 'm4 topic stocks'.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Restrict the report to a single ticker")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := a.loader.Trades()
	if err != nil {
		return fail(err)
	}
	if c.ticker != "" {
		rows = finance.Trades(rows, c.ticker)
		if len(rows) == 0 {
			fmt.Fprintf(os.Stderr, "Unknown ticker %q\n", c.ticker)
			return subcommands.ExitUsageError
		}
	}
	src, err := a.quotes()
	if err != nil {
		return fail(err)
	}
	quotes, err := finance.LatestQuotes(ctx, src, a.cfg.Currency, finance.Tickers(rows)...)
	if err != nil {
		return fail(err)
	}
	summaries, err := finance.DeriveStocks(rows, quotes)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.StocksMarkdown(summaries)+"\n"+renderer.TradesMarkdown(rows), finance.CheckStocks(summaries))
	return subcommands.ExitSuccess
}

type csaCmd struct{}

func (*csaCmd) Name() string     { return "csa" }
func (*csaCmd) Synopsis() string { return "display the share account lots and returns" }
func (*csaCmd) Usage() string {
	return `m4 csa

  Displays every sell of the share account with what it realized, and the
  open position valued at the latest close. See 'm4 topic csa'.
`
}

func (c *csaCmd) SetFlags(f *flag.FlagSet) {}

func (c *csaCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := a.loader.Lots()
	if err != nil {
		return fail(err)
	}
	q := finance.Quote{Ticker: a.cfg.CSATicker}
	if len(rows) > 0 {
		src, err := a.quotes()
		if err != nil {
			return fail(err)
		}
		if q, err = finance.LatestQuote(ctx, src, a.cfg.CSATicker, a.cfg.Currency); err != nil {
			return fail(err)
		}
	}
	lots := finance.DeriveLots(rows, q)
	printMarkdown(renderer.LotsMarkdown(lots), lots.Check())
	return subcommands.ExitSuccess
}

type salaryCmd struct{}

func (*salaryCmd) Name() string     { return "salary" }
func (*salaryCmd) Synopsis() string { return "display the salary history" }
func (*salaryCmd) Usage() string {
	return `m4 salary

  Displays the latest salary and its growth. See 'm4 topic salary'.
`
}

func (c *salaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *salaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := a.loader.Salary()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SalaryMarkdown(finance.Salary{Rows: rows}))
	return subcommands.ExitSuccess
}
