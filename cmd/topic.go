package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MarcovChain/FlaskFinance/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
	raw  bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the m4 manual" }
func (*topicCmd) Usage() string {
	return `m4 topic [-l] [-raw] [<topic>...|'*']

  Prints the manual pages: how each ledger is laid out, how to configure m4,
  and what the dashboard serves. Without a topic it prints the table of
  contents.

  'm4 topic -l' lists the topic names, one per line.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topic names")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	all, err := docs.GetAllTopics()
	if err != nil {
		return fail(err)
	}
	if c.list {
		fmt.Println(strings.Join(all, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}
	for _, t := range topics {
		if t != "*" && !docs.Exists(t) {
			fmt.Fprintf(os.Stderr, "Unknown topic %q, want one of: %s\n", t, strings.Join(all, ", "))
			return subcommands.ExitUsageError
		}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(err)
	}
	if c.raw {
		fmt.Print(doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
