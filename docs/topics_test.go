package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in docs/readme.md can be successfully loaded by the m4 topic <topic_name> command.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is present in the list of topics extracted from docs/readme.md.

	// Read docs/readme.md line by line and extract topics using regex.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	// Check 1: Every topic listed in docs/readme.md can be successfully loaded.
	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := GetTopic(topic)
			if err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	// Check 2: Every .md file in the docs directory (excluding readme.md itself) is present in the list of topics extracted from docs/readme.md.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}

	var mdFiles []string
	for _, file := range files {
		base := filepath.Base(file)
		if base != "readme.md" {
			mdFiles = append(mdFiles, strings.TrimSuffix(base, ".md"))
		}
	}

	for _, mdFile := range mdFiles {
		found := false
		for _, topic := range topicsInReadme {
			if topic == mdFile {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", mdFile)
		}
	}
}

// TestLedgerBlocks loads every ledger example of the documentation.
func TestLedgerBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	loads := map[string]func(*finance.Loader) error{
		finance.MortgageFile: func(l *finance.Loader) error { _, err := l.Mortgage(); return err },
		finance.StocksFile:   func(l *finance.Loader) error { _, err := l.Trades(); return err },
		finance.CSAFile:      func(l *finance.Loader) error { _, err := l.Lots(); return err },
		finance.SalaryFile:   func(l *finance.Loader) error { _, err := l.Salary(); return err },
	}

	count := 0
	for _, file := range files {
		for _, block := range parseMarkdown(t, file) {
			load, ok := loads[block.File]
			if !ok {
				t.Errorf("%s:%d: unknown ledger %q", file, block.Line, block.File)
				continue
			}
			l := &finance.Loader{
				FS:       fstest.MapFS{block.File: {Data: []byte(block.Content)}},
				Currency: "CAD",
			}
			if err := load(l); err != nil {
				t.Errorf("%s:%d: %v", file, block.Line, err)
			}
			count++
		}
	}
	if count != len(loads) {
		t.Errorf("found %d ledger examples want %d", count, len(loads))
	}
}

// HELPER

// Block represents a ledger example, a fenced code block of type "csv <file>".
type Block struct {
	File    string
	Content string
	Line    int
}

// parseMarkdown parses a markdown file and returns its ledger examples.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang, name, _ := strings.Cut(string(fcb.Info.Segment.Value(content)), " ")
		if lang != "csv" {
			return ast.WalkContinue, nil
		}

		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			File:    strings.TrimSpace(name),
			Content: blockContent.String(),
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an AST offset, the markdown parser
// does not keep track of it.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"config", "csa", "dashboard", "mortgage", "quotes", "salary", "stocks"}
	if strings.Join(topics, ",") != strings.Join(want, ",") {
		t.Errorf("GetAllTopics() = %v want %v", topics, want)
	}
	if Exists("nowhere") || !Exists("csa") {
		t.Error("Exists() does not match the embedded topics")
	}
	if _, err := GetTopic("nowhere"); err == nil {
		t.Error("GetTopic(nowhere) must fail")
	}
}
