package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// writeExtension writes an m4-<name> shell script in a folder added to PATH.
func writeExtension(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m4-"+name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

// unsetenv removes keys from the environment until the test ends.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestRunExtension(t *testing.T) {
	dir := writeExtension(t, "hello", `
echo "$M4_DATA_DIR|$M4_LOAN_AMOUNT|$M4_CSA_TICKER|$M4_CURRENCY|$M4_VERBOSE|$1" > "$(dirname "$0")/out"
`)
	cwd := t.TempDir()
	t.Chdir(cwd)
	unsetenv(t, "M4_DATA_DIR", "M4_LOAN_AMOUNT", "M4_CSA_TICKER", "M4_CURRENCY")
	dotenv := "M4_LOAN_AMOUNT=250000\nM4_DATA_DIR=/ledgers\nM4_CURRENCY=usd\n"
	if err := os.WriteFile(filepath.Join(cwd, ".env"), []byte(dotenv), 0644); err != nil {
		t.Fatal(err)
	}
	resetFlags(t)
	*csaTicker, *currency = "SU.TO", "EUR"

	found, code := RunExtension("hello", []string{"world"})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d want true, 0", found, code)
	}
	out, err := os.ReadFile(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(string(out)), "/ledgers|250000|SU.TO|EUR|false|world"; got != want {
		t.Errorf("extension saw %q want %q", got, want)
	}
}

func TestRunExtension_InvalidConfig(t *testing.T) {
	writeExtension(t, "hello", "exit 0\n")
	t.Chdir(t.TempDir())
	resetFlags(t)
	*loan = "a lot"
	if found, code := RunExtension("hello", nil); !found || code != int(subcommands.ExitUsageError) {
		t.Errorf("RunExtension() = %v, %d want true, %d", found, code, subcommands.ExitUsageError)
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	writeExtension(t, "broken", "exit 3\n")
	t.Chdir(t.TempDir())
	if found, code := RunExtension("broken", nil); !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d want true, 3", found, code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	if found, _ := RunExtension("does-not-exist-anywhere", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
