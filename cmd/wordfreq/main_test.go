package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordfreq/internal/testsupport"
	"wordfreq/internal/wordcount"
)

type cliTestEnv struct {
	home       *testsupport.Home
	configPath string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	home := testsupport.NewHome(t)
	return &cliTestEnv{
		home:       home,
		configPath: home.ConfigPath(),
		dataDir:    filepath.Join(home.WorkDir, "data"),
	}
}

func (e *cliTestEnv) write(t *testing.T, rel, content string) string {
	t.Helper()
	return testsupport.WriteFile(t, filepath.Join(e.dataDir, rel), content)
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func TestCountFromStdin(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, "The the THE cat")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != " 1. the             3\n 2. cat             1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCountDirectoryAsCSV(t *testing.T) {
	env := setupCLITestEnv(t)
	env.write(t, "a.txt", "a a b")
	env.write(t, "nested/b.txt", "b c c c")
	env.write(t, "nested/LICENSE", "c c c c c c")

	out, _, err := runCLI(t, []string{"-o", "csv", "-I", "LICENSE,README", env.dataDir}, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Rank,Word,Frequency\n1,c,3\n2,a,2\n3,b,2\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFlagsOverrideConfigDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	env.home.WriteConfig(t, "[defaults]\ntop = 1\noutput_format = \"json\"\nno_stopwords = true\n")

	out, _, err := runCLI(t, nil, "the cat cat dog")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != `[{"word":"cat","frequency":2}]`+"\n" {
		t.Fatalf("config defaults not applied: %q", out)
	}

	out, _, err = runCLI(t, []string{"--top", "2", "--no-stopwords=false", "-o", "text"}, "the cat cat dog")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != " 1. cat             2\n 2. dog             1\n" {
		t.Fatalf("flags did not override config: %q", out)
	}
}

func TestMalformedDiscoveredConfigFallsBack(t *testing.T) {
	env := setupCLITestEnv(t)
	env.home.WriteConfig(t, "[defaults\n")

	out, stderr, err := runCLI(t, []string{"-o", "csv"}, "word")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "1,word,1")
	requireContains(t, stderr, "config_parse_failed")

	_, _, err = runCLI(t, []string{"--config", env.configPath}, "word")
	if !errors.Is(err, wordcount.ErrConfiguration) {
		t.Fatalf("expected configuration error for explicit path, got %v", err)
	}
}

func TestLogFlagsOverrideLoggingTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.home.WriteConfig(t, "[logging]\nformat = \"console\"\nlevel = \"error\"\n")

	_, stderr, err := runCLI(t, []string{"--log-format", "json", "--log-level", "info"}, "word")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, stderr, `"msg":"counted stream"`)

	_, _, err = runCLI(t, []string{"--log-format", "xml"}, "word")
	if !errors.Is(err, wordcount.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for log format, got %v", err)
	}
}

func TestInvalidArgumentsAreRejected(t *testing.T) {
	setupCLITestEnv(t)

	for _, args := range [][]string{
		{"--sort", "sideways"},
		{"--output-format", "xml"},
		{"--ignore-words", "(["},
		{"--top", "-3"},
		{"--top", "-1"},
		{"--top=-1"},
	} {
		_, _, err := runCLI(t, args, "text")
		if !errors.Is(err, wordcount.ErrInvalidArgument) {
			t.Fatalf("args %v: expected invalid argument, got %v", args, err)
		}
	}
}

func TestNegativeTopFromConfigIsRejected(t *testing.T) {
	env := setupCLITestEnv(t)
	env.home.WriteConfig(t, "[defaults]\ntop = -1\n")

	_, _, err := runCLI(t, nil, "text")
	if !errors.Is(err, wordcount.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for top = -1 in config, got %v", err)
	}
}

func TestNoValidSources(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, []string{filepath.Join(env.dataDir, "missing.txt")}, "")
	if !errors.Is(err, wordcount.ErrNoValidSources) {
		t.Fatalf("expected no valid sources, got %v", err)
	}
	requireContains(t, stderr, "path skipped")
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "init"}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(env.configPath); err != nil {
		t.Fatalf("expected config file at %s: %v", env.configPath, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init"}, ""); err == nil {
		t.Fatal("expected init to refuse to overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "# source: "+env.configPath)
	requireContains(t, out, "sort = 'desc'")
	requireContains(t, out, "output_format = 'text'")
}
