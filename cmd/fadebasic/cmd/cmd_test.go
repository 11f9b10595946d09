package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	"github.com/cdhanna/fadebasic-sub000/pkg/core/config"
)

// execute runs the root command with fresh flag values and no config file
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv("HOME", t.TempDir())

	cfgFile, verbose = "", false
	tokenizeComments, parseRecover = false, false
	checkWatch, checkRecover = false, false
	commandsPrefix = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, "a.fbasic", "x = 1 ` note")

	out, _, err := execute(t, "tokenize", "--comments", path)
	if err != nil {
		t.Fatalf("tokenize error = %v", err)
	}
	for _, want := range []string{"1:1 VARIABLE_GENERAL(x)", "1:5 LITERAL_INT(1)", "COMMENT(note)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, "a.fbasic", "x = 1\nprint x")

	out, _, err := execute(t, "parse", path)
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if out != "(= x 1)\n(call \"print\" x)\n" {
		t.Errorf("output = %q", out)
	}
}

func TestParseRecover(t *testing.T) {
	path := writeFile(t, "a.fbasic", "x = \ny = 2")

	out, stderr, err := execute(t, "parse", "--recover", path)
	if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Fatalf("parse error = %v, want %v", err, mdwerror.CodeSyntax)
	}
	if out != "(error 0100)\n(= y 2)\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(stderr, "error[0100]") || !strings.Contains(stderr, "1 error") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantCode mdwerror.Code
		wantExit int
		want     string
	}{
		{"clean", "x = 1", "", 0, "no problems found"},
		{"syntax", "if x then\nprint x", mdwerror.CodeSyntax, 2, "error[0105]"},
		{"symbol", "goto nowhere", mdwerror.CodeSymbol, 3, "error[0300]"},
		{"semantic", "top:\ntop:", mdwerror.CodeSemantic, 3, "error[0200]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "a.fbasic", tt.source)
			out, _, err := execute(t, "check", path)

			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("check error = %v", err)
				}
				return
			}
			var rep *ReportedError
			if !errors.As(err, &rep) {
				t.Errorf("check error = %v, want a reported error", err)
			}
			if got := mdwerror.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
			if got := mdwerror.GetCode(err).ExitCode(); got != tt.wantExit {
				t.Errorf("exit code = %d, want %d", got, tt.wantExit)
			}
		})
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.fbasic"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Fatalf("check error = %v, want %v", err, mdwerror.CodeNotFound)
	}
	var rep *ReportedError
	if errors.As(err, &rep) {
		t.Error("a missing file has no diagnostics to report")
	}
}

func TestCommandsPrefix(t *testing.T) {
	out, _, err := execute(t, "commands", "--prefix", "WAIT")
	if err != nil {
		t.Fatalf("commands error = %v", err)
	}
	if !strings.Contains(out, "wait key()") || !strings.Contains(out, "wait(ms integer)") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "print") {
		t.Errorf("prefix filter leaked other commands: %q", out)
	}
	// descriptions line up two columns after the longest signature
	if !strings.Contains(out, "wait key()"+strings.Repeat(" ", 8)) {
		t.Errorf("descriptions not aligned: %q", out)
	}
}

func TestConfigCommandFiles(t *testing.T) {
	dir := t.TempDir()
	vocab := `
[[command]]
name = "draw box"
description = "Draws a box."
  [[command.args]]
  name = "x"
  type = "integer"
`
	if err := os.WriteFile(filepath.Join(dir, "gfx.toml"), []byte(vocab), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "fadebasic.yaml")
	if err := os.WriteFile(cfgPath, []byte("commands:\n  files: [gfx.toml]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", cfgPath, "commands", "--prefix", "draw")
	if err != nil {
		t.Fatalf("commands error = %v", err)
	}
	if !strings.Contains(out, "draw box(x integer)") || !strings.Contains(out, "Draws a box.") {
		t.Errorf("output = %q", out)
	}

	src := writeFile(t, "a.fbasic", "draw box 10")
	out, _, err = execute(t, "--config", cfgPath, "parse", src)
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if out != "(call \"draw box\" 10)\n" {
		t.Errorf("output = %q", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "fadebasic.toml", "[general]\nlog_level = \"loud\"\n")

	_, _, err := execute(t, "--config", cfgPath, "version")
	if got := mdwerror.GetCode(err); got != mdwerror.CodeInvalidConfig {
		t.Fatalf("code = %v, want %v (err %v)", got, mdwerror.CodeInvalidConfig, err)
	}
	if mdwerror.GetCode(err).ExitCode() != 4 {
		t.Errorf("exit code = %d, want 4", mdwerror.GetCode(err).ExitCode())
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "fadebasic ") || !strings.Contains(out, "OS/Arch:") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.fbasic"), []byte("x = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.fb"), []byte("goto nowhere"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("goto"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "check", dir)
	if got := mdwerror.GetCode(err); got != mdwerror.CodeSymbol {
		t.Fatalf("code = %v, want %v (err %v)", got, mdwerror.CodeSymbol, err)
	}
	for _, want := range []string{"a.fbasic: no problems found", "b.fb:1:1: error[0300]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "readme.txt") {
		t.Errorf("non-source file checked:\n%s", out)
	}
}

func TestCheckWatchTakesOneFile(t *testing.T) {
	a := writeFile(t, "a.fbasic", "x = 1")
	b := writeFile(t, "b.fbasic", "x = 2")

	_, _, err := execute(t, "check", "--watch", a, b)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("check error = %v, want %v", err, mdwerror.CodeInvalidInput)
	}
}
