package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	tmp, err := os.MkdirTemp("", "gocefrizer-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "gocefrizer")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs gocefrizer with the given args and optional stdin.
func runBinary(t *testing.T, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func TestE2E_NoArgs_PrintsUsage(t *testing.T) {
	_, stderr, code := runBinary(t, "")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "Usage: gocefrizer") {
		t.Errorf("missing usage in stderr: %q", stderr)
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, _, code := runBinary(t, "", "version")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout, "gocefrizer ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestE2E_UnknownCommand(t *testing.T) {
	_, stderr, code := runBinary(t, "", "frobnicate")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestE2E_AnalyzeArgs_JSON(t *testing.T) {
	stdout, stderr, code := runBinary(t, "", "analyze", "-o", "json",
		"The cat sat on the mat. The dog ran in the park.")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON output: %v (%q)", err, stdout)
	}
	if result["CEFR-J_Level"] == "" {
		t.Errorf("missing CEFR-J_Level in %v", result)
	}
}

func TestE2E_AnalyzeStdin(t *testing.T) {
	stdout, stderr, code := runBinary(t,
		"The cat sat on the mat. The dog ran in the park.", "analyze")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}
	if !strings.Contains(stdout, "CEFR-J level:") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestE2E_AnalyzeShortText_Fails(t *testing.T) {
	_, stderr, code := runBinary(t, "", "analyze", "Too short to analyze.")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "words") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestE2E_AnalyzeSingleWord(t *testing.T) {
	stdout, stderr, code := runBinary(t, "", "analyze", "paradigm")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}
	if !strings.Contains(stdout, "C1") {
		t.Errorf("stdout = %q, want C1 lookup", stdout)
	}
}

func TestE2E_AnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.md")
	content := "# Sample\n\nThe cat sat on the mat. The dog ran in the park.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runBinary(t, "", "analyze", "--file", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}
	if !strings.Contains(stdout, "CEFR-J level:") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestE2E_Word(t *testing.T) {
	stdout, stderr, code := runBinary(t, "", "word", "-o", "json", "paradigm")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result["CEFR_Level"] != "C1" {
		t.Errorf("CEFR_Level = %q, want C1", result["CEFR_Level"])
	}
}

func TestE2E_Word_LevelCheck(t *testing.T) {
	stdout, stderr, code := runBinary(t, "", "word", "-o", "json", "-l", "B1", "paradigm")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result["Within_Level"] != "false" {
		t.Errorf("Within_Level = %q, want false", result["Within_Level"])
	}

	stdout, stderr, code = runBinary(t, "", "word", "-l", "C2", "paradigm")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}
	if !strings.Contains(stdout, "Within level: true") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestE2E_Word_InvalidCheckLevel(t *testing.T) {
	_, stderr, code := runBinary(t, "", "word", "-l", "A7", "paradigm")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "invalid CEFR level") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestE2E_Word_NoArg(t *testing.T) {
	_, _, code := runBinary(t, "", "word")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestE2E_Unused_RequiresLevel(t *testing.T) {
	_, stderr, code := runBinary(t, "", "unused", "The cat sat on the mat.")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "--level") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestE2E_Rank(t *testing.T) {
	dir := t.TempDir()
	text := "The cat sat on the mat. The dog ran in the park."
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runBinary(t, "", "rank", "-o", "json",
		"--base-dir", dir, "**/*.txt")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v (%q)", err, stdout)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2", len(rows))
	}
}

func TestE2E_Metrics(t *testing.T) {
	stdout, stderr, code := runBinary(t, "", "metrics")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr)
	}
	for _, name := range []string{"AvrDiff", "BperA", "ARI", "LenNP"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("metrics listing missing %s: %q", name, stdout)
		}
	}
}

func TestE2E_Init(t *testing.T) {
	dir := t.TempDir()
	cmd := exec.Command(binaryPath, "init")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".gocefrizer.yml")); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// Second init refuses to overwrite.
	cmd = exec.Command(binaryPath, "init")
	cmd.Dir = dir
	if err := cmd.Run(); err == nil {
		t.Error("second init should fail")
	}
}
