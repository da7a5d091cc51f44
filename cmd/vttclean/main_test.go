package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"vttclean/internal/logging"
	"vttclean/internal/subtitles"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:01.000 --> 00:00:02.000 align:start position:0%
Hello<00:00:01.500><c> world</c>

00:00:02.000 --> 00:00:03.000 align:start position:0%
Hello world

00:00:03.000 --> 00:00:04.000 align:start position:0%
right &gt;&gt; Second speaker here
`

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// setupCLIEnv isolates HOME and the working directory so no user or
// project configuration leaks into a test.
func setupCLIEnv(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("VTTCLEAN_LOG_LEVEL", "")
	work := filepath.Join(base, "work")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir work: %v", err)
	}
	t.Chdir(work)
	return work
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCleanPrintsTranscript(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.en.vtt", []byte(sampleVTT))

	res := runCLI(t, path)
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "Hello world right\nSecond speaker here\n" {
		t.Fatalf("unexpected stdout %q", res.stdout)
	}
	if res.stderr != "" {
		t.Fatalf("expected quiet stderr, got %q", res.stderr)
	}
}

func TestCleanHeaderOnlyPrintsEmptyLine(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "empty.vtt", []byte("WEBVTT\nKind: captions\nLanguage: en\n"))

	res := runCLI(t, path)
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d", res.code)
	}
	if res.stdout != "\n" {
		t.Fatalf("expected a single newline, got %q", res.stdout)
	}
}

func TestCleanWithoutArgumentPrintsUsage(t *testing.T) {
	setupCLIEnv(t)

	res := runCLI(t)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	if res.stderr != "Usage: vttclean <vtt_file>\n" {
		t.Fatalf("unexpected stderr %q", res.stderr)
	}
	if res.stdout != "" {
		t.Fatalf("expected empty stdout, got %q", res.stdout)
	}
}

func TestCleanMissingFile(t *testing.T) {
	dir := setupCLIEnv(t)
	missing := filepath.Join(dir, "nope.vtt")

	res := runCLI(t, missing)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	if res.stderr != "Error: File not found: "+missing+"\n" {
		t.Fatalf("unexpected stderr %q", res.stderr)
	}
}

func TestCleanInvalidEncodingIsProcessingError(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "bad.vtt", []byte{'W', 'E', 'B', 0xff, '\n'})

	res := runCLI(t, path)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	requireContains(t, res.stderr, "Error processing file: ")
	requireContains(t, res.stderr, subtitles.ErrInvalidEncoding.Error())
}

func TestCleanDirectoryIsProcessingError(t *testing.T) {
	dir := setupCLIEnv(t)

	res := runCLI(t, dir)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	requireContains(t, res.stderr, "Error processing file: ")
}

func TestCleanWritesOutputFile(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))
	target := filepath.Join(dir, "talk.txt")

	res := runCLI(t, path, "--output", target)
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "" {
		t.Fatalf("expected nothing on stdout, got %q", res.stdout)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "Hello world right\nSecond speaker here\n" {
		t.Fatalf("unexpected output file %q", data)
	}
}

func TestCleanStatsJSON(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))

	res := runCLI(t, path, "--stats", "--stats-format", "json")
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	var report statsReport
	if err := json.Unmarshal([]byte(res.stderr), &report); err != nil {
		t.Fatalf("decode stats: %v (%q)", err, res.stderr)
	}
	if report.Source != path {
		t.Fatalf("unexpected source %q", report.Source)
	}
	if report.Stats.TimingLines != 3 || report.Stats.HeaderLines != 3 {
		t.Fatalf("unexpected stats %+v", report.Stats)
	}
	if report.Stats.DuplicateCueLines != 1 || report.Stats.OutputLines != 2 {
		t.Fatalf("unexpected stats %+v", report.Stats)
	}
}

func TestCleanStatsYAML(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))

	res := runCLI(t, path, "--stats", "--stats-format", "yaml")
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	var report statsReport
	if err := yaml.Unmarshal([]byte(res.stderr), &report); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if report.Stats.CueLines != 3 {
		t.Fatalf("unexpected stats %+v", report.Stats)
	}
}

func TestCleanStatsTableFromConfig(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))
	writeFile(t, dir, "vttclean.toml", []byte("[output]\nstats = true\ncolor = \"never\"\n"))

	res := runCLI(t, path)
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	requireContains(t, res.stderr, "== Cleanup stats: "+path+" ==")
	requireContains(t, res.stderr, "Repeated cue lines")
	requireContains(t, res.stderr, "Output lines")
	if strings.Contains(res.stderr, ansiReset) {
		t.Fatalf("expected no color codes, got %q", res.stderr)
	}

	res = runCLI(t, path, "--stats=false")
	if res.stderr != "" {
		t.Fatalf("expected flag to disable stats, got %q", res.stderr)
	}
}

func TestCleanRejectsUnknownStatsFormat(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))

	res := runCLI(t, path, "--stats", "--stats-format", "csv")
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	requireContains(t, res.stderr, "unsupported stats format")
}

func TestCleanDebugLogsGoToStderr(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))

	res := runCLI(t, path, "--log-level", "debug", "--log-format", "json")
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "Hello world right\nSecond speaker here\n" {
		t.Fatalf("expected logs to stay off stdout, got %q", res.stdout)
	}
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(res.stderr), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		if record["msg"] != "vtt cleaned" {
			continue
		}
		found = true
		if record["component"] != "cleaner" || record[logging.FieldSource] != path {
			t.Fatalf("unexpected log fields %v", record)
		}
		if id, _ := record["correlation_id"].(string); id == "" {
			t.Fatalf("expected correlation id, got %v", record)
		}
		if record["output_lines"] != float64(2) {
			t.Fatalf("unexpected output_lines %v", record["output_lines"])
		}
	}
	if !found {
		t.Fatalf("expected debug summary in %q", res.stderr)
	}
}

func TestCleanRejectsBrokenConfig(t *testing.T) {
	dir := setupCLIEnv(t)
	path := writeFile(t, dir, "talk.vtt", []byte(sampleVTT))
	cfgPath := writeFile(t, dir, "broken.toml", []byte("[logging]\nlevel = \"loud\"\n"))

	res := runCLI(t, "--config", cfgPath, path)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	requireContains(t, res.stderr, "load configuration: logging.level")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := setupCLIEnv(t)
	target := filepath.Join(dir, "conf", "vttclean.toml")

	res := runCLI(t, "config", "init", "--path", target)
	if res.code != 0 {
		t.Fatalf("config init: exit %d (%q)", res.code, res.stderr)
	}
	requireContains(t, res.stdout, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	res = runCLI(t, "config", "init", "--path", target)
	if res.code != 1 {
		t.Fatalf("expected second init to fail, got %d", res.code)
	}
	requireContains(t, res.stderr, "already exists")

	res = runCLI(t, "config", "init", "--path", target, "--overwrite")
	if res.code != 0 {
		t.Fatalf("config init --overwrite: exit %d (%q)", res.code, res.stderr)
	}

	res = runCLI(t, "--config", target, "config", "validate")
	if res.code != 0 {
		t.Fatalf("config validate: exit %d (%q)", res.code, res.stderr)
	}
	requireContains(t, res.stdout, "Config path: "+target)
	requireContains(t, res.stdout, "Configuration valid")
}

func TestConfigValidateWithoutFileUsesDefaults(t *testing.T) {
	setupCLIEnv(t)

	res := runCLI(t, "config", "validate")
	if res.code != 0 {
		t.Fatalf("config validate: exit %d (%q)", res.code, res.stderr)
	}
	requireContains(t, res.stdout, "defaults were used")
}

func TestRenderErrorLine(t *testing.T) {
	if got := renderErrorLine("boom", false); got != "boom" {
		t.Fatalf("unexpected plain error %q", got)
	}
	if got := renderErrorLine("boom", true); got != ansiRed+"boom"+ansiReset {
		t.Fatalf("unexpected colored error %q", got)
	}
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("expected buffers never to be colorized")
	}
}
