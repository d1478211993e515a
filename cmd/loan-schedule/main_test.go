package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"go.uber.org/zap"
)

const testConfig = `
logging:
  level: error
output:
  format: pretty
locale: en
loans:
  - name: Mortgage
    principal: 1200
    fixedRate: 12
    term: 12
    method: FixedPayment
    startDate: "2025-01-15"
  - name: Car
    principal: 600
    fixedRate: 6
    term: 6
    method: Balloon
    startDate: "2025-01-15"
`

// runCLI executes the root command with args against a temporary config.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIWithConfig(t, testConfig, args...)
}

func runCLIWithConfig(t *testing.T, conf string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(conf), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	scheduleFormat, exportFormat, exportDir, nowOverride, logLevel = "", "", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path, "--now", "2025-04-20"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveNow(t *testing.T) {
	clock := func() time.Time { return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC) }

	got, err := resolveNow("", clock)
	if err != nil || got.Year() != 2030 {
		t.Fatalf("resolveNow(\"\") = %v, %v", got, err)
	}
	got, err = resolveNow("2025-07-15", clock)
	if err != nil || got.Month() != time.July || got.Day() != 15 {
		t.Fatalf("resolveNow(2025-07-15) = %v, %v", got, err)
	}
	if _, err := resolveNow("tomorrow", clock); err == nil {
		t.Fatal("resolveNow(tomorrow) expected error")
	}
}

func TestScheduleCommand(t *testing.T) {
	out, err := runCLI(t, "schedule")
	if err != nil {
		t.Fatalf("schedule failed: %v\n%s", err, out)
	}
	for _, want := range []string{"--- Mortgage ---", "--- Car ---", "Months Left (approx):", "2025-05-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("schedule output missing %q:\n%s", want, out)
		}
	}
}

func TestScheduleCommandByName(t *testing.T) {
	out, err := runCLI(t, "schedule", "car")
	if err != nil {
		t.Fatalf("schedule failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "Mortgage") || !strings.Contains(out, "--- Car ---") {
		t.Errorf("expected only the Car loan:\n%s", out)
	}

	if _, err := runCLI(t, "schedule", "boat"); err == nil {
		t.Error("expected error for unknown loan name")
	}
}

func TestScheduleCommandCSV(t *testing.T) {
	out, err := runCLI(t, "schedule", "--format", "csv", "Mortgage")
	if err != nil {
		t.Fatalf("schedule failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "# Mortgage\nMonth,Due Date,Interest,Principal,Total,Balance\n1,2025-02-15,12.00,94.62,106.62,1105.38\n") {
		t.Errorf("unexpected CSV output:\n%s", out)
	}
}

func TestScheduleCommandInvalidConfigFormat(t *testing.T) {
	conf := strings.Replace(testConfig, "format: pretty", "format: json", 1)
	out, err := runCLIWithConfig(t, conf, "schedule")
	if err != nil {
		t.Fatalf("schedule failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "--- Mortgage ---") {
		t.Errorf("expected pretty output, got:\n%s", out)
	}

	if _, err := runCLIWithConfig(t, conf, "schedule", "--format", "json"); err == nil {
		t.Error("expected error for explicit json format")
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, "compare")
	if err != nil {
		t.Fatalf("compare failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "--- Comparison Chart ---") || !strings.Contains(out, "█") {
		t.Errorf("compare output missing chart:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "export", "--format", "xlsx", "--dir", dir)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	for _, name := range []string{"Mortgage_schedule.xlsx", "Car_schedule.xlsx"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	if _, err := runCLI(t, "export", "--format", "pretty", "--dir", dir); err == nil {
		t.Error("expected error for pretty export format")
	}
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	b := book.New(zap.NewNop())
	b.Add(book.Input{Name: "a/b", Loan: loans.Loan{Principal: 100, TermMonths: 2}})

	paths, err := exportAll(b, dir, "csv", zap.NewNop())
	if err != nil {
		t.Fatalf("exportAll() unexpected error = %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a_b_schedule.csv" {
		t.Fatalf("exportAll() paths = %v", paths)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", lines)
	}
}

func TestExportAllDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	b := book.New(zap.NewNop())
	b.Add(book.Input{Name: "Car", Loan: loans.Loan{Principal: 100, TermMonths: 2}})
	b.Add(book.Input{Name: "car", Loan: loans.Loan{Principal: 200, TermMonths: 3}})
	b.Add(book.Input{Name: "Car", Loan: loans.Loan{Principal: 300, TermMonths: 4}})

	paths, err := exportAll(b, dir, "csv", zap.NewNop())
	if err != nil {
		t.Fatalf("exportAll() unexpected error = %v", err)
	}
	want := []string{"Car_schedule.csv", "car_2_schedule.csv", "Car_3_schedule.csv"}
	if len(paths) != len(want) {
		t.Fatalf("exportAll() paths = %v", paths)
	}
	for i, path := range paths {
		if filepath.Base(path) != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, filepath.Base(path), want[i])
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if lines := strings.Count(string(data), "\n"); lines != i+3 {
			t.Errorf("%s: expected header plus %d rows, got %d lines", want[i], i+2, lines)
		}
	}
}

func TestPreloadBookMissingConfig(t *testing.T) {
	b, err := preloadBook(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop())
	if err != nil {
		t.Fatalf("preloadBook() unexpected error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("expected empty book, got %d loans", b.Len())
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "loan-schedule dev") {
		t.Errorf("unexpected version output: %s", out)
	}
}
