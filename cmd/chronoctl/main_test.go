package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHRONO_CHRONOLOGY", "CHRONO_ZONE", "CHRONO_MIN_DAYS", "CHRONO_CUTOVER",
		"CHRONO_MODE", "CHRONO_LOCALE", "CHRONO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Unsetenv(%s) error = %v", key, err)
		}
	}
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := yaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("yaml.Unmarshal(%q) error = %v", out, err)
	}
	return v
}

func TestFieldsCommand(t *testing.T) {
	clearEnv(t)
	code, out, stderr := runCLI(t, "fields", "2000-03-01T00:00Z")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[struct {
		Instant instantView `yaml:"instant"`
		Fields  []fieldView `yaml:"fields"`
	}](t, out)
	if got.Instant.Millis != 951868800000 {
		t.Fatalf("millis = %d, want 951868800000", got.Instant.Millis)
	}
	if got.Instant.Chronology != "ISOChronology[UTC]" {
		t.Fatalf("chronology = %q", got.Instant.Chronology)
	}
	values := map[string]fieldView{}
	for _, f := range got.Fields {
		values[f.Name] = f
	}
	if v := values["dayOfYear"]; v.Value != 61 || v.Max != 366 {
		t.Fatalf("dayOfYear = %+v, want value 61 max 366", v)
	}
	if v := values["monthOfYear"]; v.Text != "March" {
		t.Fatalf("monthOfYear text = %q, want March", v.Text)
	}
	if v := values["dayOfWeek"]; v.Text != "Wednesday" {
		t.Fatalf("dayOfWeek text = %q, want Wednesday", v.Text)
	}
}

func TestAddAcrossGJCutover(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHRONO_CHRONOLOGY", "GJ")
	code, out, stderr := runCLI(t, "add", "1582-10-04", "P1D")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[instantView](t, out)
	if got.DateTime != "1582-10-15T00:00:00.000Z" {
		t.Fatalf("date-time = %q, want 1582-10-15T00:00:00.000Z", got.DateTime)
	}

	code, out, stderr = runCLI(t, "add", "--times", "-2", "1582-10-15", "P1D")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if got := decode[instantView](t, out); got.DateTime != "1582-10-03T00:00:00.000Z" {
		t.Fatalf("date-time = %q, want 1582-10-03T00:00:00.000Z", got.DateTime)
	}
}

func TestConvertCommand(t *testing.T) {
	clearEnv(t)
	code, out, stderr := runCLI(t, "convert", "@0", "--to", "coptic,ethiopic,buddhist")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[[]instantView](t, out)
	want := []string{
		"1686-04-23T00:00:00.000Z",
		"1962-04-23T00:00:00.000Z",
		"2513-01-01T00:00:00.000Z",
	}
	if len(got) != len(want) {
		t.Fatalf("convert returned %d views, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].DateTime != want[i] {
			t.Fatalf("view %d date-time = %q, want %q", i, got[i].DateTime, want[i])
		}
	}
}

func TestConvertSkipsUnrepresentable(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHRONO_CHRONOLOGY", "Julian")
	code, out, stderr := runCLI(t, "convert", "0100-01-01", "--to", "julian,coptic")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if got := decode[[]instantView](t, out); len(got) != 1 {
		t.Fatalf("convert returned %d views, want 1", len(got))
	}
	if !strings.Contains(stderr, "instant not representable") {
		t.Fatalf("stderr = %q, want a warning", stderr)
	}
}

func TestBetweenCommand(t *testing.T) {
	clearEnv(t)
	code, out, stderr := runCLI(t, "between", "2000-01-15", "2003-03-20T06:00")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[struct {
		Period string `yaml:"period"`
	}](t, out)
	if got.Period != "P3Y2M5DT6H" {
		t.Fatalf("period = %q, want P3Y2M5DT6H", got.Period)
	}

	code, _, _ = runCLI(t, "between", "2000-01-15", "2003-03-20", "--units", "fortnights")
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestSetCommand(t *testing.T) {
	clearEnv(t)
	code, out, stderr := runCLI(t, "set", "2001-01-31T10:00", "monthOfYear=February", "hourOfDay=7")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if got := decode[instantView](t, out); got.DateTime != "2001-02-28T07:00:00.000Z" {
		t.Fatalf("date-time = %q, want 2001-02-28T07:00:00.000Z", got.DateTime)
	}

	t.Setenv("CHRONO_MODE", "lenient")
	code, out, stderr = runCLI(t, "set", "2001-01-01", "dayOfMonth=32")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if got := decode[instantView](t, out); got.DateTime != "2001-02-01T00:00:00.000Z" {
		t.Fatalf("date-time = %q, want 2001-02-01T00:00:00.000Z", got.DateTime)
	}

	t.Setenv("CHRONO_MODE", "strict")
	code, _, stderr = runCLI(t, "set", "2001-02-01", "dayOfMonth=30")
	if code != 1 || !strings.Contains(stderr, "field-value-out-of-range") {
		t.Fatalf("exit = %d, stderr = %q, want a field range failure", code, stderr)
	}
}

func TestZonedInput(t *testing.T) {
	clearEnv(t)
	code, out, stderr := runCLI(t, "--zone", "America/New_York", "fields", "2024-03-10T03:30")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[struct {
		Instant instantView `yaml:"instant"`
	}](t, out)
	if got.Instant.DateTime != "2024-03-10T03:30:00.000-04:00" {
		t.Fatalf("date-time = %q", got.Instant.DateTime)
	}

	code, _, stderr = runCLI(t, "--zone", "America/New_York", "fields", "2024-03-10T02:30")
	if code != 1 || !strings.Contains(stderr, "illegal-instant") {
		t.Fatalf("exit = %d, stderr = %q, want an illegal instant failure", code, stderr)
	}

	code, out, stderr = runCLI(t, "--zone", "America/New_York", "fields", "2024-03-10T02:30+00:00")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got = decode[struct {
		Instant instantView `yaml:"instant"`
	}](t, out)
	if got.Instant.DateTime != "2024-03-09T21:30:00.000-05:00" {
		t.Fatalf("date-time = %q", got.Instant.DateTime)
	}
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "chrono.yaml")
	content := "chronology: Julian\nzone: Europe/Paris\nmin-days: 1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	code, out, stderr := runCLI(t, "--config", path, "config")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	cfg := decode[Config](t, out)
	if cfg.Chronology != "Julian" || cfg.Zone != "Europe/Paris" || cfg.MinDays != 1 || cfg.Locale != "en" {
		t.Fatalf("config = %+v", cfg)
	}
	if !strings.Contains(stderr, "CHRONO_ZONE") {
		t.Fatalf("stderr = %q, want environment help", stderr)
	}

	code, out, stderr = runCLI(t, "--config", path, "--min-days", "4", "fields", "@0")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	got := decode[struct {
		Instant instantView `yaml:"instant"`
	}](t, out)
	if got.Instant.Chronology != "JulianChronology[Europe/Paris]" {
		t.Fatalf("chronology = %q", got.Instant.Chronology)
	}
}

func TestUsageErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "missing argument", args: []string{"fields"}, code: 2},
		{name: "unknown flag", args: []string{"fields", "--bogus", "@0"}, code: 2},
		{name: "bad assignment", args: []string{"set", "@0", "year"}, code: 2},
		{name: "unknown field", args: []string{"set", "@0", "fortnight=2"}, code: 2},
		{name: "unknown chronology", args: []string{"--chronology", "mayan", "fields", "@0"}, code: 1},
		{name: "bad date", args: []string{"fields", "2001-02-30"}, code: 1},
		{name: "bad period", args: []string{"add", "@0", "P1H"}, code: 1},
		{name: "bad log level", args: []string{"--log-level", "chatty", "fields", "@0"}, code: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit = %d, want %d (stderr %q)", code, tt.code, stderr)
			}
			if !strings.HasPrefix(stderr, "error: ") {
				t.Fatalf("stderr = %q, want an error line", stderr)
			}
		})
	}
}

func TestDebugLogging(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHRONO_LOG_LEVEL", "debug")
	code, _, stderr := runCLI(t, "fields", "@0")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stderr, "chronology resolved") || !strings.Contains(stderr, "ISOChronology[UTC]") {
		t.Fatalf("stderr = %q, want debug log", stderr)
	}
}

func TestApplyFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("zone", "", "")
	cmd.Flags().Int("min-days", 0, "")
	for name, value := range map[string]string{"zone": "Asia/Tokyo", "min-days": "2"} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("Set(%s) error = %v", name, err)
		}
	}
	cfg := Config{Zone: "UTC", MinDays: 4, Locale: "en"}
	if err := applyFlags(cmd, &cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Zone != "Asia/Tokyo" || cfg.MinDays != 2 || cfg.Locale != "en" {
		t.Fatalf("applyFlags() = %+v", cfg)
	}
}

func TestApplyFlagsReportsMistypedFlag(t *testing.T) {
	tests := []struct {
		flag  string
		build func(*cobra.Command)
	}{
		{flag: "zone", build: func(cmd *cobra.Command) { cmd.Flags().Int("zone", 0, "") }},
		{flag: "min-days", build: func(cmd *cobra.Command) { cmd.Flags().String("min-days", "", "") }},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			cmd := &cobra.Command{}
			tt.build(cmd)
			if err := cmd.Flags().Set(tt.flag, "3"); err != nil {
				t.Fatalf("Set(%s) error = %v", tt.flag, err)
			}
			cfg := Config{}
			if err := applyFlags(cmd, &cfg); err == nil {
				t.Fatalf("applyFlags() error = nil, want error")
			}
		})
	}
}
