package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `schedule:
  sleep_start: "22:30"
  sleep_end: "06:30"
  concept_peak_start: "09:00"
  concept_peak_end: "11:00"
  deep_work_min_mins: 120
engine:
  prefer_native: true
  library_path: "/opt/csos/libcsos_engine.so"
  timeout_ms: 250
logging:
  level: "debug"
  console: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"sleep_start", cfg.Schedule.SleepStart, "22:30"},
		{"sleep_end", cfg.Schedule.SleepEnd, "06:30"},
		{"concept_peak_start", cfg.Schedule.ConceptPeakStart, "09:00"},
		{"practice_peak_start default", cfg.Schedule.PracticePeakStart, "16:00"},
		{"deep_work_min_mins", cfg.Schedule.DeepWorkMinMins, 120},
		{"micro_gap default", cfg.Schedule.MicroGapMaxMins, 30},
		{"prefer_native", cfg.Engine.PreferNative, true},
		{"library_path", cfg.Engine.LibraryPath, "/opt/csos/libcsos_engine.so"},
		{"timeout_ms", cfg.Engine.TimeoutMs, 250},
		{"log level", cfg.Logging.Level, "debug"},
		{"log console", cfg.Logging.Console, true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Schedule.SleepStart != "23:00" || cfg.Schedule.SleepEnd != "06:00" {
		t.Fatalf("sleep defaults wrong: %+v", cfg.Schedule)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("log level default = %s", cfg.Logging.Level)
	}
	if cfg.Engine.PreferNative {
		t.Fatal("native must be opt-in")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CSOS_SCHEDULE__SLEEP_START", "22:00")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Schedule.SleepStart != "22:00" {
		t.Fatalf("sleep_start = %s, want 22:00", cfg.Schedule.SleepStart)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestBadClockRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"schedule": {"sleep_start": "25:00"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected invalid clock error")
	}
}

func TestOptimizationConversion(t *testing.T) {
	var sc ScheduleConfig
	sc.SetDefaults()
	cfg, err := sc.Optimization()
	if err != nil {
		t.Fatalf("conversion: %v", err)
	}
	want := struct{ sleepStart, sleepEnd, conceptStart, deepWork int }{46, 12, 16, 3}
	if cfg.SleepStartSlot != want.sleepStart || cfg.SleepEndSlot != want.sleepEnd {
		t.Fatalf("sleep slots = %d/%d", cfg.SleepStartSlot, cfg.SleepEndSlot)
	}
	if cfg.ConceptPeakStart != want.conceptStart {
		t.Fatalf("concept start = %d", cfg.ConceptPeakStart)
	}
	if cfg.DeepWorkMinSlots != want.deepWork {
		t.Fatalf("deep work slots = %d", cfg.DeepWorkMinSlots)
	}
	if !cfg.EnableHeuristics {
		t.Fatal("heuristics default to on")
	}

	off := false
	sc.EnableHeuristics = &off
	cfg, err = sc.Optimization()
	if err != nil {
		t.Fatalf("conversion: %v", err)
	}
	if cfg.EnableHeuristics {
		t.Fatal("heuristics override ignored")
	}
}

func TestEngineBackends(t *testing.T) {
	var ec EngineConfig
	ec.SetDefaults()
	if got := ec.Backends(); len(got) != 1 || got[0].Type != "greedy" {
		t.Fatalf("default backends = %+v", got)
	}

	ec = EngineConfig{LibraryPath: "/tmp/lib.so"}
	ec.SetDefaults()
	got := ec.Backends()
	if len(got) != 2 || got[0].Type != "native" || got[1].Type != "greedy" {
		t.Fatalf("backends = %+v", got)
	}
	if got[0].Conf["library_path"] != "/tmp/lib.so" {
		t.Fatalf("library path not threaded: %+v", got[0].Conf)
	}
}

func TestLoggingValidate(t *testing.T) {
	lc := LoggingConfig{Level: "verbose"}
	if err := lc.Validate(); err == nil {
		t.Fatal("expected unknown level error")
	}
}
