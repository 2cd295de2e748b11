package logging

import "testing"

func TestMergeConfigOverrides(t *testing.T) {
	base := DefaultConfig()
	level := "debug"
	sink := "none"
	merged := mergeConfig(base, Config{Level: &level, Sink: &sink})
	if merged.Level == nil || *merged.Level != "debug" {
		t.Fatalf("level not overridden: %+v", merged.Level)
	}
	if merged.Sink == nil || *merged.Sink != "none" {
		t.Fatalf("sink not overridden: %+v", merged.Sink)
	}
	if merged.Format == nil || *merged.Format != string(FormatText) {
		t.Fatalf("format should keep the default, got %+v", merged.Format)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogCompress, "off")
	t.Setenv(EnvLogMaxBackups, "9")

	cfg := DefaultConfig().WithEnv()
	if cfg.Level == nil || *cfg.Level != "warn" {
		t.Fatalf("level from env: %+v", cfg.Level)
	}
	if cfg.Compress == nil || *cfg.Compress {
		t.Fatalf("compress should be disabled: %+v", cfg.Compress)
	}
	if cfg.MaxBackups == nil || *cfg.MaxBackups != 9 {
		t.Fatalf("max backups from env: %+v", cfg.MaxBackups)
	}
}

func TestInitNoneSink(t *testing.T) {
	sink := string(SinkNone)
	closeFn, err := Init(Config{Sink: &sink}, InitOptions{App: "edwina-test", Version: "test"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestInitRejectsUnknownSink(t *testing.T) {
	sink := "syslog"
	if _, err := Init(Config{Sink: &sink}, InitOptions{}); err == nil {
		t.Fatal("unknown sink must fail")
	}
}
