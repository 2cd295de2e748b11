package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edwina.yml")
	data := `layout:
  nmaster: 2
  mfact: 0.6
  active: stack
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.NMaster != 2 || p.MFact != 0.6 {
		t.Fatalf("params = %+v", p)
	}
	if p.WideThreshold != DefaultWideThreshold {
		t.Fatalf("unset fields must keep defaults, wide_threshold=%d", p.WideThreshold)
	}
	if _, name, err := cfg.ActiveFunc(); err != nil || name != "stack" {
		t.Fatalf("ActiveFunc = %q, %v", name, err)
	}
	if cfg.Logging.Level == nil || *cfg.Logging.Level != "debug" {
		t.Fatalf("logging block not decoded: %+v", cfg.Logging)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestConfigRejectsBadParams(t *testing.T) {
	bad := 1.5
	cfg := &Config{Layout: ParamsConfig{MFact: &bad}}
	if _, err := cfg.Params(); err == nil {
		t.Fatal("mfact=1.5 must be rejected")
	}
}

func TestConfigUnknownLayout(t *testing.T) {
	cfg := &Config{Layout: ParamsConfig{Active: "spiral"}}
	if _, _, err := cfg.ActiveFunc(); err == nil {
		t.Fatal("unknown layout name must be rejected")
	}
}

func TestNilConfigDefaults(t *testing.T) {
	var cfg *Config
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params on nil config: %v", err)
	}
	if p != DefaultParams() {
		t.Fatalf("nil config params = %+v", p)
	}
	fn, name, err := cfg.ActiveFunc()
	if err != nil || fn == nil || name != "tall" {
		t.Fatalf("nil config active = %q, %v", name, err)
	}
}

func TestDefaultConfigPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yml")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if path != "/tmp/custom.yml" {
		t.Fatalf("path = %q", path)
	}
}
