package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glencjones/edwina/internal/logging"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "EDWINA_CONFIG"

// ParamsConfig mirrors the layout block of the config file. Absent fields
// fall back to the defaults.
type ParamsConfig struct {
	NMaster       *int     `yaml:"nmaster,omitempty"`
	MFact         *float64 `yaml:"mfact,omitempty"`
	FactStep      *float64 `yaml:"fact_step,omitempty"`
	MinFact       *float64 `yaml:"min_fact,omitempty"`
	MaxFact       *float64 `yaml:"max_fact,omitempty"`
	WideThreshold *int     `yaml:"wide_threshold,omitempty"`
	Active        string   `yaml:"active,omitempty"`
}

// Config is the top-level config file structure.
type Config struct {
	Layout  ParamsConfig   `yaml:"layout,omitempty"`
	Logging logging.Config `yaml:"logging,omitempty"`
}

// DefaultConfigPath returns the config file location, honoring EDWINA_CONFIG.
func DefaultConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("layout: resolve config dir: %w", err)
	}
	return filepath.Join(base, "edwina", "edwina.yml"), nil
}

// LoadConfig reads and decodes the config file at path. A missing file
// surfaces as os.ErrNotExist so callers can fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("layout: parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Params merges the config over the defaults and validates the result.
func (c *Config) Params() (Params, error) {
	p := DefaultParams()
	if c == nil {
		return p, nil
	}
	lc := c.Layout
	if lc.NMaster != nil {
		p.NMaster = *lc.NMaster
	}
	if lc.MFact != nil {
		p.MFact = *lc.MFact
	}
	if lc.FactStep != nil {
		p.FactStep = *lc.FactStep
	}
	if lc.MinFact != nil {
		p.MinFact = *lc.MinFact
	}
	if lc.MaxFact != nil {
		p.MaxFact = *lc.MaxFact
	}
	if lc.WideThreshold != nil {
		p.WideThreshold = *lc.WideThreshold
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// ActiveFunc resolves the configured layout name, defaulting to tall.
func (c *Config) ActiveFunc() (Func, string, error) {
	name := "tall"
	if c != nil && strings.TrimSpace(c.Layout.Active) != "" {
		name = strings.TrimSpace(c.Layout.Active)
	}
	fn, ok := ByName(name)
	if !ok {
		return nil, "", fmt.Errorf("layout: unknown layout %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return fn, name, nil
}
