package layout

import "fmt"

const (
	DefaultNMaster       = 1
	DefaultMFact         = 0.55
	DefaultFactStep      = 0.05
	DefaultMinFact       = 0.05
	DefaultMaxFact       = 0.95
	DefaultWideThreshold = 132
)

// Params holds the tunable layout parameters. Each engine owns its own copy;
// there is no package-level state.
type Params struct {
	// NMaster is how many panes are routed to the master area. Zero drops
	// the master area entirely; values above the pane count route every
	// pane to it.
	NMaster int
	// MFact is the master area's share of the split axis.
	MFact float64
	// FactStep is the increment applied by IncFact/DecFact.
	FactStep float64
	// MinFact and MaxFact bound MFact so both areas stay visible.
	MinFact float64
	MaxFact float64
	// WideThreshold is the frame width at which Tall switches the master
	// area from top to left.
	WideThreshold int
}

func DefaultParams() Params {
	return Params{
		NMaster:       DefaultNMaster,
		MFact:         DefaultMFact,
		FactStep:      DefaultFactStep,
		MinFact:       DefaultMinFact,
		MaxFact:       DefaultMaxFact,
		WideThreshold: DefaultWideThreshold,
	}
}

// ParamError reports a parameter value set outside the clamped mutators.
type ParamError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("layout: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the parameter set before it is used for an arrangement.
func (p Params) Validate() error {
	if p.NMaster < 0 {
		return &ParamError{Field: "nmaster", Value: p.NMaster, Reason: "must not be negative"}
	}
	if p.MinFact <= 0 || p.MaxFact >= 1 || p.MinFact >= p.MaxFact {
		return &ParamError{
			Field:  "min_fact/max_fact",
			Value:  fmt.Sprintf("%v/%v", p.MinFact, p.MaxFact),
			Reason: "bounds must satisfy 0 < min < max < 1",
		}
	}
	if p.MFact < p.MinFact || p.MFact > p.MaxFact {
		return &ParamError{
			Field:  "mfact",
			Value:  p.MFact,
			Reason: fmt.Sprintf("must be within [%v, %v]", p.MinFact, p.MaxFact),
		}
	}
	if p.FactStep <= 0 || p.FactStep >= 1 {
		return &ParamError{Field: "fact_step", Value: p.FactStep, Reason: "must be within (0, 1)"}
	}
	if p.WideThreshold <= 0 {
		return &ParamError{Field: "wide_threshold", Value: p.WideThreshold, Reason: "must be positive"}
	}
	return nil
}

// IncMaster grows the master pane count. There is no upper bound; a count
// beyond the pane list simply routes everything to the master area.
func (p *Params) IncMaster() {
	p.NMaster++
}

// DecMaster shrinks the master pane count, clamped at zero.
func (p *Params) DecMaster() {
	if p.NMaster > 0 {
		p.NMaster--
	}
}

// IncFact grows the master share by one step, clamped at MaxFact.
func (p *Params) IncFact() {
	p.MFact = clampFact(p.MFact+p.FactStep, p.MinFact, p.MaxFact)
}

// DecFact shrinks the master share by one step, clamped at MinFact.
func (p *Params) DecFact() {
	p.MFact = clampFact(p.MFact-p.FactStep, p.MinFact, p.MaxFact)
}

func clampFact(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
