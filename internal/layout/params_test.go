package layout

import (
	"errors"
	"testing"
)

func TestMasterClamping(t *testing.T) {
	p := DefaultParams()
	p.NMaster = 0
	for i := 0; i < 5; i++ {
		p.DecMaster()
	}
	if p.NMaster != 0 {
		t.Fatalf("DecMaster from zero left nmaster=%d", p.NMaster)
	}
	p.IncMaster()
	p.DecMaster()
	if p.NMaster != 0 {
		t.Fatalf("inc then dec should round-trip, got %d", p.NMaster)
	}
}

func TestFactClamping(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 50; i++ {
		p.IncFact()
	}
	if p.MFact != p.MaxFact {
		t.Fatalf("repeated IncFact converged to %v, want %v", p.MFact, p.MaxFact)
	}
	for i := 0; i < 50; i++ {
		p.DecFact()
	}
	if p.MFact != p.MinFact {
		t.Fatalf("repeated DecFact converged to %v, want %v", p.MFact, p.MinFact)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Params) {}},
		{name: "negative nmaster", mutate: func(p *Params) { p.NMaster = -1 }, wantErr: true},
		{name: "mfact too small", mutate: func(p *Params) { p.MFact = 0.01 }, wantErr: true},
		{name: "mfact too large", mutate: func(p *Params) { p.MFact = 0.99 }, wantErr: true},
		{name: "mfact at one", mutate: func(p *Params) { p.MFact = 1 }, wantErr: true},
		{name: "inverted bounds", mutate: func(p *Params) { p.MinFact, p.MaxFact = 0.9, 0.1 }, wantErr: true},
		{name: "zero step", mutate: func(p *Params) { p.FactStep = 0 }, wantErr: true},
		{name: "zero threshold", mutate: func(p *Params) { p.WideThreshold = 0 }, wantErr: true},
		{name: "big nmaster ok", mutate: func(p *Params) { p.NMaster = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var pe *ParamError
				if !errors.As(err, &pe) {
					t.Fatalf("error %T is not a ParamError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
