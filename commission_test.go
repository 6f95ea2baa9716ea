package brokerage

import (
	"testing"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name       string
		in         CommissionInputs
		wantGross  Money
		wantTax    Money
		wantAgent  Money
		wantAgency Money
	}{
		{
			name: "typical sale",
			in: CommissionInputs{
				UnitValue:     BRL(500_000),
				CommissionPct: P(5),
				TaxPct:        P(6),
				MiscValue:     BRL(150),
				AgentSplitPct: P(40),
			},
			wantGross:  BRL(25_000),
			wantTax:    BRL(1_500),
			wantAgent:  BRL(9_340),
			wantAgency: BRL(14_010),
		},
		{
			name: "zero unit value",
			in: CommissionInputs{
				UnitValue:     BRL(0),
				CommissionPct: P(5),
				TaxPct:        P(6),
				AgentSplitPct: P(40),
			},
			wantGross:  BRL(0),
			wantTax:    BRL(0),
			wantAgent:  BRL(0),
			wantAgency: BRL(0),
		},
		{
			name: "agent takes everything",
			in: CommissionInputs{
				UnitValue:     BRL(100_000),
				CommissionPct: P(5),
				AgentSplitPct: P(100),
			},
			wantGross:  BRL(5_000),
			wantTax:    BRL(0),
			wantAgent:  BRL(5_000),
			wantAgency: BRL(0),
		},
		{
			name: "agency takes everything",
			in: CommissionInputs{
				UnitValue:     BRL(100_000),
				CommissionPct: P(5),
				AgentSplitPct: P(0),
			},
			wantGross:  BRL(5_000),
			wantTax:    BRL(0),
			wantAgent:  BRL(0),
			wantAgency: BRL(5_000),
		},
		{
			name: "deduction larger than the commission",
			in: CommissionInputs{
				UnitValue:     BRL(10_000),
				CommissionPct: P(1),
				MiscValue:     BRL(500),
				AgentSplitPct: P(50),
			},
			// net base is -400: no clamping, shares go negative.
			wantGross:  BRL(100),
			wantTax:    BRL(0),
			wantAgent:  BRL(-200),
			wantAgency: BRL(-200),
		},
		{
			name: "odd cent goes to the agency",
			in: CommissionInputs{
				UnitValue:     BRL(2_001),
				CommissionPct: P(5),
				AgentSplitPct: P(50),
			},
			// gross 100.05, half is 50.025, rounded to 50.03 for the agent.
			wantGross:  BRL(100.05),
			wantTax:    BRL(0),
			wantAgent:  BRL(50.03),
			wantAgency: BRL(50.02),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.in)
			if !got.Gross.Equal(tc.wantGross) {
				t.Errorf("Gross = %v, want %v", got.Gross, tc.wantGross)
			}
			if !got.Tax.Equal(tc.wantTax) {
				t.Errorf("Tax = %v, want %v", got.Tax, tc.wantTax)
			}
			if !got.Agent.Equal(tc.wantAgent) {
				t.Errorf("Agent = %v, want %v", got.Agent, tc.wantAgent)
			}
			if !got.Agency.Equal(tc.wantAgency) {
				t.Errorf("Agency = %v, want %v", got.Agency, tc.wantAgency)
			}

			// The split identity holds exactly on every case.
			netBase := got.Gross.Sub(got.Tax).Sub(tc.in.MiscValue.Round())
			if !got.NetBase().Equal(netBase) {
				t.Errorf("Agent + Agency = %v, want %v", got.NetBase(), netBase)
			}
		})
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	in := CommissionInputs{
		UnitValue:     BRL(333_333),
		CommissionPct: P(4.5),
		TaxPct:        P(6.38),
		MiscValue:     BRL(99.99),
		AgentSplitPct: P(37.5),
	}
	first := Compute(in)
	for i := 0; i < 10; i++ {
		again := Compute(in)
		if !again.Gross.Equal(first.Gross) || !again.Tax.Equal(first.Tax) ||
			!again.Agent.Equal(first.Agent) || !again.Agency.Equal(first.Agency) {
			t.Fatalf("Compute changed on repeat %d: %+v != %+v", i, again, first)
		}
	}
}

func TestValidateCommissionInputs(t *testing.T) {
	testCases := []struct {
		name    string
		in      CommissionInputs
		wantErr bool
	}{
		{
			name: "valid",
			in: CommissionInputs{
				UnitValue:     BRL(500_000),
				CommissionPct: P(5),
				TaxPct:        P(6),
				MiscValue:     BRL(150),
				AgentSplitPct: P(40),
			},
		},
		{
			name: "boundaries are valid",
			in: CommissionInputs{
				UnitValue:     BRL(0),
				CommissionPct: P(0),
				TaxPct:        P(100),
				AgentSplitPct: P(100),
			},
		},
		{
			name:    "negative unit value",
			in:      CommissionInputs{UnitValue: BRL(-1)},
			wantErr: true,
		},
		{
			name:    "negative deduction",
			in:      CommissionInputs{MiscValue: BRL(-0.01)},
			wantErr: true,
		},
		{
			name:    "commission over 100",
			in:      CommissionInputs{CommissionPct: P(101)},
			wantErr: true,
		},
		{
			name:    "negative split",
			in:      CommissionInputs{AgentSplitPct: P(-1)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCommissionInputs(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateCommissionInputs() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
