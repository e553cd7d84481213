package amongdata

import (
	"errors"
	"math"
	"testing"
)

func TestDomains(t *testing.T) {
	domains := Domains()

	want := []struct {
		name     string
		coverage Coverage
		variants int
	}{
		{DomainPayloadType, CoverageTotal, payloadTypeCount},
		{DomainDisconnectReason, CoverageTotal, disconnectReasonCount},
		{DomainRPCFlag, CoverageClosed, rpcFlagCount},
		{DomainGameDataType, CoverageClosed, gameDataTypeCount},
		{DomainPlayerColor, CoverageClosed, playerColorCount},
		{DomainTaskType, CoverageClosed, taskTypeCount},
	}

	if len(domains) != len(want) {
		t.Fatalf("Domains() returned %d domains, want %d", len(domains), len(want))
	}

	for i, w := range want {
		d := domains[i]
		if d.Name != w.name {
			t.Errorf("domain %d name = %q, want %q", i, d.Name, w.name)
		}
		if d.Coverage != w.coverage {
			t.Errorf("%s coverage = %v, want %v", d.Name, d.Coverage, w.coverage)
		}
		if len(d.Variants) != w.variants {
			t.Errorf("%s has %d variants, want %d", d.Name, len(d.Variants), w.variants)
		}
		for _, v := range d.Variants {
			if v.Label == "" {
				t.Errorf("%s variant %d has empty label", d.Name, v.Code)
			}
		}
	}
}

func TestDomainResolve(t *testing.T) {
	tests := []struct {
		domain  string
		code    uint64
		want    string
		wantErr bool
	}{
		{DomainPayloadType, 0, "create game", false},
		{DomainPayloadType, 16, "get game list", false},
		{DomainPayloadType, 9999, "unknown (9999)", false},
		{DomainPayloadType, math.MaxUint16 + 1, "", true},
		{DomainDisconnectReason, 18, "Could not find the game you're looking for.", false},
		{DomainDisconnectReason, 200, "unknown (200)", false},
		{DomainDisconnectReason, 256, "", true},
		{DomainRPCFlag, 8, "SetColor", false},
		{DomainRPCFlag, 31, "", true},
		{DomainGameDataType, 2, "rpc", false},
		{DomainGameDataType, 3, "", true},
		{DomainPlayerColor, 2, "dark green", false},
		{DomainPlayerColor, 300, "", true},
		{DomainTaskType, 0, "Submit Scan", false},
		{DomainTaskType, 26, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			d, err := LookupDomain(tt.domain)
			if err != nil {
				t.Fatalf("LookupDomain(%q) failed: %v", tt.domain, err)
			}

			got, err := d.Resolve(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("Resolve(%d) error = %v, want ErrUnknownVariant", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%d) unexpected error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupDomainUnknown(t *testing.T) {
	_, err := LookupDomain("hat")
	if err == nil {
		t.Fatal("expected error for unknown domain")
	}
	if !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("errors.Is(err, ErrUnknownDomain) = false for %v", err)
	}
}

func TestCoverageString(t *testing.T) {
	if CoverageTotal.String() != "total" {
		t.Errorf("CoverageTotal = %q", CoverageTotal.String())
	}
	if CoverageClosed.String() != "closed" {
		t.Errorf("CoverageClosed = %q", CoverageClosed.String())
	}
	if got := Coverage(7).String(); got != "Coverage(7)" {
		t.Errorf("Coverage(7) = %q", got)
	}
}

// TestDomainsReturnsCopies verifies callers cannot corrupt the shared
// catalogue through the slices they are handed.
func TestDomainsReturnsCopies(t *testing.T) {
	first := Domains()
	first[0].Name = "tampered"
	first[0].Variants[0].Label = "tampered"

	again := Domains()
	if again[0].Name != DomainPayloadType {
		t.Errorf("Domains()[0].Name = %q after caller mutation", again[0].Name)
	}
	if again[0].Variants[0].Label != "create game" {
		t.Errorf("Domains()[0].Variants[0].Label = %q after caller mutation", again[0].Variants[0].Label)
	}

	d, err := LookupDomain(DomainTaskType)
	if err != nil {
		t.Fatalf("LookupDomain failed: %v", err)
	}
	d.Variants[0].Label = "tampered"

	d, _ = LookupDomain(DomainTaskType)
	if d.Variants[0].Label != "Submit Scan" {
		t.Errorf("LookupDomain variant label = %q after caller mutation", d.Variants[0].Label)
	}
}

// TestLookupDomainDoesNotResolveVariants verifies LookupDomain copies the
// prebuilt catalogue rather than resolving every variant again.
func TestLookupDomainDoesNotResolveVariants(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := LookupDomain(DomainRPCFlag); err != nil {
			t.Fatal(err)
		}
	})
	// One allocation for the copied Variants slice.
	if allocs > 1 {
		t.Errorf("LookupDomain allocated %.0f times per call, want at most 1", allocs)
	}
}

func BenchmarkLookupDomain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = LookupDomain(DomainTaskType)
	}
}
