package core

import "testing"

func TestRecommendable(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{CategoryCocktail, true},
		{CategoryTopBarCocktail, true},
		{"Modifier", false},
		{"Base Spirit", false},
		{"", false},
	}
	for _, tt := range tests {
		c := &Cocktail{Category: tt.category}
		if got := c.Recommendable(); got != tt.want {
			t.Errorf("Recommendable(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestClampDim(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {9, 5},
	}
	for _, tt := range tests {
		if got := ClampDim(tt.in); got != tt.want {
			t.Errorf("ClampDim(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTargetProfileValidate(t *testing.T) {
	valid := &TargetProfile{Energy: 1, Tension: 5, Control: 3}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	for _, p := range []*TargetProfile{
		{Energy: 0, Tension: 3, Control: 3},
		{Energy: 3, Tension: 6, Control: 3},
		{Energy: 3, Tension: 3, Control: -1},
	} {
		if err := p.Validate(); !IsInvalidInput(err) {
			t.Fatalf("profile %+v accepted, err = %v", p, err)
		}
	}
}

func TestNeedsLower(t *testing.T) {
	c := &Cocktail{Needs: []string{"Comfort", "EDGE"}}
	got := c.NeedsLower()
	if len(got) != 2 || got[0] != "comfort" || got[1] != "edge" {
		t.Fatalf("NeedsLower = %v", got)
	}
	if got := (&Cocktail{}).NeedsLower(); got != nil {
		t.Fatalf("empty needs should be nil, got %v", got)
	}
}

func TestDomainError(t *testing.T) {
	err := NewDomainError(ModuleCatalog, ErrorCodeNotFound, "catalog: missing")
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false for %v", err)
	}
	if IsInvalidInput(err) {
		t.Fatalf("IsInvalidInput = true for %v", err)
	}
	de := GetDomainError(err)
	if de == nil || de.Module != ModuleCatalog || de.Code != ErrorCodeNotFound {
		t.Fatalf("GetDomainError = %+v", de)
	}
	if IsNotFound(nil) {
		t.Fatal("IsNotFound(nil) = true")
	}
}
