package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			"both present",
			Label{Value: "catalog", Source: "recall"},
			Label{Value: "sampled", Source: "rerank"},
			Label{Value: "catalog|sampled", Source: "recall,rerank"},
		},
		{
			"empty existing",
			Label{},
			Label{Value: "x", Source: "rank"},
			Label{Value: "x", Source: "rank"},
		},
		{
			"empty incoming",
			Label{Value: "x", Source: "rank"},
			Label{},
			Label{Value: "x", Source: "rank"},
		},
		{
			"incoming without source",
			Label{Value: "a", Source: "recall"},
			Label{Value: "b"},
			Label{Value: "a|b", Source: "recall"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Fatalf("MergeLabel = %+v, want %+v", got, tt.want)
			}
		})
	}
}
