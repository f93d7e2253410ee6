package conv

import "testing"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 3.14, 3.14, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 7, 7, true},
		{"int64", int64(-1), -1, true},
		{"bool true", true, 1.0, true},
		{"bool false", false, 0.0, true},
		{"nil", nil, 0, false},
		{"string", "1.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ToFloat64(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"a", 1, "b", nil})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
	if got := SliceAnyToString("not a slice"); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestConfigGetters(t *testing.T) {
	m := map[string]any{
		"topk":  float64(3), // YAML/JSON 数字常以 float64 出现
		"ratio": 0.5,
		"name":  "barkit",
	}

	if got := ConfigGetInt(m, "topk", 1); got != 3 {
		t.Fatalf("ConfigGetInt = %d, want 3", got)
	}
	if got := ConfigGetInt(m, "missing", 7); got != 7 {
		t.Fatalf("ConfigGetInt default = %d, want 7", got)
	}
	if got := ConfigGetFloat(m, "ratio", 0); got != 0.5 {
		t.Fatalf("ConfigGetFloat = %v, want 0.5", got)
	}
	if got := ConfigGetFloat(m, "topk", 0); got != 3 {
		t.Fatalf("ConfigGetFloat over int-ish = %v, want 3", got)
	}
	if got := ConfigGet(m, "name", ""); got != "barkit" {
		t.Fatalf("ConfigGet = %q, want barkit", got)
	}
	if got := ConfigGet(m, "name", 0); got != 0 {
		t.Fatalf("ConfigGet type mismatch = %v, want default 0", got)
	}
	if got := ConfigGet[string](nil, "name", "x"); got != "x" {
		t.Fatalf("ConfigGet nil map = %q, want x", got)
	}
}
