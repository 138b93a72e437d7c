package fields

import (
	"encoding/json"
	"testing"
)

func TestFromYAML(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v := FromYAML("hello")
		if s, ok := v.AsString(); !ok || s != "hello" {
			t.Errorf("AsString = %q, %v", s, ok)
		}
		if v.IsRef() {
			t.Error("plain string should not be a ref")
		}
	})

	t.Run("wikilink string becomes ref", func(t *testing.T) {
		v := FromYAML("[[Concept A|CA]]")
		target, ok := v.AsRef()
		if !ok || target != "Concept A" {
			t.Errorf("AsRef = %q, %v", target, ok)
		}
		// Refs read back as their bare target.
		if s, _ := v.AsString(); s != "Concept A" {
			t.Errorf("AsString = %q", s)
		}
	})

	t.Run("numbers", func(t *testing.T) {
		for _, in := range []interface{}{int(3), int64(3), float64(3)} {
			v := FromYAML(in)
			if n, ok := v.AsNumber(); !ok || n != 3 {
				t.Errorf("FromYAML(%T) = %v, %v", in, n, ok)
			}
		}
	})

	t.Run("array", func(t *testing.T) {
		v := FromYAML([]interface{}{"a", "[[b]]"})
		arr, ok := v.AsArray()
		if !ok || len(arr) != 2 {
			t.Fatalf("AsArray = %v, %v", arr, ok)
		}
		if !arr[1].IsRef() {
			t.Error("second element should be a ref")
		}
	})

	t.Run("map", func(t *testing.T) {
		v := FromYAML(map[string]interface{}{"k": true})
		m, ok := v.AsMap()
		if !ok {
			t.Fatal("expected a map value")
		}
		if b, ok := m["k"].AsBool(); !ok || !b {
			t.Errorf("m[k] = %v, %v", b, ok)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if !FromYAML(nil).IsNull() {
			t.Error("expected null")
		}
	})
}

func TestAsStringList(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []string
	}{
		{"array", []interface{}{"a", "b"}, []string{"a", "b"}},
		{"single string", "a", []string{"a"}},
		{"mixed array keeps strings", []interface{}{"a", 1, "b"}, []string{"a", "b"}},
		{"number", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromYAML(tt.in).AsStringList()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	v := FromYAML(map[string]interface{}{
		"ref":  "[[Concept A]]",
		"tags": []interface{}{"x"},
	})

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var round map[string]interface{}
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if round["ref"] != "Concept A" {
		t.Errorf("ref marshals as %v, want bare target", round["ref"])
	}
}
