package badge

import (
	"reflect"
	"testing"
)

func TestParseParams(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Params
	}{
		{"blank", "   ", Params{}},
		{"malformed", "{not json", Params{}},
		{"array root", "[1,2]", Params{}},
		{"object", `{"distinctBy":"exhibitionId","uniquePerDay":true}`, Params{"distinctBy": "exhibitionId", "uniquePerDay": true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseParams(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseParams(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParamsAccessorsTolerateWrongTypes(t *testing.T) {
	p := ParseParams(`{"distinctBy":5,"uniquePerDay":"yes","days":"SATURDAY"}`)

	if got := p.String("distinctBy"); got != "" {
		t.Fatalf("String on number = %q, want empty", got)
	}
	if p.Bool("uniquePerDay") {
		t.Fatal("Bool on string = true, want false")
	}
	if got := p.Strings("days"); got != nil {
		t.Fatalf("Strings on scalar = %v, want nil", got)
	}
}

func TestParamsStringsStringifiesNumbers(t *testing.T) {
	p := ParseParams(`{"days":["SATURDAY",6]}`)
	want := []string{"SATURDAY", "6"}
	if got := p.Strings("days"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Strings = %v, want %v", got, want)
	}
}

func TestNilParamsAccessors(t *testing.T) {
	var p Params
	if p.String("k") != "" || p.Bool("k") || p.Strings("k") != nil {
		t.Fatal("nil Params accessors must return zero values")
	}
}
