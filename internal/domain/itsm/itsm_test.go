package itsm

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/itsmkb/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"Incident", Incident, false},
		{"incident", Incident, false},
		{" RELEASE ", Release, false},
		{"Other", Other, false},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if !errors.Is(err, domain.ErrUnknownITSMType) {
				t.Errorf("Parse(%q): expected ErrUnknownITSMType, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSeverityOrdinal(t *testing.T) {
	if SeverityOrdinal(SeverityCritical) <= SeverityOrdinal(SeverityHigh) {
		t.Error("critical must outrank high")
	}
	if SeverityOrdinal(SeverityHigh) <= SeverityOrdinal(SeverityMedium) {
		t.Error("high must outrank medium")
	}
	if SeverityOrdinal(SeverityMedium) <= SeverityOrdinal(SeverityLow) {
		t.Error("medium must outrank low")
	}
	if SeverityOrdinal("") != 0 || SeverityOrdinal("urgent") != 0 {
		t.Error("unknown severities must rank 0")
	}
}

func TestDescriptions_AllTypes(t *testing.T) {
	all := Descriptions()
	if len(all) != len(All()) {
		t.Errorf("got %d descriptions, want %d", len(all), len(All()))
	}
	for _, typ := range All() {
		d, ok := all[typ]
		if !ok || d.Name == "" || d.Description == "" || len(d.Examples) == 0 {
			t.Errorf("incomplete description for %s: %+v", typ, d)
		}
	}
}

func TestDescriptions_ReturnsCopy(t *testing.T) {
	d := Descriptions()[Incident]
	d.Examples[0] = "mutated"
	if Descriptions()[Incident].Examples[0] == "mutated" {
		t.Fatal("Descriptions must not expose shared slices")
	}
}
