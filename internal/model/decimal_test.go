package model

import (
	"encoding/json"
	"testing"
)

func TestDecimalUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Decimal
	}{
		{`"12.50"`, "12.50"},
		{`3.25`, "3.25"},
		{`null`, ""},
		{`""`, ""},
	}
	for _, tt := range tests {
		var d Decimal
		if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if d != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.in, d, tt.want)
		}
	}
}

func TestDecimalRejectsText(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`"deep"`), &d); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestBoreholeDecode(t *testing.T) {
	body := `{"id":4,"ref":"BH01","northing":"51.500000","easting":null,"ground_level":"12.30","bh_dia":150}`
	var b Borehole
	if err := json.Unmarshal([]byte(body), &b); err != nil {
		t.Fatal(err)
	}
	if b.Northing.Float() != 51.5 || b.Easting.Valid() || b.GroundLevel != "12.30" {
		t.Fatalf("unexpected borehole %+v", b)
	}

	d := BoreholeDraftFrom(b)
	if d.Diameter != "150" || d.Easting != "" {
		t.Fatalf("unexpected draft %+v", d)
	}
}
