package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseLenient(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, time.July, 1)},
		{"2025-7-1", New(2025, time.July, 1)},
		{"2024-12-31", New(2024, time.December, 31)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v want %v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2025/07/01"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected an error", in)
		}
	}
}

func TestStringIsCanonical(t *testing.T) {
	d := MustParse("2025-7-1")
	if got := d.String(); got != "2025-07-01" {
		t.Errorf("String() = %q want %q", got, "2025-07-01")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.March, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `"2025-03-09"` {
		t.Errorf("Marshal = %s want %q", b, `"2025-03-09"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v want %v", back, d)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2025, time.January, 2)
	b := New(2025, time.January, 3)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before misordered %v %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("After misordered %v %v", a, b)
	}
	if a.Add(1) != b {
		t.Errorf("Add(1) = %v want %v", a.Add(1), b)
	}
}
