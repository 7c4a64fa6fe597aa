package domain

import "testing"

func TestParseStage(t *testing.T) {
	cases := []struct {
		in   string
		want Stage
		ok   bool
	}{
		{"Applied", StageApplied, true},
		{"applied", StageApplied, true},
		{"  INTERVIEW ", StageInterview, true},
		{"Ghosted", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseStage(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseStage(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseSource(t *testing.T) {
	// Multi-word sources must match with their space intact.
	if got, ok := ParseSource("company website"); !ok || got != SourceCompanyWebsite {
		t.Errorf("ParseSource(company website) = (%q, %v)", got, ok)
	}
	if _, ok := ParseSource("carrier pigeon"); ok {
		t.Error("unknown source should not parse")
	}
}

func TestParseEmploymentType(t *testing.T) {
	if got, ok := ParseEmploymentType("full-time"); !ok || got != EmploymentFullTime {
		t.Errorf("ParseEmploymentType(full-time) = (%q, %v)", got, ok)
	}
	if _, ok := ParseEmploymentType("gig"); ok {
		t.Error("unknown employment type should not parse")
	}
}

func TestSortColumn(t *testing.T) {
	if got := SortColumn("company"); got != "company" {
		t.Errorf("SortColumn(company) = %q", got)
	}
	// Unknown names fall back instead of reaching the query builder.
	if got := SortColumn("password_hash; DROP TABLE users"); got != "created_at" {
		t.Errorf("SortColumn(injection) = %q, want created_at", got)
	}
	if got := SortColumn(""); got != "created_at" {
		t.Errorf("SortColumn(empty) = %q, want created_at", got)
	}
}
