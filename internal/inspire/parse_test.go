// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspire

import (
	"encoding/json"
	"testing"
)

func TestParsePaperMinimalData(t *testing.T) {
	var m paperMetadata
	mustUnmarshal(t, `{
		"control_number": 654321,
		"titles": [{"title": "Minimal Paper"}]
	}`, &m)

	paper, err := parsePaper(m)
	if err != nil {
		t.Fatalf("parsePaper: %v", err)
	}
	if paper.ID != "654321" {
		t.Errorf("ID = %q", paper.ID)
	}
	if paper.Title != "Minimal Paper" {
		t.Errorf("Title = %q", paper.Title)
	}
	if len(paper.Authors) != 0 || paper.ArxivID != "" || len(paper.Categories) != 0 || paper.Year != 0 {
		t.Errorf("optional fields not zero: %+v", paper)
	}
}

func TestParsePaperMissingControlNumber(t *testing.T) {
	var m paperMetadata
	mustUnmarshal(t, `{"titles": [{"title": "Paper without ID"}]}`, &m)

	if _, err := parsePaper(m); err == nil {
		t.Error("parsePaper succeeded, want error for missing control number")
	}
}

func TestParsePaperFallsBackToImprintDate(t *testing.T) {
	var m paperMetadata
	mustUnmarshal(t, `{
		"control_number": 1,
		"titles": [{"title": "T"}],
		"imprints": [{"date": "2019-11-02"}]
	}`, &m)

	paper, err := parsePaper(m)
	if err != nil {
		t.Fatalf("parsePaper: %v", err)
	}
	if paper.Year != 2019 {
		t.Errorf("Year = %d, want 2019 from imprint date", paper.Year)
	}
}

func TestParseReference(t *testing.T) {
	var raw rawReference
	mustUnmarshal(t, `{
		"reference": {
			"title": {"title": "Reference Paper"},
			"authors": [{"full_name": "Alice Cooper"}],
			"arxiv_eprint": "1234.5678",
			"inspire_categories": [{"term": "hep-ex"}],
			"imprint": {"date": "2022-05-10"}
		},
		"record": {"$ref": "https://inspirehep.net/api/literature/789012"}
	}`, &raw)

	ref, ok := parseReference(raw)
	if !ok {
		t.Fatal("parseReference dropped a well-formed entry")
	}
	if ref.Title != "Reference Paper" {
		t.Errorf("Title = %q", ref.Title)
	}
	if len(ref.Authors) != 1 || ref.Authors[0] != "Alice Cooper" {
		t.Errorf("Authors = %v", ref.Authors)
	}
	if ref.ArxivID != "1234.5678" {
		t.Errorf("ArxivID = %q", ref.ArxivID)
	}
	if ref.InspireID != "789012" {
		t.Errorf("InspireID = %q", ref.InspireID)
	}
	if len(ref.Categories) != 1 || ref.Categories[0] != "hep-ex" {
		t.Errorf("Categories = %v", ref.Categories)
	}
	if ref.Year != 2022 {
		t.Errorf("Year = %d", ref.Year)
	}
}

func TestParseReferenceDefaults(t *testing.T) {
	var raw rawReference
	mustUnmarshal(t, `{"reference": {}}`, &raw)

	ref, ok := parseReference(raw)
	if !ok {
		t.Fatal("parseReference dropped an entry with an empty reference blob")
	}
	if ref.Title != "Unknown Title" {
		t.Errorf("Title = %q, want default", ref.Title)
	}
	if ref.InspireID != "" {
		t.Errorf("InspireID = %q, want empty", ref.InspireID)
	}
}

func TestParseReferenceMalformed(t *testing.T) {
	var raw rawReference
	mustUnmarshal(t, `{}`, &raw)

	if _, ok := parseReference(raw); ok {
		t.Error("parseReference kept an entry with neither reference nor record")
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2023-01-15", 2023},
		{"2023", 2023},
		{"", 0},
		{"not-a-date", 0},
	}
	for _, tt := range tests {
		if got := parseYear(tt.date); got != tt.want {
			t.Errorf("parseYear(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func mustUnmarshal(t *testing.T, data string, out any) {
	t.Helper()
	if err := json.Unmarshal([]byte(data), out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}
