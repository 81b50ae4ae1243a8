// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/refnet/pkg/types"
)

// INSPIRE API JSON structures. Only the fields refnet reads are declared.

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Metadata paperMetadata `json:"metadata"`
		} `json:"hits"`
	} `json:"hits"`
}

type recordResponse struct {
	Metadata struct {
		References []rawReference `json:"references"`
	} `json:"metadata"`
}

type paperMetadata struct {
	ControlNumber     int64        `json:"control_number"`
	Titles            []titleEntry `json:"titles"`
	Authors           []authorEntry `json:"authors"`
	ArxivEprints      []struct {
		Value string `json:"value"`
	} `json:"arxiv_eprints"`
	InspireCategories []categoryEntry `json:"inspire_categories"`
	PreprintDate      string          `json:"preprint_date"`
	Imprints          []struct {
		Date string `json:"date"`
	} `json:"imprints"`
}

type rawReference struct {
	Reference *struct {
		Title *struct {
			Title string `json:"title"`
		} `json:"title"`
		Authors           []authorEntry   `json:"authors"`
		ArxivEprint       string          `json:"arxiv_eprint"`
		InspireCategories []categoryEntry `json:"inspire_categories"`
		Imprint *struct {
			Date string `json:"date"`
		} `json:"imprint"`
	} `json:"reference"`
	Record *struct {
		Ref string `json:"$ref"`
	} `json:"record"`
}

type titleEntry struct {
	Title string `json:"title"`
}

type authorEntry struct {
	FullName string `json:"full_name"`
}

type categoryEntry struct {
	Term string `json:"term"`
}

// parsePaper converts a literature record's metadata into a Paper. The
// control number is mandatory (it is the graph node key); every other
// field degrades to its zero value when absent.
func parsePaper(m paperMetadata) (types.Paper, error) {
	if m.ControlNumber == 0 {
		return types.Paper{}, fmt.Errorf("record has no control number")
	}

	p := types.Paper{
		ID:    strconv.FormatInt(m.ControlNumber, 10),
		Title: "Unknown Title",
	}
	if len(m.Titles) > 0 && m.Titles[0].Title != "" {
		p.Title = m.Titles[0].Title
	}
	for _, a := range m.Authors {
		if a.FullName != "" {
			p.Authors = append(p.Authors, a.FullName)
		}
	}
	if len(m.ArxivEprints) > 0 {
		p.ArxivID = m.ArxivEprints[0].Value
	}
	for _, c := range m.InspireCategories {
		if c.Term != "" {
			p.Categories = append(p.Categories, c.Term)
		}
	}

	date := m.PreprintDate
	if date == "" && len(m.Imprints) > 0 {
		date = m.Imprints[0].Date
	}
	p.Year = parseYear(date)

	return p, nil
}

// parseReference converts one entry of a record's reference list. An entry
// carrying neither a reference blob nor a record link is malformed and
// dropped (ok is false); within a well-formed entry missing fields degrade
// to defaults.
func parseReference(raw rawReference) (types.Reference, bool) {
	if raw.Reference == nil && raw.Record == nil {
		return types.Reference{}, false
	}

	ref := types.Reference{Title: "Unknown Title"}

	if raw.Record != nil {
		// The record link resolves the citation to a catalogued paper;
		// its id is the trailing path segment of the $ref URL.
		if i := strings.LastIndex(raw.Record.Ref, "/"); i >= 0 {
			ref.InspireID = raw.Record.Ref[i+1:]
		} else {
			ref.InspireID = raw.Record.Ref
		}
	}

	if r := raw.Reference; r != nil {
		if r.Title != nil && r.Title.Title != "" {
			ref.Title = r.Title.Title
		}
		for _, a := range r.Authors {
			if a.FullName != "" {
				ref.Authors = append(ref.Authors, a.FullName)
			}
		}
		ref.ArxivID = r.ArxivEprint
		for _, c := range r.InspireCategories {
			if c.Term != "" {
				ref.Categories = append(ref.Categories, c.Term)
			}
		}
		if r.Imprint != nil {
			ref.Year = parseYear(r.Imprint.Date)
		}
	}

	return ref, true
}

// parseYear extracts the leading year from an ISO-style date ("2023-01-15"
// or "2023"). Returns 0 when the date is absent or unparseable.
func parseYear(date string) int {
	if date == "" {
		return 0
	}
	head, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return year
}
