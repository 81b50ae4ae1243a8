// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value records shared across refnet stages.
package types

// Paper holds the catalogued metadata for a single publication. Papers are
// the nodes of a citation network, keyed by the INSPIRE-assigned record id.
type Paper struct {
	// ID is the INSPIRE literature record id (control number), unique
	// within a network.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author full names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// ArxivID is the arXiv eprint identifier, empty when the record has
	// no preprint.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// Categories lists the INSPIRE subject categories (e.g. "hep-th").
	Categories []string `json:"categories" yaml:"categories"`

	// Year is the publication or preprint year; 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`
}

// Reference is one entry parsed from a paper's reference list. It is a
// transient result: a reference that carries an InspireID is promoted into a
// Paper during network construction, one that does not is dropped.
type Reference struct {
	// Title is the cited work's title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the cited work's author full names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// ArxivID is the cited work's arXiv eprint identifier, if any.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// InspireID is the INSPIRE record id of the cited work, empty when
	// the API could not resolve the citation to a catalogued record.
	InspireID string `json:"inspire_id,omitempty" yaml:"inspire_id,omitempty"`

	// Categories lists the cited work's subject categories.
	Categories []string `json:"categories" yaml:"categories"`

	// Year is the cited work's publication year; 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`
}

// Paper converts a resolved reference into a Paper keyed by its InspireID.
// Callers must check InspireID is non-empty first.
func (r Reference) Paper() Paper {
	return Paper{
		ID:         r.InspireID,
		Title:      r.Title,
		Authors:    r.Authors,
		ArxivID:    r.ArxivID,
		Categories: r.Categories,
		Year:       r.Year,
	}
}

// HasCategory reports whether the reference carries at least one of the
// given categories. An empty filter matches everything.
func (r Reference) HasCategory(categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range r.Categories {
		for _, want := range categories {
			if c == want {
				return true
			}
		}
	}
	return false
}
