// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds and queries in-memory citation graphs. A
// CitationNetwork holds papers keyed by INSPIRE record id, the forward
// citation edges, and a derived reverse-citation index kept consistent with
// the forward edges by every mutating operation.
package network

import "github.com/pdiddy/refnet/pkg/types"

// CitationNetwork is the citation graph for one build run. The zero value
// is not usable; call New.
type CitationNetwork struct {
	papers           map[string]types.Paper
	citations        map[string][]string
	reverseCitations map[string][]string
}

// New returns an empty citation network.
func New() *CitationNetwork {
	return &CitationNetwork{
		papers:           make(map[string]types.Paper),
		citations:        make(map[string][]string),
		reverseCitations: make(map[string][]string),
	}
}

// AddPaper inserts a paper, overwriting any previous entry with the same id.
// Last write wins: a paper first seen as a bare reference stub may later be
// replaced by a fuller record from a direct fetch.
func (n *CitationNetwork) AddPaper(p types.Paper) {
	n.papers[p.ID] = p
}

// AddCitation records a single citation edge from one paper to another,
// updating the reverse index in the same step.
func (n *CitationNetwork) AddCitation(citingID, citedID string) {
	n.citations[citingID] = append(n.citations[citingID], citedID)
	n.reverseCitations[citedID] = append(n.reverseCitations[citedID], citingID)
}

// AddCitations records the complete observed reference list for citingID.
// The forward list is replaced, not appended: a paper's references are
// processed once per traversal and the call captures that whole pass. Each
// cited paper gains a reverse edge. An explicit empty list marks the paper
// as processed with no resolvable references.
func (n *CitationNetwork) AddCitations(citingID string, citedIDs []string) {
	if citedIDs == nil {
		citedIDs = []string{}
	}
	n.citations[citingID] = citedIDs
	for _, citedID := range citedIDs {
		n.reverseCitations[citedID] = append(n.reverseCitations[citedID], citingID)
	}
}

// PaperCount returns the number of papers in the network.
func (n *CitationNetwork) PaperCount() int {
	return len(n.papers)
}

// Paper returns the paper with the given id, if present.
func (n *CitationNetwork) Paper(id string) (types.Paper, bool) {
	p, ok := n.papers[id]
	return p, ok
}

// AllPapers returns every paper in the network, in map iteration order.
func (n *CitationNetwork) AllPapers() []types.Paper {
	papers := make([]types.Paper, 0, len(n.papers))
	for _, p := range n.papers {
		papers = append(papers, p)
	}
	return papers
}

// CitingPapers returns the papers that cite the given paper, resolved
// through the reverse index. Ids without a paper record are skipped.
func (n *CitationNetwork) CitingPapers(id string) []types.Paper {
	return n.resolve(n.reverseCitations[id])
}

// CitedPapers returns the papers the given paper cites. Ids without a
// paper record are skipped.
func (n *CitationNetwork) CitedPapers(id string) []types.Paper {
	return n.resolve(n.citations[id])
}

func (n *CitationNetwork) resolve(ids []string) []types.Paper {
	var papers []types.Paper
	for _, id := range ids {
		if p, ok := n.papers[id]; ok {
			papers = append(papers, p)
		}
	}
	return papers
}

// Stats holds aggregate counts over a citation network.
type Stats struct {
	TotalPapers          int `json:"total_papers" yaml:"total_papers"`
	TotalCitations       int `json:"total_citations" yaml:"total_citations"`
	PapersWithReferences int `json:"papers_with_references" yaml:"papers_with_references"`
	PapersBeingCited     int `json:"papers_being_cited" yaml:"papers_being_cited"`
}

// Stats computes aggregate counts for the network.
func (n *CitationNetwork) Stats() Stats {
	s := Stats{TotalPapers: len(n.papers)}
	for _, cited := range n.citations {
		s.TotalCitations += len(cited)
		if len(cited) > 0 {
			s.PapersWithReferences++
		}
	}
	for _, citing := range n.reverseCitations {
		if len(citing) > 0 {
			s.PapersBeingCited++
		}
	}
	return s
}

// Snapshot is the serializable form of a network: the three maps verbatim.
type Snapshot struct {
	Papers           map[string]types.Paper `json:"papers" yaml:"papers"`
	Citations        map[string][]string    `json:"citations" yaml:"citations"`
	ReverseCitations map[string][]string    `json:"reverse_citations" yaml:"reverse_citations"`
}

// Snapshot exports the network for formatting or archiving. The maps are
// shared, not copied; a network is read-only once built.
func (n *CitationNetwork) Snapshot() Snapshot {
	return Snapshot{
		Papers:           n.papers,
		Citations:        n.citations,
		ReverseCitations: n.reverseCitations,
	}
}
