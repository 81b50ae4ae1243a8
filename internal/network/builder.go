// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/refnet/pkg/types"
)

// PaperSource fetches paper metadata and reference lists from a
// bibliographic catalog. Implementations may fail transiently; the builder
// treats reference-list failures as per-node, not fatal.
type PaperSource interface {
	// GetPaperByArxiv resolves an arXiv id to a catalogued paper.
	GetPaperByArxiv(ctx context.Context, arxivID string) (types.Paper, error)

	// GetPaperReferences returns the outgoing references of the paper
	// with the given INSPIRE record id.
	GetPaperReferences(ctx context.Context, inspireID string) ([]types.Reference, error)
}

// Builder populates a CitationNetwork by following references from a root
// paper up to a bounded depth. Fetches are strictly sequential: the remote
// catalog is rate limited, and politeness toward it is a design constraint,
// not an implementation shortcut.
type Builder struct {
	Source PaperSource

	// Progress receives human-readable build progress; io.Discard when nil.
	Progress io.Writer
}

// workItem is one pending expansion: a paper id and its distance from the
// root.
type workItem struct {
	id    string
	depth int
}

// Build resolves the root paper by arXiv id and explores its reference
// graph up to maxDepth hops, mutating net in place. The root is depth 0; a
// node at depth == maxDepth is inserted but never expanded, so maxDepth 0
// yields a single-paper network.
//
// A root resolution failure aborts the build with net untouched. A failed
// reference fetch for any other paper is reported to Progress and skipped;
// that paper simply keeps no outgoing edges.
func (b *Builder) Build(ctx context.Context, net *CitationNetwork, arxivID string, maxDepth int) error {
	w := b.Progress
	if w == nil {
		w = io.Discard
	}

	root, err := b.Source.GetPaperByArxiv(ctx, arxivID)
	if err != nil {
		return fmt.Errorf("resolving root paper %q: %w", arxivID, err)
	}

	fmt.Fprintf(w, "root paper: %s\n", root.Title)
	net.AddPaper(root)

	// Explicit LIFO stack instead of recursion: traversal depth is
	// bounded by heap, not call-stack, memory. Most-recently-discovered
	// papers expand first (depth-first order).
	stack := []workItem{{id: root.ID, depth: 0}}
	visited := make(map[string]bool)
	processed := 0

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[item.id] || item.depth >= maxDepth {
			continue
		}
		visited[item.id] = true
		processed++

		fmt.Fprintf(w, "processing depth %d (paper %d): %s\n", item.depth, processed, item.id)

		refs, err := b.Source.GetPaperReferences(ctx, item.id)
		if err != nil {
			fmt.Fprintf(w, "  warning: references for %s unavailable: %v\n", item.id, err)
			continue
		}

		// References without an INSPIRE record id cannot become graph
		// nodes and are dropped here.
		var citedIDs []string
		for _, ref := range refs {
			if ref.InspireID == "" {
				continue
			}
			net.AddPaper(ref.Paper())
			citedIDs = append(citedIDs, ref.InspireID)
			if item.depth+1 < maxDepth {
				stack = append(stack, workItem{id: ref.InspireID, depth: item.depth + 1})
			}
		}

		net.AddCitations(item.id, citedIDs)
	}

	fmt.Fprintf(w, "network build complete: %d papers\n", net.PaperCount())
	return nil
}
