// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"strings"
	"testing"

	"github.com/pdiddy/refnet/pkg/types"
)

func TestToBibTeXFull(t *testing.T) {
	ref := types.Reference{
		Title:      "A Comprehensive Study of Quantum Field Theory",
		Authors:    []string{"Albert Einstein", "Niels Bohr", "Werner Heisenberg"},
		ArxivID:    "quant-ph/9901001",
		InspireID:  "999999",
		Categories: []string{"quant-ph", "hep-th"},
		Year:       1999,
	}

	bibtex := ToBibTeX(ref)

	if !strings.HasPrefix(bibtex, "@article{") {
		t.Errorf("missing @article prefix: %q", bibtex)
	}
	if !strings.HasSuffix(bibtex, "}\n") {
		t.Errorf("missing closing brace: %q", bibtex)
	}
	for _, want := range []string{
		"title = {A Comprehensive Study of Quantum Field Theory}",
		"author = {Albert Einstein and Niels Bohr and Werner Heisenberg}",
		"year = {1999}",
		"eprint = {quant-ph/9901001}",
		"archivePrefix = {arXiv}",
		"primaryClass = {quant-ph}",
	} {
		if !strings.Contains(bibtex, want) {
			t.Errorf("output missing %q:\n%s", want, bibtex)
		}
	}

	keyLine := strings.SplitN(bibtex, "\n", 2)[0]
	if !strings.Contains(keyLine, "Einstein") || !strings.Contains(keyLine, "1999") {
		t.Errorf("key line = %q, want first author last name and year", keyLine)
	}
}

func TestToBibTeXMinimal(t *testing.T) {
	ref := types.Reference{Title: "Minimal Reference"}

	bibtex := ToBibTeX(ref)

	if !strings.Contains(bibtex, "title = {Minimal Reference}") {
		t.Errorf("missing title: %q", bibtex)
	}
	for _, absent := range []string{"author =", "year =", "eprint =", "archivePrefix", "primaryClass"} {
		if strings.Contains(bibtex, absent) {
			t.Errorf("output has %q for an empty field:\n%s", absent, bibtex)
		}
	}
}

func TestBibtexKey(t *testing.T) {
	tests := []struct {
		name string
		ref  types.Reference
		want string
	}{
		{
			name: "author year and title words",
			ref: types.Reference{
				Title:   "Quantum Field Theory in Curved Spacetime",
				Authors: []string{"John von Doe"},
				Year:    2023,
			},
			want: "Doe2023QuantumField",
		},
		{
			name: "no author",
			ref:  types.Reference{Title: "Anonymous Paper", Year: 2023},
			want: "Unknown2023AnonymousPaper",
		},
		{
			name: "no year",
			ref:  types.Reference{Title: "Undated Work", Authors: []string{"Jane Roe"}},
			want: "RoeYYYYUndatedWork",
		},
		{
			name: "punctuation stripped",
			ref: types.Reference{
				Title:   "Spin-1/2 Systems: A Review",
				Authors: []string{"A. B. O'Neil"},
				Year:    2001,
			},
			want: "ONeil2001Spin12Systems",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bibtexKey(tt.ref); got != tt.want {
				t.Errorf("bibtexKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToBibTeXListSeparatesEntries(t *testing.T) {
	refs := []types.Reference{
		{Title: "First", Authors: []string{"A One"}, Year: 2020},
		{Title: "Second", Authors: []string{"B Two"}, Year: 2021},
	}

	out := ToBibTeXList(refs)

	if strings.Count(out, "@article{") != 2 {
		t.Errorf("want 2 entries:\n%s", out)
	}
	if !strings.Contains(out, "}\n\n@article{") {
		t.Errorf("entries not separated by a blank line:\n%s", out)
	}
}
