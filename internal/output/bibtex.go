// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/refnet/pkg/types"
)

// ToBibTeX renders one reference as an @article block. Empty optional
// fields (authors, year, eprint, categories) are omitted.
func ToBibTeX(ref types.Reference) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@article{%s,\n", bibtexKey(ref)))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", ref.Title))

	if len(ref.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(ref.Authors, " and ")))
	}
	if ref.Year > 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", ref.Year))
	}
	if ref.ArxivID != "" {
		b.WriteString(fmt.Sprintf("  eprint = {%s},\n", ref.ArxivID))
		b.WriteString("  archivePrefix = {arXiv},\n")
	}
	if len(ref.Categories) > 0 {
		b.WriteString(fmt.Sprintf("  primaryClass = {%s},\n", ref.Categories[0]))
	}

	b.WriteString("}\n")
	return b.String()
}

// ToBibTeXList renders references as blank-line-separated @article blocks.
func ToBibTeXList(refs []types.Reference) string {
	entries := make([]string, len(refs))
	for i, ref := range refs {
		entries[i] = ToBibTeX(ref)
	}
	return strings.Join(entries, "\n")
}

// bibtexKey builds a citation key from the first author's last name, the
// year, and the leading title words, stripped to alphanumerics. Missing
// authors become "Unknown" and a missing year "YYYY".
func bibtexKey(ref types.Reference) string {
	author := "Unknown"
	if len(ref.Authors) > 0 {
		fields := strings.Fields(ref.Authors[0])
		if len(fields) > 0 {
			author = fields[len(fields)-1]
		}
	}

	year := "YYYY"
	if ref.Year > 0 {
		year = fmt.Sprintf("%d", ref.Year)
	}

	words := strings.Fields(ref.Title)
	if len(words) > 2 {
		words = words[:2]
	}
	titlePart := strings.Join(words, "")

	// Strip everything that is not alphanumeric so the key is a legal
	// BibTeX identifier.
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, author+year+titlePart)
}
