// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refnet/pkg/types"
)

var referencesCmd = &cobra.Command{
	Use:   "references <arxiv-id>",
	Short: "Fetch the reference list of a paper",
	Long: `References resolves a paper by its arXiv id, fetches the paper's
reference list from INSPIRE-HEP, and renders it in the selected output
format. Use --categories to keep only references tagged with at least one
of the given INSPIRE categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runReferences,
}

func init() {
	referencesCmd.Flags().String("categories", "", "comma-separated category filter (e.g. hep-th,hep-ph)")

	rootCmd.AddCommand(referencesCmd)
}

func runReferences(cmd *cobra.Command, args []string) error {
	arxivID := args[0]
	cfg := loadConfig()

	writer, err := effectiveWriter(cmd, cfg)
	if err != nil {
		return err
	}
	categories := effectiveCategories(cmd, cfg)

	client := newClient(cfg)
	ctx := cmd.Context()

	paper, err := client.GetPaperByArxiv(ctx, arxivID)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "found paper: %s\n", paper.Title)

	refs, err := client.GetPaperReferences(ctx, paper.ID)
	if err != nil {
		return err
	}

	filtered := refs[:0:0]
	for _, ref := range refs {
		if ref.HasCategory(categories) {
			filtered = append(filtered, ref)
		}
	}

	if err := writer.WriteReferences(filtered); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "processed %d references\n", len(filtered))
	return nil
}

// effectiveCategories resolves the category filter: the flag wins, the
// config file is the fallback, empty means no filtering.
func effectiveCategories(cmd *cobra.Command, cfg types.Config) []string {
	if cmd.Flags().Changed("categories") {
		raw, _ := cmd.Flags().GetString("categories")
		var categories []string
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
		return categories
	}
	return cfg.Categories
}
