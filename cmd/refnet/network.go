// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refnet/internal/archive"
	"github.com/pdiddy/refnet/internal/network"
)

var networkCmd = &cobra.Command{
	Use:   "network <arxiv-id>",
	Short: "Build a citation network by following references",
	Long: `Network resolves a root paper by its arXiv id and follows its
references recursively up to --depth hops, assembling a citation graph.
The root is depth 0; papers discovered at the depth limit are included but
not expanded.

The graph is rendered in the selected output format. With --db it is also
written into a standalone SQLite file for downstream tooling.`,
	Args: cobra.ExactArgs(1),
	RunE: runNetwork,
}

func init() {
	networkCmd.Flags().Int("depth", 0, "reference-following depth (default from config, 1)")
	networkCmd.Flags().String("db", "", "also export the network to this SQLite file")

	rootCmd.AddCommand(networkCmd)
}

func runNetwork(cmd *cobra.Command, args []string) error {
	arxivID := args[0]
	cfg := loadConfig()

	writer, err := effectiveWriter(cmd, cfg)
	if err != nil {
		return err
	}

	depth := cfg.Network.DefaultDepth
	if cmd.Flags().Changed("depth") {
		depth, _ = cmd.Flags().GetInt("depth")
	}
	if depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", depth)
	}

	var progress io.Writer = io.Discard
	if effectiveVerbose(cmd, cfg) {
		progress = os.Stderr
	}

	builder := &network.Builder{
		Source:   newClient(cfg),
		Progress: progress,
	}
	net := network.New()

	ctx := cmd.Context()
	if err := builder.Build(ctx, net, arxivID, depth); err != nil {
		return err
	}

	stats := net.Stats()
	fmt.Fprintf(os.Stderr, "built network: %d papers, %d citations (%d with references, %d being cited)\n",
		stats.TotalPapers, stats.TotalCitations, stats.PapersWithReferences, stats.PapersBeingCited)

	if err := writer.WriteNetwork(net.Snapshot()); err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath != "" {
		store, err := archive.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveSnapshot(ctx, net.Snapshot()); err != nil {
			return fmt.Errorf("archiving network: %w", err)
		}
		fmt.Fprintf(os.Stderr, "network archived to %s\n", dbPath)
	}

	return nil
}
