// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/refnet/internal/network"
	"github.com/pdiddy/refnet/pkg/types"
)

func buildTestNetwork() *network.CitationNetwork {
	n := network.New()
	n.AddPaper(types.Paper{ID: "100", Title: "Root", Authors: []string{"A", "B"}, ArxivID: "2301.00001", Categories: []string{"hep-th"}, Year: 2023})
	n.AddPaper(types.Paper{ID: "200", Title: "Ref A", Authors: []string{"C"}, Year: 2020})
	n.AddPaper(types.Paper{ID: "300", Title: "Ref B"})
	n.AddCitations("100", []string{"200", "300"})
	n.AddCitations("200", []string{"300"})
	return n
}

func TestSaveSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveSnapshot(ctx, buildTestNetwork().Snapshot()))

	papers, err := store.PaperCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, papers)

	citations, err := store.CitationCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, citations)
}

func TestSaveSnapshotReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveSnapshot(ctx, buildTestNetwork().Snapshot()))

	small := network.New()
	small.AddPaper(types.Paper{ID: "1", Title: "Only"})
	require.NoError(t, store.SaveSnapshot(ctx, small.Snapshot()))

	papers, err := store.PaperCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, papers)

	citations, err := store.CitationCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, citations)
}

func TestNewStoreCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "graph.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
