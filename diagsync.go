// Package diagsync synchronizes the B# compliance catalogue with the Roslyn
// diagnostics reference document. The catalogue is a curated markdown table
// mapping CS diagnostic codes to B# rule codes; the reference document is
// scraped vendor documentation. A sync run parses both, filters the
// reference entries, backfills blank catalogue cells, appends rows for new
// codes, and rewrites the catalogue in place.
package diagsync

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bsharp-lang/diagsync/pkg/catalog"
	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
	"github.com/bsharp-lang/diagsync/pkg/errors"
	"github.com/bsharp-lang/diagsync/pkg/filter"
	"github.com/bsharp-lang/diagsync/pkg/logging"
	"github.com/bsharp-lang/diagsync/pkg/sync"
)

// Default file locations, relative to the project root.
const (
	DefaultCataloguePath = "docs/compliance/diagnostics.md"
	DefaultReferencePath = "docs/compliance/roslyn-errors.md"
)

// Result reports what a sync run did.
type Result struct {
	// CataloguePath is the resolved catalogue file location.
	CataloguePath string

	// ReferencePath is the resolved reference document location.
	ReferencePath string

	// Extracted is the number of diagnostics found in the reference.
	Extracted int

	// Kept is the number of diagnostics surviving the filters.
	Kept int

	// Changes describes the merge outcome.
	Changes *sync.Changeset

	// Changed reports whether the reconstructed catalogue differs from the
	// original file content.
	Changed bool

	// DryRun reports whether the write was skipped.
	DryRun bool

	// Diff holds the unified diff of pending changes in dry-run mode.
	Diff string
}

// Sync runs the full pipeline: parse the catalogue, extract and filter the
// reference diagnostics, merge, and rewrite the catalogue. In dry-run mode
// the catalogue is left untouched and Result.Diff carries the pending
// changes. When the reconstruction is byte-identical to the original, no
// write occurs and Result.Changed is false.
func Sync(ctx context.Context, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	cataloguePath := resolve(c.root, c.cataloguePath)
	referencePath := resolve(c.root, c.referencePath)

	original, err := readFile(cataloguePath)
	if err != nil {
		return nil, err
	}
	reference, err := readFile(referencePath)
	if err != nil {
		return nil, err
	}

	filterCfg := filter.Config{
		Prefix:       c.prefix,
		Range:        c.codeRange,
		SemanticOnly: c.semanticOnly,
	}
	if c.includeFile != "" {
		if filterCfg.Include, err = diagnostics.LoadCodeSet(resolve(c.root, c.includeFile)); err != nil {
			return nil, err
		}
	}
	if c.excludeFile != "" {
		if filterCfg.Exclude, err = diagnostics.LoadCodeSet(resolve(c.root, c.excludeFile)); err != nil {
			return nil, err
		}
	}

	doc := catalog.Parse(original)
	if !doc.HasTable() {
		// Permissive: reconstruction will then emit no table content.
		logging.Warn().
			Str("file", cataloguePath).
			Msg("No catalogue table header found")
	}

	entries := diagnostics.Extract(reference)
	kept := filterCfg.Apply(entries)
	logging.Debug().
		Int("extracted", len(entries)).
		Int("kept", len(kept)).
		Msg("Filtered reference diagnostics")

	rows, changes := sync.Merge(doc.Rows, kept, c.fillOnly)
	doc.Rows = rows

	result := &Result{
		CataloguePath: cataloguePath,
		ReferencePath: referencePath,
		Extracted:     len(entries),
		Kept:          len(kept),
		Changes:       changes,
	}

	updated := doc.Reconstruct()
	if updated == original {
		logging.Info().Str("file", cataloguePath).Msg("No changes")
		return result, nil
	}
	result.Changed = true

	if c.dryRun {
		result.DryRun = true
		if result.Diff, err = sync.Diff(original, updated, cataloguePath); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.WriteFile(cataloguePath, []byte(updated), 0o644); err != nil {
		return nil, errors.WrapIO("write", cataloguePath, err)
	}

	logging.Info().
		Str("file", cataloguePath).
		Int("filled", len(result.Changes.Filled)).
		Int("appended", len(result.Changes.Appended)).
		Msg("Catalogue updated")
	return result, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// resolve joins a path with the root unless it is already absolute.
func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
