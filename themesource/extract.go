/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package themesource

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/themeref/extract"
	"bennypowers.dev/themeref/fs"
	"bennypowers.dev/themeref/token"
)

// Extract loads one theme source file and builds a fresh index from it.
// Each call produces a private index; nothing is shared between runs.
func Extract(filesystem fs.FileSystem, path string, cfg extract.Config) (*token.Index, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme source %s: %w", path, err)
	}

	tree, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme source %s: %w", path, err)
	}

	idx := token.NewIndex()
	extract.Walk(tree, "", cfg, idx)
	return idx, nil
}

// ExtractAll extracts every theme source concurrently and merges the
// resulting indices. Results land in a slice indexed by input position
// and are merged strictly in input order after the join, so collision
// tie-breaks always resolve to the earliest configured file and repeated
// runs over the same inputs produce a deeply-equal index.
func ExtractAll(ctx context.Context, filesystem fs.FileSystem, paths []string, cfg extract.Config) (*token.Index, error) {
	indices := make([]*token.Index, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			idx, err := Extract(filesystem, path, cfg)
			if err != nil {
				return err
			}
			indices[i] = idx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return token.Merge(indices), nil
}
