package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"warnkit/internal/snapshot"
	"warnkit/internal/warn"
)

// loadSnapshots reads every snapshot file concurrently and merges the results
// in argument order, so the combined sequence stays deterministic.
func loadSnapshots(ctx context.Context, paths []string) ([]warn.Record, error) {
	results := make([][]warn.Record, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			recs, err := snapshot.Read(path)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []warn.Record
	for _, recs := range results {
		merged = append(merged, recs...)
	}
	return merged, nil
}
