/*
 * batch.go, part of goCell.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cell

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is a couple of structures to be compared. The structures are
// obtained by calling A and B, which are usually file readers.
type Pair struct {
	Name string
	A    func() (*Cell, error)
	B    func() (*Cell, error)
}

// FilePair returns a Pair that reads the structure documents a and b.
func FilePair(name, a, b string) Pair {
	return Pair{
		Name: name,
		A:    func() (*Cell, error) { return ReadFile(a) },
		B:    func() (*Cell, error) { return ReadFile(b) },
	}
}

// PairResult is the outcome of comparing one Pair.
type PairResult struct {
	Name   string
	Report *Report
}

// CompareAll loads and compares all the pairs, using at most workers
// goroutines (all available CPUs if workers < 1). The results are returned in the same
// order as the pairs. The first error (from a loader or a shape mismatch) stops the
// whole batch, and is returned. Pairs that are not equivalent are not an error.
func CompareAll(ctx context.Context, pairs []Pair, opts *Options, workers int) ([]PairResult, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]PairResult, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		i, p := i, p // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			R, err := comparePair(p, opts)
			if err != nil {
				return err
			}
			results[i] = PairResult{Name: p.Name, Report: R}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func comparePair(p Pair, opts *Options) (*Report, error) {
	a, err := p.A()
	if err != nil {
		return nil, fmt.Errorf("pair %s: %w", p.Name, err)
	}
	b, err := p.B()
	if err != nil {
		return nil, fmt.Errorf("pair %s: %w", p.Name, err)
	}
	R, err := Compare(a, b, opts)
	if err != nil {
		return nil, fmt.Errorf("pair %s: %w", p.Name, errDecorate(err, "CompareAll"))
	}
	return R, nil
}
