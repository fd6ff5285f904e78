// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topeigen/edgelist"
	"github.com/katalvlaran/topeigen/sparse"
)

type genOpts struct {
	weightMin float64
	weightMax float64
}

func newGenCommand(a *app) *cobra.Command {
	opts := genOpts{}

	cmd := &cobra.Command{
		Use:   "gen <n> <p> <output>",
		Short: "Write a random symmetric edge list",
		Long: `Samples every unordered pair {i,j}, i<j<n, as an edge with probability p and
writes the result as an edge list suitable for "topeigen run". Weights are 1
unless --weight-min/--weight-max give a uniform range.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n: %q is not an integer", args[0])
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("p: %q is not a number", args[1])
			}
			return a.gen(cmd.Context(), n, p, args[2], opts)
		},
	}
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Float64Var(&opts.weightMin, "weight-min", 1, "Lower bound of edge weights")
	cmd.Flags().Float64Var(&opts.weightMax, "weight-max", 1, "Upper bound of edge weights")

	return cmd
}

func (a *app) gen(ctx context.Context, n int, p float64, target string, opts genOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.weightMax < opts.weightMin {
		return fmt.Errorf("weight-max %v < weight-min %v", opts.weightMax, opts.weightMin)
	}
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	weight := sparse.UnitWeight
	if opts.weightMin != 1 || opts.weightMax != 1 {
		weight = sparse.UniformWeight(opts.weightMin, opts.weightMax)
	}

	m, err := sparse.RandomSymmetric(n, p, rand.New(rand.NewSource(seed)), weight)
	if err != nil {
		return err
	}
	if m.NumEdges() == 0 {
		a.log.WarnContext(ctx, "no edges sampled; output will not be readable by run", "n", n, "p", p)
	}

	out, err := a.createOutput(ctx, target)
	if err != nil {
		return err
	}
	if err = edgelist.WriteEdges(out, m); err != nil {
		_ = out.Abort()
		return err
	}
	if err = out.Commit(); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "edge list written", "target", target, "rows", m.Dim(), "edges", m.NumEdges(), "seed", seed)

	return nil
}
