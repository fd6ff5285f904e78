// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topeigen/edgelist"
	"github.com/katalvlaran/topeigen/eigen"
	"github.com/katalvlaran/topeigen/metrics"
	"github.com/katalvlaran/topeigen/sparse"
)

// verifyDenseLimit caps the dimension for which --verify also runs the dense
// Jacobi reference.
const verifyDenseLimit = 512

func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input> <k> <output>",
		Short: "Compute the k dominant eigenpairs of an edge-list matrix",
		Long: `Reads a sparse symmetric matrix as an edge list ("<row> <col> <weight>" per
line, mirrored implicitly), extracts the k eigenpairs of largest magnitude by
power iteration with deflation and writes the eigenvalues on the first line
followed by one line per row holding that row's entry of every eigenvector.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("k: %q is not an integer", args[1])
			}
			return a.run(cmd.Context(), args[0], k, args[2])
		},
	}

	f := cmd.Flags()
	f.Int("iterations", eigen.DefaultIterations, "Power iterations per eigenpair")
	f.Int64("seed", 0, "Random seed for starting vectors (0 picks one from the clock)")
	f.String("estimator", eigen.SumRatio.String(), "Eigenvalue estimator: sum-ratio or rayleigh")
	f.Float64("tolerance", eigen.DefaultTolerance, "Stop a slot early once successive iterates differ by less than this (0 disables)")
	f.Bool("strict-numerics", eigen.DefaultStrictNumerics, "Fail on zero or non-finite norms instead of emitting NaN")
	f.Int("precision", edgelist.DefaultPrecision, "Digits after the decimal point in the output")
	f.Bool("verify", false, "Log residuals, orthogonality and, for small inputs, a dense reference")
	f.String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")

	return cmd
}

func (a *app) run(ctx context.Context, input string, k int, target string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := a.log.WithK(k)
	defer func() {
		if err != nil {
			log.LogResult(ctx, target, nil, err)
		}
	}()

	fmt.Fprintf(a.stdout, "Reading edgelist from file %s\n", input)
	m, err := a.readMatrix(ctx, input)
	if err != nil {
		return err
	}
	st := m.Stats()
	fmt.Fprintf(a.stdout, "Number of nodes = %d\n", st.N)
	fmt.Fprintf(a.stdout, "Number of edges = %d\n", st.Edges)
	log.LogMatrix(ctx, input, m)

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("solver configured",
		"seed", seed,
		"iterations", a.cfg.Iterations,
		"estimator", a.cfg.Estimator.String(),
		"tolerance", a.cfg.Tolerance,
	)

	opts := a.cfg.solverOptions(seed)
	opts = append(opts, eigen.WithObserver(eigen.ObserverFunc(log.LogSlot)))
	var collector *metrics.Collector
	if a.cfg.MetricsFile != "" {
		collector = metrics.NewCollector()
		opts = append(opts, eigen.WithObserver(collector))
	}

	fmt.Fprintf(a.stdout, "Computing %d largest eigenvalues and associated eigenvectors\n", k)
	res, err := eigen.Solve(m, k, opts...)
	if err != nil {
		return err
	}

	if a.cfg.Verify {
		a.verify(ctx, m, res)
	}

	if err = a.writeResult(ctx, target, res); err != nil {
		return err
	}
	log.LogResult(ctx, target, res, nil)

	if collector != nil {
		if err = collector.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) readMatrix(ctx context.Context, input string) (*sparse.Matrix, error) {
	r, err := a.openInput(ctx, input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return edgelist.Read(r)
}

func (a *app) writeResult(ctx context.Context, target string, res *eigen.Result) error {
	out, err := a.createOutput(ctx, target)
	if err != nil {
		return err
	}
	if err = edgelist.Write(out, res, edgelist.WithPrecision(a.cfg.Precision)); err != nil {
		_ = out.Abort()
		return err
	}

	return out.Commit()
}

// verify logs quality diagnostics; it never fails the run.
func (a *app) verify(ctx context.Context, m *sparse.Matrix, res *eigen.Result) {
	for i := 0; i < res.K(); i++ {
		r, err := res.Residual(m, i)
		if err != nil {
			a.log.WarnContext(ctx, "residual unavailable", "slot", i, "error", err)
			continue
		}
		a.log.InfoContext(ctx, "residual", "slot", i, "eigenvalue", res.Values[i], "norm", r)
	}
	a.log.InfoContext(ctx, "orthogonality", "max_overlap", res.MaxOverlap())

	if m.Dim() > verifyDenseLimit {
		return
	}
	ref, err := eigen.Reference(m, res.K())
	if err != nil {
		a.log.WarnContext(ctx, "dense reference failed", "error", err)
		return
	}
	for i := 0; i < ref.K() && i < res.K(); i++ {
		a.log.InfoContext(ctx, "dense reference",
			"slot", i,
			"reference", ref.Values[i],
			"power", res.Values[i],
			"abs_diff", math.Abs(ref.Values[i]-res.Values[i]),
		)
	}
}
