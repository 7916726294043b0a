package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/alexshd/quadrature"
)

// The textbook integrand x⁴ - 2x + 1 over [0, 2]; the exact integral is 4.4.
const (
	lower     = 0.0
	upper     = 2.0
	reference = 4.4
)

func quartic(x float64) float64 {
	return x*x*x*x - 2*x + 1
}

var bigQuartic = quadrature.BigPolynomial(1, -2, 0, 0, 1)

type app struct {
	cfg    Config
	logger *slog.Logger
	stderr io.Writer

	// Persistent flags
	configPath string
	logLevel   string
	precision  uint
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, logger: slog.Default()}

	root := &cobra.Command{
		Use:   "quad",
		Short: "Composite numerical integration: trapezoidal and Simpson's rules",
		Long: `quad approximates definite integrals by composite quadrature.

It integrates x^4 - 2x + 1 over [0, 2] (exact value 4.4) with either rule,
integrates tabulated velocity samples into a distance, and measures the
observed order of convergence of each rule.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().UintVar(&a.precision, "precision", 0, "Mantissa bits; above 53 uses arbitrary-precision rules")

	root.AddCommand(
		a.ruleCmd(quadrature.RuleTrapezoidal),
		a.ruleCmd(quadrature.RuleSimpson),
		a.velocitiesCmd(),
		a.convergeCmd(),
	)

	return root
}

// setup loads the config file and applies persistent flag overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	level, _ := parseLevel(cfg.LogLevel)
	a.logger = newLogger(a.stderr, level)
	a.cfg = cfg

	a.logger.Debug("configuration loaded", "config", a.configPath, "precision", cfg.Precision)
	return nil
}

func (a *app) ruleCmd(rule quadrature.Rule) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   string(rule),
		Short: fmt.Sprintf("Integrate x^4 - 2x + 1 over [0, 2] with the %s rule", rule),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				n = a.cfg.Subdivisions
			}

			if a.cfg.Precision > 53 {
				return a.runBig(cmd.OutOrStdout(), rule, n)
			}

			q, err := quadrature.Integrate(rule, quartic, lower, upper, n)
			if err != nil {
				return err
			}
			pct, err := quadrature.PercentError(q, reference)
			if err != nil {
				return err
			}

			a.logger.Debug("integrated", "rule", rule, "n", n, "value", q)
			fmt.Fprintf(cmd.OutOrStdout(), "The integral is %v with %v percent error\n", q, pct)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", quadrature.DefaultSubdivisions, "Number of subdivisions")

	return cmd
}

func (a *app) runBig(w io.Writer, rule quadrature.Rule, n int) error {
	prec := a.cfg.Precision
	lo, hi := quadrature.NewFloat(lower, prec), quadrature.NewFloat(upper, prec)

	var (
		q   *big.Float
		err error
	)
	switch rule {
	case quadrature.RuleSimpson:
		q, err = quadrature.SimpsonBig(bigQuartic, lo, hi, n)
	default:
		q, err = quadrature.TrapezoidalBig(bigQuartic, lo, hi, n)
	}
	if err != nil {
		return err
	}

	ref, _ := new(big.Float).SetPrec(prec).SetString("4.4")
	pct := new(big.Float).SetPrec(prec).Sub(q, ref)
	pct.Quo(pct, ref)
	pct.Mul(pct, quadrature.NewFloat(100, prec))

	digits := int(float64(prec) * math.Log10(2))
	a.logger.Debug("integrated", "rule", rule, "n", n, "precision", prec)
	fmt.Fprintf(w, "The integral is %s with %s percent error\n", q.Text('g', digits), pct.Text('g', 6))
	return nil
}

func (a *app) velocitiesCmd() *cobra.Command {
	var (
		file     string
		n        int
		ruleName string
	)

	cmd := &cobra.Command{
		Use:   "velocities",
		Short: "Integrate tabulated velocity samples into distance travelled",
		Long: `Reads tab-separated (time, velocity) records, one per line, and integrates
the velocity column over [0, samples-1] treating the sample index as time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("file") {
				file = a.cfg.Velocities.File
			}
			if !flags.Changed("n") {
				n = a.cfg.Velocities.Subdivisions
			}
			if !flags.Changed("rule") {
				ruleName = a.cfg.Velocities.Rule
			}

			rule, err := quadrature.ParseRule(ruleName)
			if err != nil {
				return err
			}

			vs, err := quadrature.LoadSamplesFile(file)
			if err != nil {
				return err
			}
			a.logger.Debug("samples loaded", "file", file, "count", len(vs))

			table := quadrature.NewTable(vs)
			lo, hi := table.Domain()

			distance, err := quadrature.IntegrateTable(rule, table, lo, hi, n)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "The distance travelled is %v\n", distance)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Tab-separated samples file (default from config: res/velocities.txt)")
	cmd.Flags().IntVar(&n, "n", 100, "Number of subdivisions")
	cmd.Flags().StringVar(&ruleName, "rule", string(quadrature.RuleTrapezoidal), "Rule: trapezoidal or simpson")

	return cmd
}

func (a *app) convergeCmd() *cobra.Command {
	var (
		ruleName string
		levels   []int
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Measure the observed order of convergence on x^4 - 2x + 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("rule") {
				ruleName = a.cfg.Converge.Rule
			}
			if !flags.Changed("levels") {
				levels = a.cfg.Converge.Levels
			}
			if !flags.Changed("workers") {
				workers = a.cfg.Converge.Workers
			}

			rule, err := quadrature.ParseRule(ruleName)
			if err != nil {
				return err
			}

			study := quadrature.Config{Rule: rule, Levels: levels, Workers: workers}
			results, err := quadrature.Run(cmd.Context(), quartic, lower, upper, reference, study)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "N=%d h=%g integral=%v percent error=%v\n", r.N, r.H, r.Value, r.RelError*100)
			}

			order, err := quadrature.FitOrder(results)
			if err != nil {
				a.logger.Warn("cannot fit convergence order", "err", err)
				return nil
			}
			fmt.Fprintf(out, "Observed order %.3f (expected %d, R² %.4f)\n", order.Slope, rule.Order(), order.RSquared)
			return nil
		},
	}
	cmd.Flags().StringVar(&ruleName, "rule", string(quadrature.RuleTrapezoidal), "Rule: trapezoidal or simpson")
	cmd.Flags().IntSliceVar(&levels, "levels", nil, "Subdivision counts, comma separated (default 10,100,1000)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Summation workers per level")

	return cmd
}
