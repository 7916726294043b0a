// Command quad runs the composite quadrature rules from the command line.
//
//	quad trapezoidal            # ∫_0^2 x⁴-2x+1 dx, N=10
//	quad simpson --n 20
//	quad velocities --file res/velocities.txt
//	quad converge --rule simpson --levels 10,100,1000
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	)
}

func main() {
	slog.SetDefault(newLogger(os.Stderr, slog.LevelInfo))

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("quad failed", "err", err)
		os.Exit(1)
	}
}
