/*
 * main.go, part of tcint.
 *
 * Copyright 2024 The tcint Authors
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

// tcint computes the three-center overlap integrals between an orbital and an
// auxiliary basis for a molecule, and writes the resulting tensor to a compressed file.
//
//	tcint --geometry water.xyz --basis def2-svp.yaml --aux def2-svp-ri.yaml --out water.zst
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmera/tcint"
	"github.com/rmera/tcint/basis"
	"github.com/rmera/tcint/tcio"
	"github.com/rmera/tcint/tcmatrix"
	"github.com/rmera/tcint/tcplot"
	"github.com/rmera/tcint/threec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "tcint",
		Short: "Three-center overlap integrals over Gaussian basis sets",
		Long: `tcint computes the integrals (p aux q) between all the pairs of functions p, q
of an orbital basis and all the functions aux of an auxiliary basis, placed on the
atoms of a molecule, and stores them as one orbital x orbital matrix per auxiliary
function. Optionally, the auxiliary functions are orthogonalized with the inverse
square root of their overlap matrix.

Settings can also be given in a YAML file (--config) or as TCINT_* environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(c.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			return run(cmd.Context(), c, logger)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML configuration file")
	f.StringP("geometry", "g", "", "molecule geometry, in xyz format")
	f.StringP("basis", "b", "", "orbital basis set file (JSON or YAML)")
	f.StringP("aux", "a", "", "auxiliary basis set file (JSON or YAML)")
	f.StringP("out", "o", "tensor.zst", "output file; the extension selects the compression (.zst, .gz, .flate, .lzw, .raw)")
	f.Float64("accuracy", threec.DefaultAccuracy, "screening accuracy for primitive triples")
	f.Int("cpus", 0, "number of concurrent workers (default: all logical CPUs)")
	f.Bool("orthogonalize", false, "orthogonalize the auxiliary functions with the inverse square root of their overlap")
	f.Float64("eps", 1e-8, "smallest eigenvalue of the auxiliary overlap kept when orthogonalizing")
	f.String("plot", "", "if given, save a histogram of the magnitude of the integrals to this file")
	f.BoolP("verbose", "v", false, "debug output")
	f.Bool("bohr", false, "the geometry is in bohr, not Angstrom")
	return cmd
}

// run does the actual work, once the configuration is settled.
func run(ctx context.Context, c *Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	symbols, coords, err := tcint.XYZFileRead(c.Geometry)
	if err != nil {
		return err
	}
	if !c.Bohr {
		coords.Scale(tcint.Angstrom2Bohr, coords)
	}
	log.Info("Geometry read", zap.String("file", c.Geometry), zap.Int("atoms", len(symbols)))
	build := func(name string) (*basis.Basis, error) {
		set, err := basis.LoadSet(name)
		if err != nil {
			return nil, err
		}
		return set.Build(symbols, coords)
	}
	orb, err := build(c.Basis)
	if err != nil {
		return err
	}
	aux, err := build(c.Aux)
	if err != nil {
		return err
	}
	log.Info("Basis sets placed",
		zap.Int("orbShells", orb.Len()), zap.Int("orbFunctions", orb.Size()),
		zap.Int("auxShells", aux.Len()), zap.Int("auxFunctions", aux.Size()))

	O := tcmatrix.DefaultOptions()
	O.Accuracy(c.Accuracy)
	O.Cpus(c.Cpus)
	O.Eps(c.Eps)
	O.Logger(log)
	t, err := tcmatrix.FillContext(ctx, aux, orb, O)
	if err != nil {
		return err
	}
	if c.Orthogonalize {
		t, err = tcmatrix.Orthogonalize(t, aux, O)
		if err != nil {
			return err
		}
	}
	log.Info("Tensor ready", zap.Stringer("stats", t.Stats(c.Accuracy)), zap.Float64("norm", t.Norm()))
	if err := tcio.Write(c.Out, t); err != nil {
		return err
	}
	log.Info("Tensor written", zap.String("file", c.Out), zap.String("compression", tcio.Compression(c.Out)))
	if c.Plot != "" {
		if err := tcplot.MagnitudeHistogram(t, c.Plot, 40, c.Accuracy*1e-3); err != nil {
			return err
		}
		log.Info("Histogram saved", zap.String("file", c.Plot))
	}
	return nil
}
