/*
 * root.go, part of goCell.
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

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cell "github.com/rmera/gocell"
	"github.com/rmera/gocell/internal/logging"
)

// ErrNotEquivalent is returned by the commands when at least one comparison
// found different structures. The report has already been printed.
var ErrNotEquivalent = errors.New("structures are not equivalent")

var (
	logLevel  string
	logFormat string
	tolerance float64
)

// Execute runs the cellcmp command line with the process arguments.
func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

// NewRootCmd builds the cellcmp command tree, printing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "cellcmp",
		Short:         "Compare crystal structures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := logging.Setup(logging.Config{Level: logLevel, Format: logFormat, Out: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			if err := cell.ValidTolerance(tolerance); err != nil {
				return fmt.Errorf("--tolerance: %w", err)
			}
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")
	root.PersistentFlags().Float64VarP(&tolerance, "tolerance", "t", cell.DefaultTolerance, "tolerance for lattice vectors and fractional coordinates")

	root.AddCommand(compareCmd(), infoCmd(), batchCmd(), plotCmd())
	return root
}

// readPair reads the two structure documents given as arguments.
func readPair(args []string) (*cell.Cell, *cell.Cell, error) {
	a, err := cell.ReadFile(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := cell.ReadFile(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func options() *cell.Options {
	o := cell.DefaultOptions()
	o.Tolerance(tolerance)
	return o
}
