/*
 * plot.go, part of goCell.
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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	cell "github.com/rmera/gocell"
	"github.com/rmera/gocell/cellplot"
	"github.com/rmera/gocell/internal/logging"
)

func plotCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "plot A B",
		Short: "Plot the per-atom deviations between two structures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readPair(args)
			if err != nil {
				return err
			}
			R, err := cell.Compare(a, b, options())
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s vs %s", filepath.Base(args[0]), filepath.Base(args[1]))
			if err := cellplot.DeviationPlot(R, a.Symbols(), title, output); err != nil {
				return err
			}
			logging.For("plot").Info("plot written", "file", output)
			fmt.Fprintln(cmd.OutOrStdout(), R)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "deviations.png", "PNG file to write")
	return cmd
}
