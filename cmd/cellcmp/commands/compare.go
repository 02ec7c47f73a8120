/*
 * compare.go, part of goCell.
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

	"github.com/spf13/cobra"

	cell "github.com/rmera/gocell"
	"github.com/rmera/gocell/internal/logging"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Check whether two structures are the same crystal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.For("compare")
			a, b, err := readPair(args)
			if err != nil {
				return err
			}
			logger.Debug("read structures", "a", args[0], "atoms_a", a.Len(), "b", args[1], "atoms_b", b.Len())
			R, err := cell.Compare(a, b, options())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), R)
			if !R.Equivalent() {
				logger.Info("structures differ", "failed", fmt.Sprint(R.Failed()))
				return ErrNotEquivalent
			}
			return nil
		},
	}
	return cmd
}
