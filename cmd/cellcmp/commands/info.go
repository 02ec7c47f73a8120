/*
 * info.go, part of goCell.
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

func infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Print the formula, size, volume and density of structures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.For("info")
			out := cmd.OutOrStdout()
			for _, name := range args {
				c, err := cell.ReadFile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s, %d atoms, volume %.4f", name, c.Formula(), c.Len(), c.Volume())
				d, err := c.Density()
				if err != nil {
					logger.Warn("can't compute density", "file", name, "error", err)
					fmt.Fprintln(out)
					continue
				}
				fmt.Fprintf(out, ", density %.4f g/cm3\n", d)
			}
			return nil
		},
	}
	return cmd
}
