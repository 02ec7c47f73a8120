/*
 * main.go, part of goCell.
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

// cellcmp compares crystal structures stored as goCell documents.
//
// Usage:
//
//	cellcmp compare A B [--tolerance 1e-5]
//	cellcmp info FILE...
//	cellcmp batch MANIFEST [--workers N]
//	cellcmp plot A B -o deviations.png
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rmera/gocell/cmd/cellcmp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrNotEquivalent) {
			fmt.Fprintln(os.Stderr, "cellcmp:", err)
		}
		os.Exit(1)
	}
}
