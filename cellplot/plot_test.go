/*
 * plot_test.go, part of goCell.
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

package cellplot

import (
	"os"
	"path/filepath"
	"testing"

	cell "github.com/rmera/gocell"
)

func TestDeviationPlot(Te *testing.T) {
	a, err := cell.ReadFile("../test/NaCl.json")
	if err != nil {
		Te.Fatal(err)
	}
	for _, other := range []string{"../test/NaCl.yaml", "../test/KCl.json"} {
		b, err := cell.ReadFile(other)
		if err != nil {
			Te.Fatal(err)
		}
		R, err := cell.Compare(a, b, nil)
		if err != nil {
			Te.Fatal(err)
		}
		name := filepath.Join(Te.TempDir(), "dev.png")
		if err := DeviationPlot(R, a.Symbols(), "NaCl", name); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
			Te.Errorf("no plot written for %s: %v", other, err)
		}
	}
	R := &cell.Report{}
	if err := DeviationPlot(R, nil, "empty", filepath.Join(Te.TempDir(), "e.png")); err == nil {
		Te.Error("an empty report should not be plotted")
	}
}
