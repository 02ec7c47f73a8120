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

// Package cellplot draws the results of cell comparisons.
package cellplot

import (
	"fmt"
	"image/color"
	"log"
	"math"

	cell "github.com/rmera/gocell"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// largest possible deviation of a fractional coordinate, once whole
// lattice translations are removed.
const maxDev = 0.5

func basicDevPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = "Max. fractional deviation"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

// DeviationPlot draws a bar chart with the deviation of each atom in the comparison
// that produced R, and saves it as a PNG in filename. Atoms within the tolerance are
// drawn in blue, the others in red. symbols, if not nil, are used to label the atoms.
func DeviationPlot(R *cell.Report, symbols []string, title, filename string) error {
	n := len(R.AtomDevs)
	if n == 0 {
		return fmt.Errorf("cellplot: no atoms to plot")
	}
	if symbols != nil && len(symbols) != n {
		return fmt.Errorf("cellplot: %d symbols given for %d atoms", len(symbols), n)
	}
	ok := make(plotter.Values, n)
	bad := make(plotter.Values, n)
	failing := make(map[int]bool, len(R.PositionMismatches))
	for _, i := range R.PositionMismatches {
		failing[i] = true
	}
	labels := make([]string, n)
	for i, d := range R.AtomDevs {
		if math.IsNaN(d) {
			log.Printf("cellplot: atom %d has a NaN deviation. It will be drawn at %g", i, maxDev)
			d = maxDev
		}
		if failing[i] {
			bad[i] = d
		} else {
			ok[i] = d
		}
		labels[i] = fmt.Sprint(i)
		if symbols != nil {
			labels[i] = fmt.Sprintf("%d %s", i, symbols[i])
		}
	}
	p := basicDevPlot(title)
	w := vg.Points(8)
	okbars, err := plotter.NewBarChart(ok, w)
	if err != nil {
		return err
	}
	okbars.Color = color.RGBA{B: 200, A: 255}
	okbars.LineStyle.Width = 0
	badbars, err := plotter.NewBarChart(bad, w)
	if err != nil {
		return err
	}
	badbars.Color = color.RGBA{R: 220, A: 255}
	badbars.LineStyle.Width = 0
	tol := plotter.NewFunction(func(float64) float64 { return R.Tolerance })
	tol.Color = color.Gray{Y: 100}
	tol.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(okbars, badbars, tol)
	p.Legend.Add("within tolerance", okbars)
	p.Legend.Add("outside tolerance", badbars)
	p.Legend.Add(fmt.Sprintf("tolerance %g", R.Tolerance), tol)
	p.Legend.Top = true
	if p.Y.Max < 2*R.Tolerance {
		p.Y.Max = 2 * R.Tolerance
	}
	p.NominalX(labels...)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
