/*
 * batch.go, part of goCell.
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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cell "github.com/rmera/gocell"
	"github.com/rmera/gocell/internal/logging"
)

// Manifest is a list of structure pairs to compare, read from YAML:
//
//	tolerance: 1.0e-5
//	workers: 4
//	pairs:
//	  - name: NaCl
//	    a: NaCl-abinit.json
//	    b: NaCl-reference.yaml
//
// Relative paths are taken from the directory of the manifest.
type Manifest struct {
	Tolerance *float64       `yaml:"tolerance"`
	Workers   int            `yaml:"workers"`
	Pairs     []ManifestPair `yaml:"pairs"`
}

type ManifestPair struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

// LoadManifest reads and validates a batch manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Pairs) == 0 {
		return nil, fmt.Errorf("manifest %s has no pairs", path)
	}
	if m.Tolerance != nil {
		if err := cell.ValidTolerance(*m.Tolerance); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	dir := filepath.Dir(path)
	for i, p := range m.Pairs {
		if p.A == "" || p.B == "" {
			return nil, fmt.Errorf("manifest %s: pair %d needs both a and b", path, i)
		}
		if p.Name == "" {
			m.Pairs[i].Name = fmt.Sprintf("%s-%s", filepath.Base(p.A), filepath.Base(p.B))
		}
		if !filepath.IsAbs(p.A) {
			m.Pairs[i].A = filepath.Join(dir, p.A)
		}
		if !filepath.IsAbs(p.B) {
			m.Pairs[i].B = filepath.Join(dir, p.B)
		}
	}
	return &m, nil
}

func batchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Compare all the structure pairs listed in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.For("batch")
			m, err := LoadManifest(args[0])
			if err != nil {
				return err
			}
			o := options()
			if m.Tolerance != nil && !cmd.Flags().Changed("tolerance") {
				o.Tolerance(*m.Tolerance)
			}
			if !cmd.Flags().Changed("workers") && m.Workers > 0 {
				workers = m.Workers
			}
			pairs := make([]cell.Pair, len(m.Pairs))
			for i, p := range m.Pairs {
				pairs[i] = cell.FilePair(p.Name, p.A, p.B)
			}
			logger.Debug("starting batch", "pairs", len(pairs), "workers", workers, "tolerance", o.Tolerance())
			res, err := cell.CompareAll(cmd.Context(), pairs, o, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			differ := 0
			for _, r := range res {
				status := "ok"
				if !r.Report.Equivalent() {
					differ++
					status = fmt.Sprintf("DIFFERENT %v", r.Report.Failed())
				}
				fmt.Fprintf(out, "%-24s %s (max position deviation %.3e)\n", r.Name, status, r.Report.MaxPositionDev)
			}
			logger.Info("batch finished", "pairs", len(res), "different", differ)
			if differ > 0 {
				return ErrNotEquivalent
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent comparisons (0: one per CPU)")
	return cmd
}
