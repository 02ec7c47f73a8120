/*
 * commands_test.go, part of goCell.
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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(Te *testing.T, args ...string) (string, error) {
	Te.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCompare(Te *testing.T) {
	out, err := run(Te, "compare", "../../../test/NaCl.json", "../../../test/NaCl.yaml")
	require.NoError(Te, err)
	require.Contains(Te, out, "equivalent (tolerance 1e-05)")

	out, err = run(Te, "compare", "../../../test/NaCl.json", "../../../test/NaCl-swapped.json")
	require.ErrorIs(Te, err, ErrNotEquivalent)
	require.Contains(Te, out, "failed species")

	_, err = run(Te, "compare", "--tolerance", "1e-8", "../../../test/NaCl.json", "../../../test/NaCl.yaml")
	require.ErrorIs(Te, err, ErrNotEquivalent)

	_, err = run(Te, "compare", "../../../test/NaCl.json", "../../../test/NaCl-conventional.yaml")
	require.Error(Te, err)
	require.NotErrorIs(Te, err, ErrNotEquivalent)

	_, err = run(Te, "compare", "../../../test/NaCl.json")
	require.Error(Te, err)
}

func TestBadGlobalFlags(Te *testing.T) {
	for _, args := range [][]string{
		{"--tolerance=-1"},
		{"--tolerance", "NaN"},
		{"--log-format", "xml"},
		{"--log-level", "loud"},
	} {
		args = append([]string{"compare"}, args...)
		args = append(args, "../../../test/NaCl.json", "../../../test/NaCl.yaml")
		out, err := run(Te, args...)
		require.Error(Te, err, "%v", args)
		require.NotErrorIs(Te, err, ErrNotEquivalent, "%v", args)
		require.Empty(Te, out, "%v", args)
	}
	out, err := run(Te, "compare", "--tolerance", "0", "--log-format", "JSON", "../../../test/NaCl.json", "../../../test/NaCl.json")
	require.NoError(Te, err)
	require.Contains(Te, out, "equivalent (tolerance 0)")
}

func TestInfo(Te *testing.T) {
	out, err := run(Te, "info", "../../../test/NaCl-conventional.yaml", "../../../test/KCl.json")
	require.NoError(Te, err)
	require.Contains(Te, out, "Na4Cl4, 8 atoms")
	require.Contains(Te, out, "KCl, 2 atoms")
	require.Contains(Te, out, "density")
}

func TestBatch(Te *testing.T) {
	out, err := run(Te, "batch", "--log-level", "debug", "../../../test/batch.yaml")
	require.ErrorIs(Te, err, ErrNotEquivalent)
	require.Contains(Te, out, "NaCl ")
	require.Contains(Te, out, "DIFFERENT [lattice species]")

	_, err = run(Te, "batch", "--log-level", "shouting", "../../../test/batch.yaml")
	require.Error(Te, err)
	require.NotErrorIs(Te, err, ErrNotEquivalent)
}

func TestLoadManifest(Te *testing.T) {
	dir := Te.TempDir()
	good := filepath.Join(dir, "m.yaml")
	require.NoError(Te, os.WriteFile(good, []byte("workers: 2\npairs:\n  - {a: x.json, b: /abs/y.yaml}\n"), 0o644))
	m, err := LoadManifest(good)
	require.NoError(Te, err)
	require.Nil(Te, m.Tolerance)
	require.Equal(Te, 2, m.Workers)
	require.Equal(Te, filepath.Join(dir, "x.json"), m.Pairs[0].A)
	require.Equal(Te, "/abs/y.yaml", m.Pairs[0].B)
	require.Equal(Te, "x.json-y.yaml", m.Pairs[0].Name)

	for name, doc := range map[string]string{
		"empty.yaml":  "tolerance: 1e-5\n",
		"neg.yaml":    "tolerance: -1\npairs: [{a: x.json, b: y.json}]\n",
		"half.yaml":   "pairs: [{a: x.json}]\n",
		"broken.yaml": "pairs: [\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(Te, os.WriteFile(path, []byte(doc), 0o644))
		_, err := LoadManifest(path)
		require.Error(Te, err, name)
	}
}

func TestPlot(Te *testing.T) {
	png := filepath.Join(Te.TempDir(), "dev.png")
	out, err := run(Te, "plot", "-o", png, "../../../test/NaCl.json", "../../../test/KCl.json")
	require.NoError(Te, err)
	require.Contains(Te, out, "not equivalent")
	fi, err := os.Stat(png)
	require.NoError(Te, err)
	require.NotZero(Te, fi.Size())
}
