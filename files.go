/*
 * files.go, part of goCell.
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

package cell

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gocell/v3"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a structure document.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// vec is a 3D vector in a structure document. In YAML it is written
// in flow style, i.e. [0, 0.5, 0.5].
type vec []float64

func (v vec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range v {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(x, 'g', -1, 64)})
	}
	return n, nil
}

type atomDoc struct {
	Symbol     string `json:"symbol" yaml:"symbol"`
	Fractional vec    `json:"fractional,omitempty" yaml:"fractional,omitempty"`
	Cartesian  vec    `json:"cartesian,omitempty" yaml:"cartesian,omitempty"`
}

// cellDoc is the on-disk representation of a Cell.
type cellDoc struct {
	Lattice []vec     `json:"lattice" yaml:"lattice"`
	Atoms   []atomDoc `json:"atoms" yaml:"atoms"`
}

// FormatFromName guesses the format and compression of a structure document
// from its file name. The compression is "zst", "gz" or the empty string.
func FormatFromName(name string) (Format, string, error) {
	lname := strings.ToLower(filepath.Base(name))
	compression := ""
	for _, c := range []string{"zst", "gz"} {
		if strings.HasSuffix(lname, "."+c) {
			compression = c
			lname = strings.TrimSuffix(lname, "."+c)
			break
		}
	}
	switch filepath.Ext(lname) {
	case ".json":
		return JSON, compression, nil
	case ".yaml", ".yml":
		return YAML, compression, nil
	}
	return JSON, compression, &CError{msg: fmt.Sprintf("goCell: can't guess the format of %s", name), deco: []string{"FormatFromName"}, critical: true}
}

// ReadFile reads a structure document. The format is taken from the
// extension (.json, .yaml or .yml), and a further .zst or .gz extension
// means that the file is compressed.
func ReadFile(name string) (*Cell, error) {
	format, compression, err := FormatFromName(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("goCell: can't open %s: %w", name, err)
	}
	defer f.Close()
	var r io.Reader = f
	switch compression {
	case "zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("goCell: can't decompress %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	case "gz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("goCell: can't decompress %s: %w", name, err)
		}
		defer gr.Close()
		r = gr
	}
	c, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("goCell: reading %s: %w", name, errDecorate(err, "ReadFile"))
	}
	return c, nil
}

// WriteFile writes C to a structure document. Format and compression are
// given by the extension of name, as in ReadFile. If the file exists, it
// is overwritten.
func WriteFile(name string, C *Cell) (err error) {
	format, compression, err := FormatFromName(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("goCell: can't create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	var w io.WriteCloser
	switch compression {
	case "zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("goCell: can't compress %s: %w", name, err)
		}
	case "gz":
		w = gzip.NewWriter(f)
	}
	if w == nil {
		return Encode(f, C, format)
	}
	if err = Encode(w, C, format); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Decode reads a structure document in the given format from r.
func Decode(r io.Reader, format Format) (*Cell, error) {
	doc := new(cellDoc)
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	}
	if err != nil {
		return nil, &CError{msg: fmt.Sprintf("goCell: can't decode %s document: %s", format, err), deco: []string{"Decode"}, critical: true, wrapped: err}
	}
	c, err := doc.cell()
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return c, nil
}

// Encode writes C to w as a structure document in the given format.
// Coordinates are always written as fractional.
func Encode(w io.Writer, C *Cell, format Format) error {
	doc := new(cellDoc)
	for i := 0; i < 3; i++ {
		doc.Lattice = append(doc.Lattice, vec(C.lattice.Vec(i)))
	}
	for i, s := range C.symbols {
		doc.Atoms = append(doc.Atoms, atomDoc{Symbol: s, Fractional: vec(C.frac.Vec(i))})
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("goCell: can't encode yaml document: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("goCell: can't encode json document: %w", err)
		}
	}
	return nil
}

func docError(format string, args ...any) error {
	return &CError{msg: fmt.Sprintf(format, args...), deco: []string{"cellDoc.cell"}, critical: true}
}

// cell validates the document and builds a Cell from it.
func (D *cellDoc) cell() (*Cell, error) {
	if len(D.Lattice) != 3 {
		return nil, docError("goCell: lattice must have 3 vectors, found %d", len(D.Lattice))
	}
	latdata := make([]float64, 0, 9)
	for i, v := range D.Lattice {
		if len(v) != 3 {
			return nil, docError("goCell: lattice vector %d must have 3 components, found %d", i, len(v))
		}
		latdata = append(latdata, v...)
	}
	lattice, err := v3.NewMatrix(latdata)
	if err != nil {
		return nil, err
	}
	if len(D.Atoms) == 0 {
		return nil, docError("goCell: no atoms in document")
	}
	symbols := make([]string, len(D.Atoms))
	frac := v3.Zeros(len(D.Atoms))
	var inv *v3.Matrix
	for i, at := range D.Atoms {
		if at.Symbol == "" {
			return nil, docError("goCell: atom %d has no symbol", i)
		}
		if !KnownSymbol(at.Symbol) {
			log.Printf("goCell: unknown element symbol %q for atom %d", at.Symbol, i)
		}
		symbols[i] = at.Symbol
		switch {
		case at.Fractional != nil && at.Cartesian != nil:
			return nil, docError("goCell: atom %d has both fractional and cartesian coordinates", i)
		case at.Fractional != nil:
			if len(at.Fractional) != 3 {
				return nil, docError("goCell: atom %d must have 3 coordinates, found %d", i, len(at.Fractional))
			}
			copy(frac.RawRowView(i), at.Fractional)
		case at.Cartesian != nil:
			if len(at.Cartesian) != 3 {
				return nil, docError("goCell: atom %d must have 3 coordinates, found %d", i, len(at.Cartesian))
			}
			if inv == nil {
				inv = v3.Zeros(3)
				if err := inv.Inverse(lattice); err != nil {
					return nil, docError("goCell: singular lattice: %s", err)
				}
			}
			cart, _ := v3.NewMatrix([]float64(at.Cartesian))
			frac.VecView(i).Mul(cart, inv)
		default:
			return nil, docError("goCell: atom %d has no coordinates", i)
		}
	}
	return NewCell(lattice, frac, symbols)
}
