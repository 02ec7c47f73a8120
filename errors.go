/*
 * errors.go, part of goCell.
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
	"errors"
	"fmt"
	"strings"
)

// ErrShapeMismatch is the sentinel for structures whose number of atoms,
// coordinates or symbols don't agree. Use errors.Is to detect it.
var ErrShapeMismatch = errors.New("goCell: shape mismatch")

// CError is the error type of the cell package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	wrapped  error
}

// Error returns a string with the error message and, if present, the
// functions it went through.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

func (err *CError) Unwrap() error { return err.wrapped }

var _ Error = (*CError)(nil)

func shapeMismatch(caller, format string, args ...any) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true, wrapped: ErrShapeMismatch}
}

// errDecorate decorates err with the caller's name if err implements Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
