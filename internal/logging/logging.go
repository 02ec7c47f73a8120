/*
 * logging.go, part of goCell.
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

// Package logging sets up the log/slog default logger used by the cellcmp
// commands. The library itself only reports warnings with the log package.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the encoding of the log records.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// Config describes where and how the commands log.
type Config struct {
	Level  string    //debug, info, warn or error
	Format string    //text or json
	Out    io.Writer //os.Stderr if nil
}

// ParseFormat returns the Format named by s. Anything but "text"
// and "json" (in any case) is an error.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log format %q (text or json)", s)
}

// ParseLevel turns a level name (debug, info, warn, error) into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// Setup validates c and installs the corresponding logger as the slog default.
// On error, the default logger is left untouched.
func Setup(c Config) error {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return err
	}
	format, err := ParseFormat(c.Format)
	if err != nil {
		return err
	}
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(out, ho)
	if format == JSON {
		h = slog.NewJSONHandler(out, ho)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// For returns the default logger, with the name of the command
// that uses it attached to every record.
func For(command string) *slog.Logger {
	return slog.Default().With("cmd", command)
}
