// pdfattach - extract file attachments from PDF documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package extract writes attachments found by [attach.Discover] to an
// output directory.
//
// In batch mode all attachments are written.  In interactive mode the user
// repeatedly chooses a single attachment by its display index.  Existing
// files are always overwritten.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"seehuhn.de/go/pdfattach/attach"
)

// Mode selects how attachments are chosen for extraction.
type Mode int

const (
	// Batch writes every attachment.
	Batch Mode = iota

	// Interactive asks the user which attachments to write.
	Interactive
)

func (m Mode) String() string {
	switch m {
	case Batch:
		return "batch"
	case Interactive:
		return "interactive"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Request describes where and how attachments are extracted.
type Request struct {
	OutputDir string
	Mode      Mode
}

// Prompt is shown before every selection in interactive mode.
const Prompt = "Enter the number of the file you want to save (or 0 to quit): "

// Extractor writes attachments into a directory.
type Extractor struct {
	// Dir receives the extracted files.
	Dir Dir

	// Names maps attachment names to file names.
	// If this is nil, [Verbatim] is used.
	Names NamePolicy

	// Log receives a message for every file written or failed.
	Log zerolog.Logger
}

// New returns an Extractor which writes to dir, using attachment names
// unchanged.
func New(dir Dir, log zerolog.Logger) *Extractor {
	return &Extractor{
		Dir:   dir,
		Names: Verbatim,
		Log:   log,
	}
}

// Run extracts attachments from list as described by req.  The streams in
// and out are only used in interactive mode.
//
// The directory req.OutputDir must already be open as e.Dir; Run only
// records it in the log.
func (e *Extractor) Run(req Request, list attach.List, in io.Reader, out io.Writer) error {
	e.Log.Debug().Str("dir", req.OutputDir).Stringer("mode", req.Mode).
		Int("count", len(list)).Msg("extracting attachments")

	switch req.Mode {
	case Batch:
		return e.Batch(list)
	case Interactive:
		return e.Interactive(list, in, out)
	default:
		return fmt.Errorf("unknown extraction mode %s", req.Mode)
	}
}

// Batch writes all attachments, in order.
//
// If two attachments have the same name, the later one replaces the
// earlier one.  A failed write does not stop the remaining writes.  The
// returned error joins one [*WriteError] for every failed attachment.
func (e *Extractor) Batch(list attach.List) error {
	var errs []error
	for i := range list {
		if err := e.write(list, i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Interactive lists the attachments on out and then lets the user choose
// attachments by their display index, one line of input per choice.
//
// Input which is not an integer, however long the line, and numbers larger
// than the number of attachments are ignored.  The loop ends when the user
// enters 0 or any negative number, or at the end of the input.  Failed
// writes are reported on out and do not end the loop; the returned error
// joins them.
func (e *Extractor) Interactive(list attach.List, in io.Reader, out io.Writer) error {
	for i, a := range list {
		fmt.Fprintf(out, "[%d] %s\n", i+1, a.Name)
	}

	var errs []error
	lines := bufio.NewReader(in)
	for {
		fmt.Fprint(out, Prompt)
		line, err := lines.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(out)
			if err != io.EOF {
				errs = append(errs, err)
			}
			break
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil || n > len(list):
			continue
		case n <= 0:
			return errors.Join(errs...)
		}

		if err := e.write(list, n-1); err != nil {
			fmt.Fprintln(out, "error:", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// write stores list[i] in the output directory.
func (e *Extractor) write(list attach.List, i int) error {
	a := list[i]
	log := e.Log.With().Int("index", i+1).Str("name", a.Name).Logger()

	names := e.Names
	if names == nil {
		names = Verbatim
	}
	fname, err := names(a.Name)
	if err == nil {
		err = e.Dir.WriteFile(fname, a.Data)
	}
	if err != nil {
		log.Warn().Err(err).Msg("cannot write attachment")
		return &WriteError{Index: i + 1, Name: a.Name, Err: err}
	}

	log.Debug().Str("file", fname).Int("bytes", len(a.Data)).Msg("attachment written")
	return nil
}
