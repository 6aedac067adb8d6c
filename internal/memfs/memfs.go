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

// Package memfs implements an output directory which is kept in memory.
//
// This is used for dry runs, and to test extraction without touching the
// file system.
package memfs

import (
	"io/fs"
	"slices"
)

// Dir is a flat in-memory directory.
//
// The zero value is an empty directory, ready to use.
type Dir struct {
	files  map[string][]byte
	writes []string
	fail   map[string]error
}

// New creates a new, empty directory.
func New() *Dir {
	return &Dir{}
}

// WriteFile stores a copy of data under the given name, replacing any
// previous contents.
func (d *Dir) WriteFile(name string, data []byte) error {
	if err := d.fail[name]; err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	if d.files == nil {
		d.files = make(map[string][]byte)
	}
	d.files[name] = slices.Clone(data)
	d.writes = append(d.writes, name)
	return nil
}

// FailWith makes all future writes to name fail with err.
// If err is nil, writes to name succeed again.
func (d *Dir) FailWith(name string, err error) {
	if err == nil {
		delete(d.fail, name)
		return
	}
	if d.fail == nil {
		d.fail = make(map[string]error)
	}
	d.fail[name] = err
}

// ReadFile returns a copy of the contents of the named file.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	data, ok := d.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// Names returns the names of all files in the directory, in sorted order.
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.files))
	for name := range d.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Writes lists the names passed to successful WriteFile calls, in call
// order.  A name appears once for every write.
func (d *Dir) Writes() []string {
	return slices.Clone(d.writes)
}

// Size returns the total number of bytes stored in the directory.
func (d *Dir) Size() int64 {
	var total int64
	for _, data := range d.files {
		total += int64(len(data))
	}
	return total
}
