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

package extract

import (
	"os"
	"path/filepath"
)

// Dir is the destination of extracted attachments.
type Dir interface {
	// WriteFile stores data in the file with the given name, replacing any
	// existing file.
	WriteFile(name string, data []byte) error
}

// OSDir is a directory in the file system.
//
// This implements the [Dir] interface.
type OSDir struct {
	path string
}

var _ Dir = (*OSDir)(nil)

// CreateDir returns the directory at path, creating it and all missing
// parent directories if needed.  If the directory cannot be created, the
// error is a [*DirectoryError].
func CreateDir(path string) (*OSDir, error) {
	err := os.MkdirAll(path, 0o755)
	if err != nil {
		return nil, &DirectoryError{Path: path, Err: err}
	}
	return &OSDir{path: path}, nil
}

// WriteFile writes data to the file name inside d, truncating an existing
// file.  The name is joined to the directory path as it is; names
// containing path separators or ".." can address files outside d.
func (d *OSDir) WriteFile(name string, data []byte) (err error) {
	fd, err := os.OpenFile(filepath.Join(d.path, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	_, err = fd.Write(data)
	return err
}
