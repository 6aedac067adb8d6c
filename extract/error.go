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

import "fmt"

// DirectoryError is returned by [CreateDir] when the output directory does
// not exist and cannot be created.
type DirectoryError struct {
	Path string
	Err  error
}

func (err *DirectoryError) Error() string {
	return fmt.Sprintf("unable to create directory %q: %v", err.Path, err.Err)
}

func (err *DirectoryError) Unwrap() error {
	return err.Err
}

// WriteError describes an attachment which could not be written.
type WriteError struct {
	// Index is the 1-based display index of the attachment.
	Index int

	// Name is the name of the attachment, as stored in the document.
	Name string

	Err error
}

func (err *WriteError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", err.Index, err.Name, err.Err)
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
