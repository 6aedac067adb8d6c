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

package attach

// DiscoveryError indicates that a document could not be opened, or is not
// a valid PDF document.  No attachments are available in this case.
type DiscoveryError struct {
	// Path is the file name of the document, if known.
	Path string

	Err error
}

func (err *DiscoveryError) Error() string {
	if err.Path == "" {
		return "cannot read document: " + err.Err.Error()
	}
	return "cannot read " + err.Path + ": " + err.Err.Error()
}

func (err *DiscoveryError) Unwrap() error {
	return err.Err
}
