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
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// A NamePolicy maps the name of an attachment to the name of the output
// file.
type NamePolicy func(name string) (string, error)

// Verbatim uses attachment names unchanged.
//
// Attachment names come from the PDF file.  With this policy, a name like
// "../x" or "/etc/x" addresses a file outside the output directory.
func Verbatim(name string) (string, error) {
	return name, nil
}

// SafeName turns an attachment name into a single path component.
//
// The name is converted to Unicode normalization form C.  Path separators,
// characters which are reserved on Windows, and control characters are
// replaced by underscores.  Names which are empty, "." or ".." are
// rejected.
func SafeName(name string) (string, error) {
	name = norm.NFC.String(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)

	switch strings.TrimSpace(name) {
	case "":
		return "", errEmptyName
	case ".", "..":
		return "", errReservedName
	}
	return name, nil
}

var (
	errEmptyName    = errors.New("empty file name")
	errReservedName = errors.New("reserved file name")
)
