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

// Package attach locates files which are embedded in the file attachment
// annotations of a PDF document.
//
// The package does not parse PDF files itself.  Instead, it works on the
// small [Document] and [Dict] interfaces, which report missing or malformed
// values as absent rather than as errors.  The package
// [seehuhn.de/go/pdfattach/pdfdoc] implements these interfaces for real
// PDF files.
package attach

// PDF 2.0 sections: 7.11.3 7.11.4 12.5.6.15

// Attachment is a file found in a PDF document.
//
// Attachments are not modified after discovery.
type Attachment struct {
	// Name is the file name stored in the file specification dictionary.
	// The name is not sanitized in any way.
	Name string

	// Data is the decoded contents of the embedded file stream.
	Data []byte
}

// List is the sequence of attachments of a document, in discovery order.
//
// The order is page order, then annotation order within a page, then
// embedded file key order within an annotation.  The display index of the
// attachment at position i is i+1.
type List []Attachment

// Dict gives read access to a PDF dictionary.
//
// All methods report a missing key, a value of the wrong type, or a value
// which cannot be decoded as absent.
type Dict interface {
	// Name returns the value of a name entry.
	Name(key string) (string, bool)

	// String returns the value of a text string entry.
	String(key string) (string, bool)

	// Dict returns the value of a dictionary entry, following indirect
	// references.
	Dict(key string) (Dict, bool)

	// Stream returns the fully decoded contents of a stream entry.
	Stream(key string) ([]byte, bool)

	// Keys lists the keys of the dictionary, in a deterministic order.
	Keys() []string
}

// Document gives read access to the pages of a PDF document.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() (int, error)

	// Annotations returns the annotation dictionaries of a page.
	// Page numbers start at 1.  A nil result means that the page has no
	// annotations.
	Annotations(pageNo int) []Dict
}
