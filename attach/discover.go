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

import "strconv"

// Options can be used to observe the progress of [Discover].
type Options struct {
	// Progress, if not nil, is called for every attachment as soon as it
	// has been found.  The index is the 1-based display index.
	Progress func(index int, a Attachment)
}

// Discover returns all files embedded in the file attachment annotations
// of doc.
//
// Pages and annotations are visited in order.  Annotations which are not
// file attachments, or which lack a file specification or an embedded file
// dictionary, are skipped.  An error is only returned if the page count of
// the document cannot be determined; in this case the error is a
// [*DiscoveryError].
func Discover(doc Document, opt *Options) (List, error) {
	numPages, err := doc.NumPages()
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	var res List
	for pageNo := 1; pageNo <= numPages; pageNo++ {
		for _, annot := range doc.Annotations(pageNo) {
			if subtype, _ := annot.Name("Subtype"); subtype != "FileAttachment" {
				continue
			}
			fs, ok := annot.Dict("FS")
			if !ok {
				continue
			}
			ef, ok := fs.Dict("EF")
			if !ok {
				continue
			}

			for _, key := range ef.Keys() {
				data, ok := ef.Stream(key)
				if !ok {
					continue
				}
				a := Attachment{
					Name: fileName(fs, key, len(res)+1),
					Data: data,
				}
				res = append(res, a)
				if opt != nil && opt.Progress != nil {
					opt.Progress(len(res), a)
				}
			}
		}
	}
	return res, nil
}

// fileName returns the name for the embedded file stored under key.
// The file specification normally has a string entry under the same key.
func fileName(fs Dict, key string, index int) string {
	for _, k := range []string{key, "UF", "F"} {
		if name, ok := fs.String(k); ok && name != "" {
			return name
		}
	}
	return "attachment-" + strconv.Itoa(index)
}
