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

// Package pdfdoc gives [attach.Discover] access to PDF files.
//
// Values which are missing, have the wrong type, or cannot be decoded are
// reported as absent.  The reason is logged at debug level.
package pdfdoc

import (
	"io"
	"slices"

	"github.com/rs/zerolog"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfattach/attach"
)

// Document is an open PDF file.
//
// This implements the [attach.Document] interface.
type Document struct {
	r   *pdf.Reader
	log zerolog.Logger
}

var _ attach.Document = (*Document)(nil)

// Open opens the PDF file fname for reading.
//
// If the file cannot be opened or is not a PDF file, the error is an
// [*attach.DiscoveryError].
func Open(fname string, log zerolog.Logger) (*Document, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, &attach.DiscoveryError{Path: fname, Err: err}
	}
	doc := &Document{
		r:   r,
		log: log.With().Str("file", fname).Logger(),
	}
	return doc, nil
}

// Close releases the underlying file.
func (doc *Document) Close() error {
	return doc.r.Close()
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() (int, error) {
	return pagetree.NumPages(doc.r)
}

// Annotations returns the annotation dictionaries of page pageNo.
// Page numbers start at 1.
func (doc *Document) Annotations(pageNo int) []attach.Dict {
	_, page, err := pagetree.GetPage(doc.r, pageNo-1)
	if err != nil {
		doc.log.Debug().Err(err).Int("page", pageNo).Msg("skipping unreadable page")
		return nil
	}

	annots, err := pdf.GetArray(doc.r, page["Annots"])
	if err != nil {
		doc.log.Debug().Err(err).Int("page", pageNo).Msg("skipping malformed Annots array")
		return nil
	} else if annots == nil {
		return nil
	}

	res := make([]attach.Dict, 0, len(annots))
	for i, obj := range annots {
		annot, err := pdf.GetDict(doc.r, obj)
		if err != nil || annot == nil {
			doc.log.Debug().Err(err).Int("page", pageNo).Int("annot", i).
				Msg("skipping annotation which is not a dictionary")
			continue
		}
		res = append(res, &dict{doc: doc, d: annot})
	}
	return res
}

// dict is a PDF dictionary belonging to doc.
//
// This implements the [attach.Dict] interface.
type dict struct {
	doc *Document
	d   pdf.Dict
}

func (x *dict) get(key string) (pdf.Object, bool) {
	obj, ok := x.d[pdf.Name(key)]
	return obj, ok && obj != nil
}

func (x *dict) Name(key string) (string, bool) {
	obj, ok := x.get(key)
	if !ok {
		return "", false
	}
	name, err := pdf.GetName(x.doc.r, obj)
	if err != nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("malformed name")
		return "", false
	}
	return string(name), true
}

func (x *dict) String(key string) (string, bool) {
	obj, ok := x.get(key)
	if !ok {
		return "", false
	}
	s, err := pdf.GetTextString(x.doc.r, obj)
	if err != nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("malformed text string")
		return "", false
	}
	return string(s), true
}

func (x *dict) Dict(key string) (attach.Dict, bool) {
	obj, ok := x.get(key)
	if !ok {
		return nil, false
	}
	d, err := pdf.GetDict(x.doc.r, obj)
	if err != nil || d == nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("malformed dictionary")
		return nil, false
	}
	return &dict{doc: x.doc, d: d}, true
}

func (x *dict) Stream(key string) ([]byte, bool) {
	obj, ok := x.get(key)
	if !ok {
		return nil, false
	}
	stm, err := pdf.GetStream(x.doc.r, obj)
	if err != nil || stm == nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("malformed stream")
		return nil, false
	}

	body, err := pdf.DecodeStream(x.doc.r, stm, 0)
	if err != nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("cannot decode stream")
		return nil, false
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		x.doc.log.Debug().Err(err).Str("key", key).Msg("cannot read stream")
		return nil, false
	}
	return data, true
}

// Keys returns the dictionary keys in sorted order.  This puts the
// embedded file key "F" before "UF".
func (x *dict) Keys() []string {
	keys := make([]string, 0, len(x.d))
	for key, val := range x.d {
		if val != nil {
			keys = append(keys, string(key))
		}
	}
	slices.Sort(keys)
	return keys
}
