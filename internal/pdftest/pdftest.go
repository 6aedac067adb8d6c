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

// Package pdftest assembles small PDF files for use in tests.
package pdftest

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// File is a PDF file under construction.  Object number i+1 has the body
// Objects[i].  Object 1 must be the document catalog.
type File struct {
	Objects []string
}

// Add appends an object and returns its object number.
func (f *File) Add(body string) int {
	f.Objects = append(f.Objects, body)
	return len(f.Objects)
}

// AddStream appends a stream object with the given extra dictionary
// entries and returns its object number.
func (f *File) AddStream(dict string, data []byte) int {
	return f.Add(fmt.Sprintf("<< %s /Length %d >>\nstream\n%s\nendstream", dict, len(data), data))
}

// AddFlateStream appends a FlateDecode compressed stream and returns its
// object number.
func (f *File) AddFlateStream(dict string, data []byte) int {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	zw.Write(data)
	zw.Close()
	return f.AddStream(dict+" /Filter /FlateDecode", buf.Bytes())
}

// Bytes returns the PDF file, including a cross-reference table.
func (f *File) Bytes() []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(f.Objects))
	for i, body := range f.Objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n", len(f.Objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, offs := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", offs)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(f.Objects)+1, xref)
	return buf.Bytes()
}

// Write stores the PDF file in a temporary directory and returns the file
// name.
func (f *File) Write(t testing.TB) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(fname, f.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

// TwoPages returns a document with two pages.  The first page has a file
// attachment annotation embedding "plain.txt" (under /F) and
// "unicode.txt" (under /UF, compressed), followed by a link annotation.
// The second page has a file attachment annotation without an embedded
// file dictionary.
func TwoPages() *File {
	f := &File{}
	f.Add("<< /Type /Catalog /Pages 2 0 R >>")
	f.Add("<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>")
	f.Add("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Annots [5 0 R 9 0 R] >>")
	f.Add("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Annots [10 0 R] >>")
	f.Add("<< /Type /Annot /Subtype /FileAttachment /Rect [10 10 20 20] /FS 6 0 R >>")
	f.Add("<< /Type /Filespec /F (plain.txt) /UF (unicode.txt) /EF << /F 7 0 R /UF 8 0 R >> >>")
	f.AddStream("/Type /EmbeddedFile", []byte("Hello, world!"))
	f.AddFlateStream("/Type /EmbeddedFile", []byte("compressed contents"))
	f.Add("<< /Type /Annot /Subtype /Link /Rect [30 30 40 40] >>")
	f.Add("<< /Type /Annot /Subtype /FileAttachment /Rect [10 10 20 20] /FS << /F (no-ef.txt) >> >>")
	return f
}
