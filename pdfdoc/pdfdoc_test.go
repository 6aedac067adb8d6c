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

package pdfdoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"seehuhn.de/go/pdfattach/attach"
	"seehuhn.de/go/pdfattach/internal/pdftest"
)

func TestDiscoverFromFile(t *testing.T) {
	doc, err := Open(pdftest.TwoPages().Write(t), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	numPages, err := doc.NumPages()
	if err != nil {
		t.Fatal(err)
	}
	if numPages != 2 {
		t.Errorf("got %d pages, want 2", numPages)
	}

	list, err := attach.Discover(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := attach.List{
		{Name: "plain.txt", Data: []byte("Hello, world!")},
		{Name: "unicode.txt", Data: []byte("compressed contents")},
	}
	if d := cmp.Diff(want, list); d != "" {
		t.Errorf("unexpected attachments (-want +got):\n%s", d)
	}
}

func TestDict(t *testing.T) {
	doc, err := Open(pdftest.TwoPages().Write(t), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	annots := doc.Annotations(1)
	if len(annots) != 2 {
		t.Fatalf("got %d annotations on page 1, want 2", len(annots))
	}
	annot := annots[0]

	if subtype, ok := annot.Name("Subtype"); !ok || subtype != "FileAttachment" {
		t.Errorf("got Subtype %q, %t", subtype, ok)
	}
	if _, ok := annot.Name("Rect"); ok {
		t.Error("array reported as a name")
	}
	if _, ok := annot.Stream("FS"); ok {
		t.Error("dictionary reported as a stream")
	}

	fs, ok := annot.Dict("FS")
	if !ok {
		t.Fatal("FS not found")
	}
	if name, ok := fs.String("UF"); !ok || name != "unicode.txt" {
		t.Errorf("got UF %q, %t", name, ok)
	}
	if _, ok := fs.String("DOS"); ok {
		t.Error("missing key reported as present")
	}

	ef, ok := fs.Dict("EF")
	if !ok {
		t.Fatal("EF not found")
	}
	if d := cmp.Diff([]string{"F", "UF"}, ef.Keys()); d != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", d)
	}
}

func TestPageWithoutAnnotations(t *testing.T) {
	f := &pdftest.File{}
	f.Add("<< /Type /Catalog /Pages 2 0 R >>")
	f.Add("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	f.Add("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] >>")

	doc, err := Open(f.Write(t), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	if annots := doc.Annotations(1); annots != nil {
		t.Errorf("got %d annotations, want none", len(annots))
	}
	list, err := attach.Discover(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("got %d attachments, want none", len(list))
	}
}

func TestOpenInvalid(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "not.pdf")
	if err := os.WriteFile(fname, []byte("this is not a PDF file"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(fname, zerolog.Nop())
	var discoveryErr *attach.DiscoveryError
	if !errors.As(err, &discoveryErr) {
		t.Fatalf("expected *attach.DiscoveryError, got %v", err)
	}
	if discoveryErr.Path != fname {
		t.Errorf("got path %q, want %q", discoveryErr.Path, fname)
	}

	_, err = Open(filepath.Join(t.TempDir(), "missing.pdf"), zerolog.Nop())
	if !errors.As(err, &discoveryErr) {
		t.Fatalf("expected *attach.DiscoveryError, got %v", err)
	}
}
