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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfattach/attach"
	"seehuhn.de/go/pdfattach/extract"
	"seehuhn.de/go/pdfattach/internal/pdftest"
)

// listDir returns the names of the files in dir, in sorted order.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBatch(t *testing.T) {
	pdfFile := pdftest.TwoPages().Write(t)
	out := filepath.Join(t.TempDir(), "out")
	stdout := &bytes.Buffer{}

	err := run([]string{"-o=" + out, pdfFile}, strings.NewReader(""), stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff("[1] plain.txt\n[2] unicode.txt\n", stdout.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"plain.txt", "unicode.txt"}, listDir(t, out)); d != "" {
		t.Errorf("unexpected files (-want +got):\n%s", d)
	}
	data, err := os.ReadFile(filepath.Join(out, "unicode.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "compressed contents" {
		t.Errorf("got %q", data)
	}
}

func TestInteractive(t *testing.T) {
	pdfFile := pdftest.TwoPages().Write(t)
	out := t.TempDir()
	stdout := &bytes.Buffer{}

	args := []string{"-i", "-o", out, pdfFile}
	err := run(args, strings.NewReader("2\nabc\n0\n"), stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]string{"unicode.txt"}, listDir(t, out)); d != "" {
		t.Errorf("unexpected files (-want +got):\n%s", d)
	}
	if n := strings.Count(stdout.String(), "[2] unicode.txt"); n != 1 {
		t.Errorf("attachment listed %d times:\n%s", n, stdout.String())
	}
	if n := strings.Count(stdout.String(), extract.Prompt); n != 3 {
		t.Errorf("got %d prompts, want 3", n)
	}
}

func TestDryRun(t *testing.T) {
	pdfFile := pdftest.TwoPages().Write(t)
	out := filepath.Join(t.TempDir(), "never")

	err := run([]string{"-n", "-o=" + out, pdfFile}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", out)
	}
}

func TestNoAttachments(t *testing.T) {
	f := &pdftest.File{}
	f.Add("<< /Type /Catalog /Pages 2 0 R >>")
	f.Add("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	f.Add("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Annots [4 0 R] >>")
	f.Add("<< /Type /Annot /Subtype /Text /Rect [0 0 10 10] /Contents (note) >>")
	pdfFile := f.Write(t)
	out := filepath.Join(t.TempDir(), "empty")

	stdout := &bytes.Buffer{}
	err := run([]string{"-o=" + out, pdfFile}, nil, stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if names := listDir(t, out); len(names) != 0 {
		t.Errorf("got files %q, want none", names)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestDirectoryBeforeDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b")
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	err := run([]string{"-o=" + out, missing}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	var discoveryErr *attach.DiscoveryError
	if !errors.As(err, &discoveryErr) {
		t.Fatalf("expected *attach.DiscoveryError, got %v", err)
	}
	if fi, err := os.Stat(out); err != nil || !fi.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestDirectoryFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	pdfFile := pdftest.TwoPages().Write(t)

	err := run([]string{"-o=" + filepath.Join(blocker, "out"), pdfFile}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	var dirErr *extract.DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected *extract.DirectoryError, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	type testCase struct {
		name  string
		args  []string
		usage bool // a *usageError is expected
	}
	testCases := []testCase{
		{"help only", []string{"-h"}, false},
		{"no arguments", nil, true},
		{"missing output", []string{"in.pdf"}, true},
		{"two documents", []string{"-o=x", "a.pdf", "b.pdf"}, true},
		{"unknown flag", []string{"--frobnicate", "a.pdf"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			err := run(tc.args, nil, &bytes.Buffer{}, stderr)

			var usageErr *usageError
			if got := errors.As(err, &usageErr); got != tc.usage {
				t.Errorf("got error %v", err)
			}
			if tc.name == "help only" && !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("no usage text:\n%s", stderr.String())
			}
		})
	}
}

func TestHelpWithDocument(t *testing.T) {
	pdfFile := pdftest.TwoPages().Write(t)
	out := t.TempDir()
	stderr := &bytes.Buffer{}

	err := run([]string{"-h", "-o=" + out, pdfFile}, nil, &bytes.Buffer{}, stderr)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("usage not shown")
	}
	if len(listDir(t, out)) != 2 {
		t.Error("extraction did not run after -h")
	}
}

func TestConfigFile(t *testing.T) {
	pdfFile := pdftest.TwoPages().Write(t)
	out := filepath.Join(t.TempDir(), "from-config")
	cfgFile := filepath.Join(t.TempDir(), "pdf-attach.yaml")
	body := "output: " + out + "\ninteractive: true\n"
	if err := os.WriteFile(cfgFile, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"--config", cfgFile, pdfFile}, strings.NewReader("1\n0\n"), &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"plain.txt"}, listDir(t, out)); d != "" {
		t.Errorf("unexpected files (-want +got):\n%s", d)
	}
}
