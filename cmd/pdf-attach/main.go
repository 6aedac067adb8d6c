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

// Pdf-attach extracts the files embedded in the file attachment
// annotations of a PDF document.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"seehuhn.de/go/pdfattach/attach"
	"seehuhn.de/go/pdfattach/extract"
	"seehuhn.de/go/pdfattach/internal/buildinfo"
	"seehuhn.de/go/pdfattach/internal/config"
	"seehuhn.de/go/pdfattach/internal/memfs"
	"seehuhn.de/go/pdfattach/internal/profile"
	"seehuhn.de/go/pdfattach/pdfdoc"
)

const toolName = "pdf-attach"

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", toolName, err)
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		os.Exit(2)
	}
	os.Exit(1)
}

// usageError indicates invalid command line arguments.
type usageError struct {
	msg string
}

func (err *usageError) Error() string {
	return err.msg
}

// options holds the flags which are not part of the run configuration.
type options struct {
	configFile string
	help       bool
	version    bool
	cpuprofile string
	memprofile string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config.Config
	var opt options

	flags := pflag.NewFlagSet(toolName, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.OutputDir, "output", "o", "", "write attachments to `dir`")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "choose attachments interactively")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "list and extract attachments without writing files")
	flags.BoolVar(&cfg.SafeNames, "safe-names", false, "replace path separators and reserved characters in file names")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&opt.configFile, "config", "c", "", "read default settings from YAML `file`")
	flags.BoolVarP(&opt.help, "help", "h", false, "show this help text")
	flags.BoolVar(&opt.version, "version", false, "show version information")
	flags.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	flags.Usage = func() { printUsage(stderr, flags) }

	if err := flags.Parse(args); err != nil {
		return &usageError{msg: err.Error()}
	}

	if opt.version {
		fmt.Fprintln(stdout, buildinfo.Describe(toolName))
		return nil
	}
	if opt.help {
		flags.Usage()
		if flags.NArg() == 0 {
			return nil
		}
		// With a document argument, -h does not prevent the extraction.
	}

	if opt.configFile != "" {
		fc, err := config.Load(opt.configFile)
		if err != nil {
			return fmt.Errorf("cannot read configuration: %w", err)
		}
		explicit := make(map[string]bool)
		flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = true })
		fc.Apply(&cfg, explicit)
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return &usageError{msg: fmt.Sprintf("expected exactly one PDF file, got %d arguments", flags.NArg())}
	}
	cfg.Input = flags.Arg(0)
	if err := cfg.Check(); err != nil {
		flags.Usage()
		return &usageError{msg: err.Error()}
	}

	log := newLogger(stderr, cfg.Verbose)

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			log.Warn().Err(err).Msg("profiling failed")
		}
	}()

	return extractAll(&cfg, log, stdin, stdout)
}

// extractAll prepares the output directory, reads the document and then
// extracts the attachments.  The directory is created before the document
// is opened.
func extractAll(cfg *config.Config, log zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	req := cfg.Request()

	var dir extract.Dir
	var mem *memfs.Dir
	if cfg.DryRun {
		mem = memfs.New()
		dir = mem
	} else {
		osDir, err := extract.CreateDir(req.OutputDir)
		if err != nil {
			return err
		}
		dir = osDir
	}

	doc, err := pdfdoc.Open(cfg.Input, log)
	if err != nil {
		return err
	}
	defer doc.Close()

	opt := &attach.Options{}
	if req.Mode == extract.Batch {
		// In interactive mode the list is shown by the extractor.
		opt.Progress = func(index int, a attach.Attachment) {
			fmt.Fprintf(stdout, "[%d] %s\n", index, a.Name)
		}
	}
	list, err := attach.Discover(doc, opt)
	if err != nil {
		var discoveryErr *attach.DiscoveryError
		if errors.As(err, &discoveryErr) && discoveryErr.Path == "" {
			discoveryErr.Path = cfg.Input
		}
		return err
	}
	log.Debug().Int("count", len(list)).Stringer("mode", req.Mode).Msg("discovery finished")

	if req.Mode == extract.Interactive && !isTerminal(stdin) {
		log.Debug().Msg("reading selections from non-terminal input")
	}

	e := extract.New(dir, log)
	if cfg.SafeNames {
		e.Names = extract.SafeName
	}
	err = e.Run(req, list, stdin, stdout)

	if mem != nil {
		log.Info().Strs("files", mem.Names()).Int64("bytes", mem.Size()).
			Msg("dry run, nothing written")
	}
	return err
}

// newLogger returns a logger for human readers, writing to w.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !isTerminal(w),
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}

func isTerminal(x any) bool {
	f, ok := x.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "%s - extract file attachments from a PDF file\n", toolName)
	fmt.Fprintf(w, "%s\n\n", buildinfo.Describe(toolName))
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [-h] [-i] -o=<dir> <file.pdf>\n\n", toolName)
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintf(w, "\nExisting files in the output directory are overwritten.\n")
	fmt.Fprintf(w, "In interactive mode, enter the number of an attachment to save it,\n")
	fmt.Fprintf(w, "or 0 to quit.\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s -o=attachments report.pdf\n", toolName)
	fmt.Fprintf(w, "  %s -i -o=attachments report.pdf\n", toolName)
	fmt.Fprintf(w, "  %s -n report.pdf\n", toolName)
}
