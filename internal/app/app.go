// Package app provides the main application helpers for the parser tool.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phoony/hack-asm/internal/options"
	"github.com/phoony/hack-asm/internal/parser"
	"github.com/phoony/hack-asm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("hackasm - Hack assembly parser",
		log.String("version", buildinfo.Version(version, commit, date)),
	)
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the listing filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".lst"
}

// ProcessFile parses a single source file and writes its listing.
// A syntax error aborts the file without producing any output.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	listing options.Listing) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	logger.Debug("Parsing file", log.String("file", opts.Input))

	prog, err := parser.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing file %s: %w", opts.Input, err)
	}

	output, closeOutput, err := createWriter(opts)
	if err != nil {
		return err
	}
	defer closeOutput()

	w := writer.New(prog, output, writer.Options{
		LineNumbers: listing.LineNumbers,
		Indent:      listing.Indent,
	})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	logger.Info("Parsed file",
		log.String("file", opts.Input),
		log.Int("instructions", len(prog.Instructions)),
	)
	return nil
}

func createWriter(opts options.Program) (io.Writer, func(), error) {
	if opts.Output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, func() { _ = file.Close() }, nil
}
