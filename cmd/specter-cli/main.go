// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"specter/internal/ast"
	"specter/internal/encoder"
	"specter/internal/errors"
	"specter/internal/parser"
	"specter/internal/semantic"
	"specter/internal/spec"
)

func main() {
	emitJSON := false
	var path string
	for _, arg := range os.Args[1:] {
		if arg == "-emit-json" {
			emitJSON = true
			continue
		}
		path = arg
	}

	if path == "" {
		fmt.Println("Usage: specter [-emit-json] <file.spec>")
		os.Exit(1)
	}

	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	file, parseErrors, scannerErrors := parser.ParseSource(path, string(source))

	// Create error reporter
	errorReporter := errors.NewErrorReporter(path, string(source))

	// Report scanner errors
	for _, err := range scannerErrors {
		fmt.Print(FormatScanError(path, err, string(source)))
	}

	// Report parser errors
	for _, err := range parseErrors {
		fmt.Print(FormatParseError(path, err, string(source)))
	}

	hasErrors := len(scannerErrors) > 0 || len(parseErrors) > 0

	// Run semantic analysis and encoding if parsing succeeded
	if file != nil && !hasErrors {
		analyzer := semantic.NewAnalyzer()
		analyzer.Analyze(file)

		for _, err := range analyzer.GetErrors() {
			fmt.Print(errorReporter.FormatError(err))
			if err.Level == errors.Error {
				hasErrors = true
			}
		}

		if !hasErrors {
			hasErrors = encodeAndPrint(file, analyzer, errorReporter, emitJSON)
		}
	}

	// Calculate processing time
	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if !hasErrors {
		color.Green("Successfully processed %s in %s", path, formattedDuration)
	} else {
		color.Red("Verification condition encoding failed after %s", formattedDuration)
		os.Exit(1)
	}
}

// encodeAndPrint lowers every clause of every spec block and prints the
// resulting verification IR. It returns true when any clause failed.
func encodeAndPrint(file *ast.SpecFile, analyzer *semantic.Analyzer, reporter *errors.ErrorReporter, emitJSON bool) bool {
	registry := spec.NewRegistry()
	hasErrors := false

	for _, item := range file.Items {
		block, ok := item.(*ast.SpecBlock)
		if !ok {
			continue
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s\n", bold("spec"), bold(block.Name.Value))

		for _, result := range encoder.EncodeBlock(block, analyzer, registry) {
			var encodingErr *encoder.Error
			if stderrors.As(result.Err, &encodingErr) {
				fmt.Print(reporter.FormatError(encodingErr.Diagnostic()))
				hasErrors = true
				continue
			}
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "encoding failed: %v\n", result.Err)
				hasErrors = true
				continue
			}

			fmt.Printf("  %-9s %s\n", result.Clause.Kind, result.Expr)

			if emitJSON {
				wire, err := spec.ToJSONString(result.Assertion)
				if err != nil {
					// Quantified assertions have no wire form; skip them quietly
					var serr *spec.SerializationError
					if !stderrors.As(err, &serr) {
						fmt.Fprintf(os.Stderr, "serialization failed: %v\n", err)
						hasErrors = true
					}
					continue
				}
				fmt.Printf("  %-9s %s\n", "wire", wire)
			}
		}
	}

	return hasErrors
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func FormatScanError(path string, err parser.ScanError, source string) string {
	return formatError(path, err.Message, err.Position, err.Length, source)
}

func FormatParseError(path string, err parser.ParseError, source string) string {
	return formatError(path, err.Message, err.Position, 1, source)
}

func formatError(path, message string, pos parser.Position, length int, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	// Color setup
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
