// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"specter/internal/ast"
	"specter/internal/encoder"
	"specter/internal/errors"
	"specter/internal/parser"
	"specter/internal/semantic"
	"specter/internal/spec"
)

const PROMPT = ">> "

// Each line typed at the prompt becomes the postcondition of this
// scaffold, so "result", the parameters, and the Account fields are all
// in scope for experimentation.
const scaffold = `struct Account { balance: int, owner: int }
spec demo(amount: int, acc: &Account) -> int {
    ensures %s;
}
`

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Context: demo(amount: int, acc: &Account) -> int")

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, ";")

		encodeLine(out, line)
	}
}

func encodeLine(out io.Writer, line string) {
	source := fmt.Sprintf(scaffold, line)

	file, parseErrors, scanErrors := parser.ParseSource("repl", source)
	for _, err := range scanErrors {
		fmt.Fprintf(out, "scan error: %s\n", err.Message)
	}
	for _, err := range parseErrors {
		fmt.Fprintf(out, "parse error: %s\n", err.Message)
	}
	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		return
	}

	analyzer := semantic.NewAnalyzer()
	failed := false
	for _, err := range analyzer.Analyze(file) {
		fmt.Fprintf(out, "%s[%s]: %s\n", err.Level, err.Code, err.Message)
		if err.Level == errors.Error {
			failed = true
		}
	}
	if failed {
		return
	}

	registry := spec.NewRegistry()
	for _, item := range file.Items {
		block, ok := item.(*ast.SpecBlock)
		if !ok {
			continue
		}
		for _, result := range encoder.EncodeBlock(block, analyzer, registry) {
			var encodingErr *encoder.Error
			if stderrors.As(result.Err, &encodingErr) {
				diag := encodingErr.Diagnostic()
				fmt.Fprintf(out, "%s[%s]: %s\n", diag.Level, diag.Code, diag.Message)
				continue
			}
			if result.Err != nil {
				fmt.Fprintf(out, "encoding failed: %v\n", result.Err)
				continue
			}
			fmt.Fprintf(out, "%s\n", result.Expr)
		}
	}
}
