package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// passFailCell renders a check outcome for table display, colorized when the
// destination is a terminal.
func passFailCell(passed, colorize bool) string {
	label := "FAIL"
	color := ansiRed
	if passed {
		label = "PASS"
		color = ansiGreen
	}
	if colorize {
		return color + label + ansiReset
	}
	return label
}

// shouldColorize reports whether writer is an interactive terminal.
func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
