package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2md <input.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a PDF man-page reference guide to structured markdown.")
	fmt.Fprintln(w, "When input is a directory, every .pdf under it is converted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    PDF file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>    Output markdown file or directory")
	fmt.Fprintln(w, "                         (default: input path with .md extension)")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --outline          Print the heading outline after conversion")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --version          Show version and exit")
}
