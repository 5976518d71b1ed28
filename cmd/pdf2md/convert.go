package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/config"
	"github.com/alnah/go-pdf2md/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInputNotFound      = errors.New("input not found")
	ErrWriteMarkdown      = errors.New("failed to write markdown file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// maxWorkers caps directory batch concurrency.
const maxWorkers = 32

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	inputPath := positionalArgs[0]

	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return err
	}

	rules := rulesFromConfig(cfg.Document)

	if info.IsDir() {
		return runBatch(ctx, inputPath, flags, cfg, rules, env)
	}
	return runSingle(ctx, inputPath, flags, cfg, rules, env)
}

// rulesFromConfig maps the config document section onto pipeline rules.
func rulesFromConfig(doc config.DocumentConfig) pdf2md.Rules {
	return pdf2md.Rules{
		TOCMarker:      doc.TOCMarker,
		FooterPatterns: doc.FooterPatterns,
		HeaderPrefixes: doc.HeaderPrefixes,
	}
}

// runSingle converts one PDF file, reporting each stage as it begins.
func runSingle(ctx context.Context, inputPath string, flags *convertFlags, cfg *config.Config, rules pdf2md.Rules, env *Environment) error {
	outPath := resolveOutputPath(inputPath, flags.output, cfg.Output.DefaultDir)

	opts := []pdf2md.Option{pdf2md.WithRules(rules)}
	if !flags.common.quiet {
		opts = append(opts, pdf2md.WithProgress(func(stage string) {
			fmt.Fprintln(env.Stdout, stage)
		}))
	}

	start := env.Now()
	result, err := env.NewService(opts...).Convert(ctx, pdf2md.Input{PDFPath: inputPath})
	if err != nil {
		return err
	}

	if err := writeMarkdown(outPath, result.Markdown); err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%d commands, %d sections, %d TOC entries, %v)\n",
				outPath, result.Commands, result.Sections, result.TOCEntries,
				env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
		}
	}

	if flags.outline {
		printOutline(env, result.Markdown)
	}

	return nil
}

// runBatch converts every PDF under inputDir with a bounded worker group.
// Stage progress is suppressed; per-file results are reported instead.
func runBatch(ctx context.Context, inputDir string, flags *convertFlags, cfg *config.Config, rules pdf2md.Rules, env *Environment) error {
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", inputDir)
	}

	results := convertBatch(ctx, env, files, rules, resolveWorkers(flags.workers, len(files)))

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// discoverFiles finds all PDF files under inputDir.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveBatchOutputPath(path, outputDir, inputDir),
		})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the markdown output path for a single input.
// An --output value ending in .md is the exact destination; otherwise it is
// treated as a directory.
func resolveOutputPath(inputPath, flagOutput, defaultDir string) string {
	base := filepath.Base(fileutil.ReplaceExt(inputPath, ".md"))

	if flagOutput != "" {
		if strings.EqualFold(filepath.Ext(flagOutput), ".md") {
			return flagOutput
		}
		return filepath.Join(flagOutput, base)
	}

	if defaultDir != "" {
		return filepath.Join(defaultDir, base)
	}

	return fileutil.ReplaceExt(inputPath, ".md")
}

// resolveBatchOutputPath mirrors the input tree under outputDir, or writes
// next to the source when no output directory is set.
func resolveBatchOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return fileutil.ReplaceExt(inputPath, ".md")
	}

	relPath, err := filepath.Rel(baseInputDir, inputPath)
	if err != nil {
		relPath = filepath.Base(inputPath)
	}
	return filepath.Join(outputDir, fileutil.ReplaceExt(relPath, ".md"))
}

// resolveWorkers determines batch concurrency. Zero means one worker per
// available CPU (automaxprocs-adjusted); the file count is a natural cap.
func resolveWorkers(n, fileCount int) int {
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > fileCount {
		n = fileCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// convertBatch processes files concurrently. Each worker owns one service;
// every conversion itself runs single-threaded.
func convertBatch(ctx context.Context, env *Environment, files []FileToConvert, rules pdf2md.Rules, workers int) []ConversionResult {
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := env.NewService(pdf2md.WithRules(rules))
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc Converter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	converted, err := svc.Convert(ctx, pdf2md.Input{PDFPath: f.InputPath})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := writeMarkdown(f.OutputPath, converted.Markdown); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// writeMarkdown writes the markdown document, creating the output directory
// as needed. The destination is overwritten unconditionally.
func writeMarkdown(path, markdown string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	// #nosec G306 -- markdown output is meant to be readable
	if err := os.WriteFile(path, []byte(markdown), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}
	return nil
}

// printResults outputs conversion results using the environment writers.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}

// printOutline prints the heading outline of the produced markdown.
func printOutline(env *Environment, markdown string) {
	for _, h := range pdf2md.Outline(markdown) {
		fmt.Fprintf(env.Stdout, "%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
	}
}
