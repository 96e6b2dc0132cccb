// Command strsortcli is the external driver for the strsort engines: it
// reads a newline-delimited stream of strings (optionally gzip-decoded),
// sorts them with the chosen engine, and writes them back newline-
// delimited (optionally gzip-compressed). The core sort engines never
// see a file name or an io.Reader — this binary is the sole owner of
// the byte-in/byte-out contract described in spec.md §6.
package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	strsort "github.com/gostrings/strsort"
)

var (
	engineName string
	workers    int
	outPath    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strsortcli [input-file]",
		Short: "Sort newline-delimited strings with a cache-oblivious string sort engine",
		Long: "strsortcli reads lines from a file (or stdin if none is given), " +
			"sorts them with one of strsort's engines, and writes the sorted " +
			"lines to stdout or --out. Input and output are gzip-decoded/" +
			"encoded automatically when the relevant path ends in .gz.",
		Args: cobra.MaximumNArgs(1),
		RunE: runSort,
	}
	root.Flags().StringVarP(&engineName, "engine", "e", "burstsort",
		"sort engine: burstsort, burstsort-compact, burstsort-parallel, funnelsort, or mkq")
	root.Flags().IntVarP(&workers, "workers", "w", 0,
		"worker count for burstsort-parallel (0 = GOMAXPROCS)")
	root.Flags().StringVarP(&outPath, "out", "o", "",
		"output path (default stdout); gzip-compressed if it ends in .gz")
	return root
}

func runSort(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("strsortcli: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	lines, err := readLines(args)
	if err != nil {
		logger.Error("reading input", zap.Error(err))
		return err
	}

	sortEngine, err := resolveEngine(engineName)
	if err != nil {
		logger.Error("resolving engine", zap.Error(err), zap.String("engine", engineName))
		return err
	}

	if workers > 0 {
		strsort.ParallelWorkers = workers
	}

	logger.Info("sorting",
		zap.String("engine", engineName),
		zap.Int("lines", len(lines)),
	)
	sortEngine(lines)

	if err := writeLines(outPath, lines); err != nil {
		logger.Error("writing output", zap.Error(err))
		return err
	}
	return nil
}

func resolveEngine(name string) (func([]string), error) {
	switch name {
	case "burstsort":
		return strsort.Burstsort, nil
	case "burstsort-compact":
		return strsort.BurstsortCompact, nil
	case "burstsort-parallel":
		return strsort.BurstsortParallel, nil
	case "funnelsort":
		return strsort.FunnelSort, nil
	case "mkq":
		return func(s []string) { strsort.MKQSort(s, 0, len(s), 0) }, nil
	default:
		return nil, fmt.Errorf("strsortcli: unknown engine %q", name)
	}
}

func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	path := ""
	if len(args) == 1 {
		path = args[0]
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	var w io.Writer = os.Stdout
	var closers []io.Closer
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		closers = append(closers, f)
		w = f
	}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(w)
		closers = append(closers, gz)
		w = gz
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	// Close in reverse order: gzip writer (if any) before the file it
	// wraps, flushing its trailer before the underlying fd goes away.
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			return err
		}
	}
	return nil
}
