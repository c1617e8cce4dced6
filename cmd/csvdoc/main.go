package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"csvdoc/pkg/document"
	"csvdoc/pkg/storage"
)

var (
	logPath  string
	filePath string
	outPath  string
	encName  string
	comma    string
	quotes   bool
	verbose  bool
	edits    []edit
	logCfg   slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

// edit is one --append or --set, kept in command-line order.
type edit struct {
	set   bool
	index int
	row   string
}

// editFlag records every occurrence of its flag into the shared edits list.
type editFlag struct {
	set   bool
	edits *[]edit
}

var _ pflag.Value = (*editFlag)(nil)

func (f *editFlag) String() string { return "" }

func (f *editFlag) Type() string {
	if f.set {
		return "index=row"
	}
	return "row"
}

func (f *editFlag) Set(arg string) error {
	e := edit{set: f.set, row: arg}
	if f.set {
		idx, row, err := parseSet(arg)
		if err != nil {
			return err
		}
		e.index, e.row = idx, row
	}
	*f.edits = append(*f.edits, e)
	return nil
}

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stderr")
	pflag.StringVarP(&filePath, "file", "f", "", "path to the CSV file")
	pflag.StringVarP(&outPath, "out", "o", "", "write the document to this path after changes")
	pflag.StringVarP(&encName, "encoding", "e", "", "IANA name of the file encoding, e.g. windows-1252. Default is UTF-8")
	pflag.StringVar(&comma, "comma", ",", "field delimiter, a single byte")
	pflag.BoolVarP(&quotes, "quotes", "q", false, "honour RFC 4180 double quotes")
	pflag.VarP(&editFlag{edits: &edits}, "append", "a", "row to append; may be repeated")
	pflag.VarP(&editFlag{set: true, edits: &edits}, "set", "s", "replace a row, given as INDEX=ROW; may be repeated")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func options() ([]document.Option, error) {
	if len(comma) != 1 {
		return nil, fmt.Errorf("delimiter must be a single byte, got %q", comma)
	}
	opts := []document.Option{document.WithComma(comma[0])}
	if quotes {
		opts = append(opts, document.WithQuotes('"'))
	}
	enc, err := storage.LookupEncoding(encName)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		opts = append(opts, document.WithEncoding(enc))
	}
	return opts, nil
}

func parseSet(arg string) (int, string, error) {
	idx, row, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, "", fmt.Errorf("expected INDEX=ROW, got %q", arg)
	}
	n, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, "", fmt.Errorf("bad row index %q: %w", idx, err)
	}
	return n, row, nil
}

// applyEdits runs appends and sets in the order they were given.
func applyEdits(doc *document.Document, edits []edit) error {
	for _, e := range edits {
		if e.set {
			if err := doc.SetString(e.index, e.row); err != nil {
				return fmt.Errorf("unable to set row %d: %w", e.index, err)
			}
			continue
		}
		if err := doc.AppendString(e.row); err != nil {
			return fmt.Errorf("unable to append row %q: %w", e.row, err)
		}
	}
	return nil
}

func run(doc *document.Document) error {
	if err := applyEdits(doc, edits); err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	for row, ok := doc.Next(); ok; row, ok = doc.Next() {
		sep := ""
		for field, ok := row.Next(); ok; field, ok = row.Next() {
			out.WriteString(sep)
			out.Write(field)
			sep = " "
		}
		out.WriteByte('\n')
	}
	if err := out.Flush(); err != nil {
		return err
	}

	if outPath != "" {
		if err := doc.Write(outPath); err != nil {
			return err
		}
		slog.Debug("Document written", slog.String("path", outPath), slog.Int("rows", doc.Len()))
	}
	return nil
}

func main() {
	cmdLineParse()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	if filePath == "" {
		log.Fatal("please provide a CSV file path using --file")
	}
	opts, err := options()
	if err != nil {
		log.Fatalf("invalid options: %v", err)
	}

	if err := document.With(filePath, run, opts...); err != nil {
		log.Fatalf("error: %v", err)
	}
}
