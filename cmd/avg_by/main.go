package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"csvdoc/pkg/aggregator"
	attr "csvdoc/pkg/api/attribute"
	"csvdoc/pkg/csvparser"
	"csvdoc/pkg/document"
	"csvdoc/pkg/storage"
	"csvdoc/pkg/streams"
)

var (
	logPath   string
	filePath  string
	keyCol    string
	valueCol  string
	encName   string
	comma     string
	quotes    bool
	floats    bool
	normalize bool
	verbose   bool
	logCfg    slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stderr")
	pflag.StringVarP(&filePath, "file", "f", "", "path to CSV file with a header row")
	pflag.StringVarP(&keyCol, "key", "k", "", "header of the column to group by")
	pflag.StringVarP(&valueCol, "value", "n", "", "header of the numeric column to average")
	pflag.StringVarP(&encName, "encoding", "e", "", "IANA name of the file encoding, e.g. windows-1252. Default is UTF-8")
	pflag.StringVar(&comma, "comma", ",", "field delimiter, a single byte")
	pflag.BoolVarP(&quotes, "quotes", "q", false, "honour RFC 4180 double quotes")
	pflag.BoolVar(&floats, "floats", false, "average as float64 instead of exact decimals")
	pflag.BoolVar(&normalize, "normalize", false, "group keys case-insensitively with white space collapsed")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

type groupAverage struct {
	Group   string `json:"group"`
	Average string `json:"average"`
	Count   int64  `json:"count"`
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	if filePath == "" || keyCol == "" || valueCol == "" {
		log.Fatal("please provide --file, --key and --value")
	}
	if len(comma) != 1 {
		log.Fatalf("delimiter must be a single byte, got %q", comma)
	}

	opts := []document.Option{document.WithComma(comma[0])}
	if quotes {
		opts = append(opts, document.WithQuotes('"'))
	}
	enc, err := storage.LookupEncoding(encName)
	if err != nil {
		log.Fatalf("invalid encoding: %v", err)
	}
	if enc != nil {
		opts = append(opts, document.WithEncoding(enc))
	}

	doc, err := document.Open(filePath, opts...)
	if err != nil {
		log.Fatalf("failed to open CSV file %q: %v", filePath, err)
	}
	defer doc.Close()

	csvStream, err := streams.NewCsvStream(doc)
	if err != nil {
		log.Fatalf("failed to create CSV stream: %v", err)
	}

	parserOpts := []csvparser.ParserOption{csvparser.WithColNames(keyCol, valueCol)}
	if floats {
		parserOpts = append(parserOpts, csvparser.WithFloats())
	}
	if normalize {
		parserOpts = append(parserOpts, csvparser.WithKeyNormalization())
	}
	parser, err := csvparser.NewColumnParser(csvStream, parserOpts...)
	if err != nil {
		log.Fatalf("failed to create column parser: %v", err)
	}

	values := make(chan attr.KeyedAttribute, 1024)
	go func() {
		if err := parser.ParseAttributes(ctx, values); err != nil {
			slog.Error("Error parsing values", slog.Any("error", err))
		}
	}()

	result, err := aggregator.NewAverageBy().Process(ctx, values)
	if err != nil {
		log.Fatalf("failed to average values: %v", err)
	}

	out := make([]groupAverage, 0, len(result))
	for _, g := range result {
		out = append(out, groupAverage{
			Group:   g.GroupKey().String(),
			Average: g.AverageValue().String(),
			Count:   g.Count(),
		})
	}
	jsonOut := json.NewEncoder(os.Stdout)
	jsonOut.SetIndent("", "  ")
	if err := jsonOut.Encode(out); err != nil {
		log.Fatalf("failed to write result: %v", err)
	}
}
