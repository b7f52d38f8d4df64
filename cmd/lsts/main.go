// Command lsts prints linguistic summaries of a time series read from CSV.
//
// Usage:
//
//	lsts -input data.csv [-config lsts.yaml] [-date-column ds] [-value-column y]
//	     [-metric "active users"] [-weekly] [-json]
//	     [-archive out.lsts] [-compression zstd] [-verbose]
//	lsts -restore out.lsts [-json]
//
// Flags override the settings of the configuration file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/arloliu/lsts/archive"
	"github.com/arloliu/lsts/config"
	"github.com/arloliu/lsts/ingest"
	"github.com/arloliu/lsts/pipeline"
	"github.com/arloliu/lsts/summary"
)

type flags struct {
	input       string
	configFile  string
	dateColumn  string
	valueColumn string
	metric      string
	weekly      bool
	archivePath string
	compression string
	restore     string
	asJSON      bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("lsts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.input, "input", "", "CSV file with the time series")
	fs.StringVar(&f.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&f.dateColumn, "date-column", "", "name of the date column")
	fs.StringVar(&f.valueColumn, "value-column", "", "name of the value column")
	fs.StringVar(&f.metric, "metric", "", "name of the measured quantity used in sentences")
	fs.BoolVar(&f.weekly, "weekly", false, "add the weekly average comparison")
	fs.StringVar(&f.archivePath, "archive", "", "write the summaries to this archive file")
	fs.StringVar(&f.compression, "compression", "", "archive compression: none, zstd, s2 or lz4")
	fs.StringVar(&f.restore, "restore", "", "print the summaries stored in this archive file")
	fs.BoolVar(&f.asJSON, "json", false, "print summaries as JSON")
	fs.BoolVar(&f.verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.input == "" && f.restore == "" {
		fs.Usage()
		return nil, errors.New("either -input or -restore is required")
	}

	return f, nil
}

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		var err error
		if cfg, err = config.Load(f.configFile); err != nil {
			return nil, fmt.Errorf("load config %s: %w", f.configFile, err)
		}
	}

	if f.dateColumn != "" {
		cfg.Input.DateColumn = f.dateColumn
	}
	if f.valueColumn != "" {
		cfg.Input.ValueColumn = f.valueColumn
	}
	if f.metric != "" {
		cfg.Metric = f.metric
	}
	if f.weekly {
		cfg.Weekly = true
	}
	if f.archivePath != "" {
		cfg.Archive.Path = f.archivePath
	}
	if f.compression != "" {
		cfg.Archive.Compression = f.compression
	}
	if f.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}

	return cfg, nil
}

func newLogger(cfg *config.Config, stderr io.Writer) (*log.Entry, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	l := log.New()
	l.SetOutput(stderr)
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return log.NewEntry(l).WithField("app", "lsts"), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	if f.restore != "" {
		return restore(f.restore, f.asJSON, stdout, logger)
	}

	groups, err := summarize(f.input, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Archive.Path != "" {
		if err := writeArchive(cfg, groups, logger); err != nil {
			return err
		}
	}

	return printGroups(stdout, groups, f.asJSON)
}

func summarize(input string, cfg *config.Config, logger *log.Entry) ([]summary.Group, error) {
	csvOpts := ingest.DefaultCSVOptions()
	csvOpts.DateColumn = cfg.Input.DateColumn
	csvOpts.ValueColumn = cfg.Input.ValueColumn
	csvOpts.Delimiter = cfg.Input.Comma()
	if cfg.Input.DateFormat != "" {
		csvOpts.DateFormat = cfg.Input.DateFormat
	}

	points, err := ingest.LoadCSV(input, csvOpts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}
	logger.WithField("input", input).Debugf("loaded %d points", len(points))

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, pipeline.WithLogger(logger))

	p, err := pipeline.New(points, summary.DefaultTimeFormatter(), opts...)
	if err != nil {
		return nil, err
	}

	return p.Summaries()
}

func writeArchive(cfg *config.Config, groups []summary.Group, logger *log.Entry) error {
	ct, err := cfg.Compression()
	if err != nil {
		return err
	}

	file, err := os.Create(cfg.Archive.Path)
	if err != nil {
		return err
	}
	n, err := archive.Write(file, groups, archive.WithCompression(ct))
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write archive %s: %w", cfg.Archive.Path, err)
	}

	logger.WithFields(log.Fields{
		"archive":     cfg.Archive.Path,
		"compression": ct.String(),
	}).Infof("archived %d groups in %d bytes", len(groups), n)

	return nil
}

func restore(path string, asJSON bool, stdout io.Writer, logger *log.Entry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	groups, err := archive.Decode(data)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	if stats, err := archive.Stats(data); err == nil {
		logger.WithField("archive", path).Debug(stats.String())
	}

	return printGroups(stdout, groups, asJSON)
}

func printGroups(w io.Writer, groups []summary.Group, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(groups)
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.Title)
		for _, s := range g.Summaries {
			fmt.Fprintf(w, "  [%.2f] %s\n", s.Validity, s.Text)
		}
		if g.Paragraph != nil {
			fmt.Fprintf(w, "  paragraph [%.2f] %s\n", g.Paragraph.Validity, g.Paragraph.Text)
		}
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
