package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/etnz/thirteenf"
	"github.com/etnz/thirteenf/renderer"
)

// LoadFirm decodes and compiles the filing at cfg.InputPath.
func LoadFirm(cfg Config) (*thirteenf.Firm, error) {
	start := time.Now()
	tree, err := thirteenf.LoadFiling(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	log.Printf("decoded %s in %v", cfg.InputPath, time.Since(start))

	holdings, err := thirteenf.Compile(tree)
	if err != nil {
		return nil, err
	}
	log.Printf("compiled %d holdings in %v", len(holdings), time.Since(start))
	return thirteenf.NewFirm(cfg.FirmName, holdings)
}

// Run executes the whole pipeline: it reads the filing, compiles the firm
// holdings, and writes the holdings report to the configured destination,
// stdout standing for the standard output.
func Run(cfg Config, stdout io.Writer) error {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, _ := cfg.format()

	firm, err := LoadFirm(cfg)
	if err != nil {
		return err
	}
	rows, err := renderer.Rows(firm, cfg.RowLimit)
	if err != nil {
		return err
	}

	err = emit(cfg, stdout, func(w io.Writer) error {
		switch format {
		case FormatXLSX:
			return renderer.XLSX(w, firm, rows)
		case FormatJSON:
			return renderer.JSON(w, firm, rows)
		default:
			return writeMarkdown(w, format, cfg, renderer.Markdown(firm, rows))
		}
	})
	if err != nil {
		return err
	}
	log.Printf("process finished in %v", time.Since(start))
	return nil
}

// RunMarkdown writes a markdown document to the configured destination.
// Only the terminal, markdown and html formats apply.
func RunMarkdown(cfg Config, stdout io.Writer, markdown string) error {
	format, err := cfg.format()
	if err != nil {
		return err
	}
	if format == FormatXLSX || format == FormatJSON {
		return fmt.Errorf("format %q is only available for the holdings report", format)
	}
	return emit(cfg, stdout, func(w io.Writer) error {
		return writeMarkdown(w, format, cfg, markdown)
	})
}

func writeMarkdown(w io.Writer, format string, cfg Config, markdown string) error {
	switch format {
	case FormatHTML:
		return renderer.HTML(w, markdown)
	case FormatTerminal:
		return renderer.Terminal(w, markdown, cfg.Style, cfg.Width)
	default:
		_, err := io.WriteString(w, markdown)
		return err
	}
}

// emit calls write on the configured destination. The output file is
// created only once the report is ready to be written, and always closed.
func emit(cfg Config, stdout io.Writer, write func(io.Writer) error) (err error) {
	if cfg.Destination != File {
		return write(stdout)
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("error writing %q: %w", cfg.OutputPath, err)
	}
	log.Printf("report written to %s", cfg.OutputPath)
	return nil
}
