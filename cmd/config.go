package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Destination is where a report is written.
type Destination string

const (
	Stdout Destination = "stdout"
	File   Destination = "file"
)

// Output formats.
const (
	FormatTerminal = "terminal"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatXLSX     = "xlsx"
	FormatJSON     = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTerminal, FormatMarkdown, FormatHTML, FormatXLSX, FormatJSON}

// Config is everything a run of the pipeline needs.
type Config struct {
	InputPath   string
	Destination Destination
	OutputPath  string // when Destination is File
	RowLimit    int    // 0 for all the holdings
	FirmName    string
	Format      string // empty to infer it from the destination
	Style       string // glamour style of terminal output
	Width       int    // word wrap of terminal output
}

// SetOutput sets the destination from an output path, "" or "-" meaning the
// standard output.
func (c *Config) SetOutput(path string) {
	if path == "" || path == "-" {
		c.Destination, c.OutputPath = Stdout, ""
		return
	}
	c.Destination, c.OutputPath = File, path
}

// format returns the output format, inferred from the output file extension
// when not set.
func (c Config) format() (string, error) {
	if c.Format != "" {
		for _, f := range Formats {
			if f == c.Format {
				return f, nil
			}
		}
		return "", fmt.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Destination != File {
		return FormatTerminal, nil
	}
	switch strings.ToLower(filepath.Ext(c.OutputPath)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatMarkdown, nil
	}
}

// Validate checks that c can run.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("missing filing path")
	}
	if c.Destination == File && c.OutputPath == "" {
		return errors.New("missing output path")
	}
	if c.RowLimit < 0 {
		return fmt.Errorf("invalid row limit %d", c.RowLimit)
	}
	_, err := c.format()
	return err
}

// LoadConfig returns the default configuration: built-in values overridden
// by an optional f13.yaml file, then by F13_* environment variables. A .env
// file in the working directory is loaded into the environment first.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("rows", 0)
	v.SetDefault("output", "")
	v.SetDefault("format", "")
	v.SetDefault("firm", "")
	v.SetDefault("style", "auto")
	v.SetDefault("width", 120)

	v.SetConfigName("f13")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".f13"))
	}
	v.SetEnvPrefix("F13")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		RowLimit: v.GetInt("rows"),
		FirmName: v.GetString("firm"),
		Format:   v.GetString("format"),
		Style:    v.GetString("style"),
		Width:    v.GetInt("width"),
	}
	cfg.SetOutput(v.GetString("output"))
	return cfg, nil
}
