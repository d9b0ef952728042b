package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textbuf"
	"github.com/npillmayer/textbuf/display"
	"gopkg.in/yaml.v3"
)

// Config is the configuration file of textedit.
type Config struct {
	MaxSegmentSize int    `yaml:"max_segment_size"`
	Policy         string `yaml:"policy"`
	TraceLevel     string `yaml:"trace_level"`
	TraceFile      string `yaml:"trace_file"`
	TabWidth       int    `yaml:"tab_width"`
	Gutter         *bool  `yaml:"gutter"`
}

// defaultConfig is used for settings missing from the configuration file.
var defaultConfig = Config{
	Policy:     "coalesce",
	TraceLevel: "error",
	TabWidth:   display.DefaultTabWidth,
}

// LoadConfig reads a YAML configuration file. A missing file yields the
// default configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig, nil
	} else if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig parses the YAML content of a configuration file. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	conf := defaultConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", textbuf.ErrInvalidConfig, err)
	}
	if conf.TabWidth <= 0 {
		conf.TabWidth = display.DefaultTabWidth
	}
	if _, err := conf.DocumentConfig(); err != nil {
		return Config{}, err
	}
	if _, err := conf.Level(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// DocumentConfig returns the configuration for documents.
func (conf Config) DocumentConfig() (textbuf.Config, error) {
	policy, err := textbuf.ParsePolicy(conf.Policy)
	if err != nil {
		return textbuf.Config{}, err
	}
	return textbuf.Config{MaxSegmentSize: conf.MaxSegmentSize, Policy: policy}, nil
}

// Level returns the trace level.
func (conf Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(conf.TraceLevel) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: unknown trace level %q",
		textbuf.ErrInvalidConfig, conf.TraceLevel)
}

// ShowGutter reports whether line numbers are displayed.
func (conf Config) ShowGutter() bool {
	return conf.Gutter == nil || *conf.Gutter
}
