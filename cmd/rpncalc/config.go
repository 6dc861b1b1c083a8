package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/rpncalc"
)

// config is the shell configuration. It can be loaded from a YAML file, and
// command-line flags override the file.
type config struct {
	// MaxLength is the expression length limit. Zero disables it.
	MaxLength int `yaml:"max_length"`
	// Precision is the working precision in bits of ln, log and ^.
	Precision uint `yaml:"precision"`
	// Format is the fmt verb for results.
	Format string `yaml:"format"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
	// Warnings enables reports of dropped redundant operators.
	Warnings bool `yaml:"warnings"`
	// Jobs is the number of expressions evaluated at once.
	Jobs int `yaml:"jobs"`
	// Echo prints each expression's postfix form before its result.
	Echo bool `yaml:"echo"`
}

func defaultConfig() config {
	return config{
		MaxLength: rpncalc.DefaultMaxLength,
		Precision: rpncalc.DefaultPrec,
		Format:    "%g",
		Color:     "auto",
		Warnings:  true,
		Jobs:      4,
	}
}

// decodeConfig reads YAML from r over cfg. Fields missing from the document
// keep their values; unknown fields are an error. An empty document is fine.
func decodeConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.validate()
}

func readConfig(name string, cfg *config) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := decodeConfig(f, cfg); err != nil {
		return fmt.Errorf("reading config %s: %w", name, err)
	}
	return nil
}

func (cfg *config) validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, not %q", cfg.Color)
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs (%d) must be positive", cfg.Jobs)
	}
	if cfg.Format == "" {
		return errors.New("empty result format")
	}
	return nil
}

// options returns the calculator options the configuration implies.
func (cfg *config) options() []rpncalc.Option {
	return []rpncalc.Option{
		rpncalc.MaxLength(cfg.MaxLength),
		rpncalc.Prec(cfg.Precision),
	}
}
