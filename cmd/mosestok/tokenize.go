package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/example/go-mosestok/internal/lang"
	"github.com/example/go-mosestok/internal/textio"
	"github.com/example/go-mosestok/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var in string
	var out string

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize text line by line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			language, err := lang.Parse(cfg.Tokenize.Language)
			if err != nil {
				return fmt.Errorf("--language: %w (run 'mosestok languages' for the supported set)", err)
			}

			tok, err := tokenizer.New(language, tokenizer.Options{
				AggressiveHyphens: cfg.Tokenize.AggressiveHyphens,
				Escape:            cfg.Tokenize.Escape,
				ProtectedPatterns: cfg.Tokenize.ProtectedPatterns,
			})
			if err != nil {
				return err
			}

			lines, err := readTokenizeInput(in, os.Stdin)
			if err != nil {
				return err
			}

			start := time.Now()
			tokenized := tok.TokenizeDocument(lines)
			slog.Debug("document tokenized",
				"language", language.String(),
				"lines", len(lines),
				"duration", time.Since(start))

			return writeTokenizeOutput(out, tokenized, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&in, "input", "i", "-", "Input file ('-' for stdin)")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file ('-' for stdout)")

	return cmd
}

func readTokenizeInput(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines, err := textio.ReadLines(r)
	if errors.Is(err, textio.ErrInvalidEncoding) {
		return nil, fmt.Errorf("input must be UTF-8 encoded: %w", err)
	}
	return lines, err
}

func writeTokenizeOutput(path string, lines []string, stdout io.Writer) error {
	if path == "" || path == "-" {
		return textio.WriteLines(stdout, lines)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := textio.WriteLines(f, lines); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
