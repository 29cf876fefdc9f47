package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/recipebook"
	"github.com/aretw0/recipebook/internal/config"
	"github.com/aretw0/recipebook/internal/logging"
	"github.com/aretw0/recipebook/pkg/adapters/file"
)

// ErrValidationFailed is returned when at least one recipe was rejected.
var ErrValidationFailed = errors.New("validation failed")

// ErrNoFiles is returned by commands that need at least one recipe book.
var ErrNoFiles = errors.New("no recipe book given (pass files as arguments, --file or the files config key)")

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout recipe output).
func createLogger(cfg config.Config) (*slog.Logger, error) {
	if !cfg.Debug {
		return logging.NewNop(), nil
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(slog.LevelDebug, logging.WithFormat(format)), nil
}

// resolveFiles prefers explicit arguments over configured files.
func resolveFiles(cfg config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(cfg.Files) > 0 {
		return cfg.Files, nil
	}
	return nil, ErrNoFiles
}

// loadBook creates a book and loads every file into it, stopping at the first
// file that cannot be read or parsed.
func loadBook(cfg config.Config, files []string, opts ...recipebook.Option) (*recipebook.Book, []*file.LoadReport, error) {
	logger, err := createLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]recipebook.Option{recipebook.WithLogger(logger)}, opts...)
	book := recipebook.New(opts...)

	reports := make([]*file.LoadReport, 0, len(files))
	for _, path := range files {
		report, err := book.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
		reports = append(reports, report)
	}
	return book, reports, nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
