package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/recipebook/internal/config"
	"github.com/aretw0/recipebook/internal/presentation/markdown"
)

// List prints the names of every registered recipe, sorted. With asMarkdown
// the names are printed as a Markdown index instead of one per line.
func List(w io.Writer, cfg config.Config, args []string, asMarkdown bool) error {
	files, err := resolveFiles(cfg, args)
	if err != nil {
		return err
	}
	book, _, err := loadBook(cfg, files)
	if err != nil {
		return err
	}

	names := book.Registry().Names()
	if asMarkdown {
		_, err = io.WriteString(w, markdown.Index("Recipes", names))
		return err
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
