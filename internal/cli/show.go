package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/recipebook/internal/config"
	"github.com/aretw0/recipebook/internal/presentation/markdown"
	"github.com/aretw0/recipebook/internal/presentation/tui"
)

// Show prints a recipe as Markdown. When styled is true the Markdown is
// rendered for the terminal with the configured style.
func Show(w io.Writer, cfg config.Config, name string, files []string, styled bool) error {
	files, err := resolveFiles(cfg, files)
	if err != nil {
		return err
	}
	book, _, err := loadBook(cfg, files)
	if err != nil {
		return err
	}

	recipe, ok, err := book.Registry().For(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("recipe not found: %s", name)
	}

	out := markdown.Recipe(recipe)
	if styled {
		render, err := tui.NewRenderer(cfg.Style)
		if err != nil {
			return err
		}
		if out, err = render(out); err != nil {
			return fmt.Errorf("failed to render recipe: %w", err)
		}
	}

	_, err = io.WriteString(w, out)
	return err
}
