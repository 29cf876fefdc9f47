package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/recipebook/internal/config"
	"github.com/aretw0/recipebook/internal/presentation/tui"
	"github.com/aretw0/recipebook/pkg/adapters/file"
)

// Validate loads each file into its own book and prints one line per recipe.
// Returns ErrValidationFailed if any recipe was rejected.
func Validate(w io.Writer, cfg config.Config, args []string) error {
	files, err := resolveFiles(cfg, args)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range files {
		_, reports, err := loadBook(cfg, []string{path})
		if err != nil {
			fmt.Fprintln(w, tui.Status(false, err.Error()))
			failed++
			continue
		}
		failed += printReport(w, reports[0])
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrValidationFailed, failed)
	}
	return nil
}

func printReport(w io.Writer, report *file.LoadReport) int {
	printSystemMessage(w, "%s", report.Path)
	failed := 0
	for _, res := range report.Results {
		if res.Accepted {
			fmt.Fprintln(w, tui.Status(true, res.Name))
			continue
		}
		failed++
		fmt.Fprintln(w, tui.Status(false, res.Err.Error()))
	}
	return failed
}
