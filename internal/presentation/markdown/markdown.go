package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/recipebook/pkg/domain"
)

// Recipe produces a Markdown document for a single recipe:
// a title, a bulleted ingredient list and a numbered method.
func Recipe(r domain.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escape(r.Name()))

	sb.WriteString("## Ingredients\n\n")
	for _, ingredient := range r.Ingredients() {
		fmt.Fprintf(&sb, "- %s\n", escape(ingredient))
	}

	sb.WriteString("\n## Method\n\n")
	for i, step := range r.MethodSteps() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, escape(step))
	}

	return sb.String()
}

// Index produces a Markdown list of recipe names under a heading.
func Index(title string, names []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escape(title))
	if len(names) == 0 {
		sb.WriteString("_No recipes._\n")
		return sb.String()
	}
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", escape(name))
	}
	return sb.String()
}

// escape neutralises characters that would otherwise change the Markdown
// structure, including block markers at the start of the text.
func escape(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	s = markdownEscaper.Replace(s)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = `\` + s
	}
	return orderedMarker.ReplaceAllString(s, `$1\$2`)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

var orderedMarker = regexp.MustCompile(`^(\d+)([.)])`)
