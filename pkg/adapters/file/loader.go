package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document represents the structure of a recipe book file.
type Document struct {
	Recipes []map[string]any `yaml:"recipes" json:"recipes"`
}

// entry is a single recipe as written in a recipe book file.
type entry struct {
	Name        string   `mapstructure:"name"`
	Ingredients []string `mapstructure:"ingredients"`
	Method      []string `mapstructure:"method"`
}

// Result is the outcome of one recipe in a file.
type Result struct {
	Name     string
	Accepted bool
	Err      error // validation failure when Accepted is false
}

// LoadReport lists what happened to each recipe of a file, in file order.
type LoadReport struct {
	Path    string
	Results []Result
}

// Accepted returns the names of the recipes that were registered.
func (r *LoadReport) Accepted() []string {
	var names []string
	for _, res := range r.Results {
		if res.Accepted {
			names = append(names, res.Name)
		}
	}
	return names
}

// Rejected returns the recipes that failed validation.
func (r *LoadReport) Rejected() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Accepted {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every recipe in the file was accepted.
func (r *LoadReport) OK() bool {
	return len(r.Rejected()) == 0
}

// Load reads a recipe book (YAML, or JSON for ".json" files) and describes
// every recipe in it through b.
func Load(path string, b *dsl.Builder) (*LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe book: %w", err)
	}

	report, err := Parse(data, filepath.Ext(path), b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Path = path
	return report, nil
}

// Parse decodes a recipe book and describes every recipe in it through b.
// ext selects the format: ".json" for JSON, anything else for YAML.
// The whole document is decoded before any recipe is described, so a malformed
// file registers nothing.
func Parse(data []byte, ext string, b *dsl.Builder) (*LoadReport, error) {
	doc, err := decodeDocument(data, ext)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(doc.Recipes))
	for i, raw := range doc.Recipes {
		e, err := decodeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("recipe #%d: %w", i+1, err)
		}
		entries = append(entries, e)
	}

	report := &LoadReport{}
	for _, e := range entries {
		describe(b, e)
		res := Result{Name: e.Name, Accepted: true}
		if err := domain.Validate(domain.NewRecipe(e.Name, e.Ingredients, e.Method)); err != nil {
			res.Accepted = false
			res.Err = err
		}
		report.Results = append(report.Results, res)
	}

	if err := b.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// decodeDocument rejects unknown top-level keys so that a misspelt "recipes"
// fails instead of loading an empty book.
func decodeDocument(data []byte, ext string) (Document, error) {
	var doc Document
	if strings.ToLower(ext) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return doc, fmt.Errorf("failed to parse JSON recipe book: %w", err)
		}
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return doc, fmt.Errorf("failed to parse YAML recipe book: %w", err)
	}
	return doc, nil
}

func decodeEntry(raw map[string]any) (entry, error) {
	var e entry
	if name, ok := raw["name"]; ok {
		if _, isString := name.(string); !isString {
			return e, fmt.Errorf("%w: expected recipe name to be a string, got %T", domain.ErrInvalidArgument, name)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &e,
	})
	if err != nil {
		return e, err
	}
	if err := decoder.Decode(raw); err != nil {
		return e, fmt.Errorf("failed to decode recipe: %w", err)
	}
	return e, nil
}

func describe(b *dsl.Builder, e entry) {
	b.Recipe(e.Name, func() {
		for _, ingredient := range e.Ingredients {
			b.Ingredient(ingredient)
		}
		b.Method(func() {
			for _, step := range e.Method {
				b.Step(step)
			}
		})
	})
}
