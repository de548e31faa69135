// Package templates holds the built-in catalog of pre-assembled form bundles
// authors can start from instead of building a form field by field.
package templates

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/whatsx/formkit/pkg/model"
)

// Template is one immutable catalog entry: a named, categorized form bundle.
// Instantiating copies it into a fresh Form; the entry itself never changes.
type Template struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Category string            `yaml:"category"`
	Title    string            `yaml:"title"`
	Fields   []model.Field     `yaml:"fields"`
	Style    model.StyleTokens `yaml:"style"`
}

// Catalog is a read-only collection of templates keyed by id.
type Catalog struct {
	entries map[string]Template
	order   []string
}

// LoadFS walks the provided filesystem and parses every YAML template
// document. Duplicate ids across files are rejected.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{entries: make(map[string]Template)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("templates: read %s: %w", path, err)
		}

		var doc struct {
			Templates []Template `yaml:"templates"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("templates: parse %s: %w", path, err)
		}

		for _, tpl := range doc.Templates {
			id := strings.TrimSpace(tpl.ID)
			if id == "" {
				return fmt.Errorf("templates: file %s defines a template with no id", path)
			}
			if _, exists := catalog.entries[id]; exists {
				return fmt.Errorf("templates: duplicate template id %q (file %s)", id, path)
			}
			tpl.ID = id
			if (tpl.Style == model.StyleTokens{}) {
				tpl.Style = model.DefaultStyle()
			}
			catalog.entries[id] = tpl
			catalog.order = append(catalog.order, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(catalog.order)
	return catalog, nil
}

// Default loads the embedded catalog. It panics on embed corruption, which
// can only happen at build time.
func Default() *Catalog {
	catalog, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(fmt.Sprintf("templates: embedded catalog: %v", err))
	}
	return catalog
}

// List returns every template ordered by id. Entries are deep copies; the
// catalog stays immutable no matter what callers do with them.
func (c *Catalog) List() []Template {
	if c == nil {
		return nil
	}
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].clone())
	}
	return out
}

// ByCategory groups templates for presentation. The core treats every
// template uniformly regardless of category.
func (c *Catalog) ByCategory() map[string][]Template {
	if c == nil {
		return nil
	}
	out := make(map[string][]Template)
	for _, id := range c.order {
		tpl := c.entries[id].clone()
		out[tpl.Category] = append(out[tpl.Category], tpl)
	}
	return out
}

// Get returns a deep copy of the template with the given id.
func (c *Catalog) Get(id string) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	tpl, ok := c.entries[id]
	if !ok {
		return Template{}, false
	}
	return tpl.clone(), true
}

// Instantiate copies the template into a new Form. One template can seed many
// independent forms; mutations of one never reach another.
func (c *Catalog) Instantiate(id string) (model.Form, error) {
	tpl, ok := c.Get(id)
	if !ok {
		return model.Form{}, fmt.Errorf("templates: template %q not found", id)
	}
	form := model.Form{
		Title:  tpl.Title,
		Fields: tpl.Fields,
		Style:  tpl.Style,
	}
	return form.Clone(), nil
}

func (t Template) clone() Template {
	out := t
	if len(t.Fields) > 0 {
		out.Fields = make([]model.Field, len(t.Fields))
		for i, field := range t.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	return out
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
