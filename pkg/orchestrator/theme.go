package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/whatsx/formkit/pkg/model"
)

// WithThemeSelector registers a go-theme selector so requests can resolve a
// named preset into style tokens ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme resolved when a request names none. Only
// meaningful together with WithThemeSelector.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// Token names recognised in a theme manifest. Unknown tokens are ignored so a
// shared manifest can carry entries for other consumers.
const (
	themeTokenPrimary    = "primaryColor"
	themeTokenBackground = "backgroundColor"
	themeTokenText       = "textColor"
	themeTokenFont       = "fontFamily"
	themeTokenRadius     = "borderRadius"
	themeTokenSpacing    = "spacing"
)

func (o *Orchestrator) applyTheme(form *model.Form, req Request) error {
	if o.themeSelector == nil {
		return nil
	}
	name := strings.TrimSpace(req.ThemeName)
	variant := strings.TrimSpace(req.ThemeVariant)
	if name == "" {
		name = o.themeName
		if variant == "" {
			variant = o.themeVariant
		}
	}
	if name == "" {
		return nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return fmt.Errorf("orchestrator: resolve theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	tokens := mergedTokens(selection.Manifest, selection.Variant)
	applyTokens(&form.Style, tokens)
	return nil
}

func mergedTokens(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			for key, value := range v.Tokens {
				out[key] = value
			}
		}
	}
	return out
}

func applyTokens(style *model.StyleTokens, tokens map[string]string) {
	set := func(dst *string, key string) {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			*dst = value
		}
	}
	set(&style.PrimaryColor, themeTokenPrimary)
	set(&style.BackgroundColor, themeTokenBackground)
	set(&style.TextColor, themeTokenText)
	set(&style.FontFamily, themeTokenFont)
	set(&style.BorderRadius, themeTokenRadius)
	set(&style.Spacing, themeTokenSpacing)
}
