// Package sanitize strips markup from free-text configuration before it is
// embedded into generated documents. Labels, agent names, and welcome
// messages are author-entered strings; treating them as text-only keeps the
// export from smuggling arbitrary HTML into a host page.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text removes every HTML element and entity-decodes the remainder, returning
// plain text suitable for re-escaping in any markup context.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := policy().Sanitize(trimmed)
	// bluemonday entity-encodes surviving text; decode so downstream
	// serializers escape exactly once.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func policy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
