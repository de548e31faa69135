package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// RenderOptions carry per-export data renderers consume without mutating the
// form itself.
type RenderOptions struct {
	// Token is the document-unique suffix stamped onto every id and scope the
	// generated document declares. Two exports on one host page must never
	// share a token. When empty, renderers draw one from IDs.
	Token string

	// IDs supplies tokens when Token is empty. Renderers fall back to the
	// package default (uuid-backed) when nil.
	IDs IDSource
}

// ResolveToken returns the explicit token or mints one from the configured
// source.
func (o RenderOptions) ResolveToken() string {
	if token := strings.TrimSpace(o.Token); token != "" {
		return sanitizeToken(token)
	}
	source := o.IDs
	if source == nil {
		source = defaultIDSource
	}
	return sanitizeToken(source.Token())
}

// IDSource mints document-unique suffixes. Injecting it keeps "two exports
// never collide" a property of the input rather than of the wall clock.
type IDSource interface {
	Token() string
}

// UUIDSource mints random tokens. The short form keeps generated ids
// readable while staying unique per export for any practical host page.
type UUIDSource struct{}

func (UUIDSource) Token() string {
	id := uuid.NewString()
	return strings.ReplaceAll(id, "-", "")[:12]
}

// SequenceSource mints deterministic tokens for tests and reproducible
// builds.
type SequenceSource struct {
	Prefix string
	n      atomic.Uint64
}

func (s *SequenceSource) Token() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "seq"
	}
	return fmt.Sprintf("%s%d", prefix, s.n.Add(1))
}

var defaultIDSource IDSource = UUIDSource{}

// sanitizeToken restricts tokens to characters safe inside both DOM ids and
// generated identifiers. Anything else becomes a hyphen.
func sanitizeToken(token string) string {
	var builder strings.Builder
	builder.Grow(len(token))
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		default:
			builder.WriteByte('-')
		}
	}
	out := strings.Trim(builder.String(), "-")
	if out == "" {
		return defaultIDSource.Token()
	}
	return out
}
