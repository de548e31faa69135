// Package template defines the rendering seam between widget renderers and
// the underlying template engine implementation.
package template
