// Package template renders submission payloads through pongo2. Templates are
// given inline or loaded by name from a directory.
package template
