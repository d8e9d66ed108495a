// Package openapi exposes the loader and parser contracts used to derive form
// declarations from OpenAPI request bodies. Implementations live under
// internal/openapi to keep kin-openapi dependencies hidden from consumers.
package openapi
