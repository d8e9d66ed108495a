// Package orchestrator wires the loader, parser, model builder, decorators and
// renderer into a single entry point. Forms come either from an OpenAPI
// operation or from a declaration store; both paths end in a renderer that
// mounts controls into a field reference registry and returns the payload.
package orchestrator
