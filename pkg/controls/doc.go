// Package controls provides in-memory input controls that satisfy
// fieldref.Handle, modelled on HTML form elements. Hosts without a browser
// (terminal sessions, tests, server-side form replay) mount these controls
// into a field reference registry and drive them as the user interacts.
//
// Controls are plain mutable values and are not safe for concurrent use.
package controls
