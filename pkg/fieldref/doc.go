// Package fieldref keeps one live control handle per declared field name so a
// host UI can bind inputs at mount time and read their values later without
// routing every keystroke through its render cycle. Each name resolves to an
// Entry that is Unset, a Single handle, or an ordered Group of handles sharing
// one name (radio-style sets). Group membership is decided by the first handle
// bound to a name and never changes afterwards. Reads fail with
// *UnboundFieldError when the targeted field has not been bound yet, and the
// aggregate reads (FormData, Values) fail fast on the first such field rather
// than returning partial data.
//
// A Registry is owned by a single host instance and is not safe for
// concurrent use. Unmount notifications (a nil handle) are accepted but do not
// prune previously bound handles.
package fieldref
