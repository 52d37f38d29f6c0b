// Package tags implements the headless tag collection model behind the
// tagsinput component.
//
// An Editor owns an ordered list of committed tags, a single-line pending
// input buffer and at most one selected tag. Selection is an index into the
// list, never a rendering lookup, so the model can be driven and tested
// without a terminal.
package tags
