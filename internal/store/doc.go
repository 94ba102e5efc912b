// Package store provides the parameter store boundary for rampctl.
//
// The key slot manager never talks to a host page directly; it drives a
// ParameterStore, which abstracts creating, destroying, reading, writing
// and reordering named parameter groups (Position12, Color12, Delete12).
//
// Two implementations are provided:
//   - MemStore: an in-memory page for tests and unsaved editor sessions
//   - DocStore: a TOML ramp document on disk, one file per ramp
//
// Name parsing (extracting the index from a parameter name) happens only
// at this boundary, and malformed names fail fast with a parse error.
package store
