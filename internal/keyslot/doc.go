// Package keyslot manages the key table of a gradient ramp.
//
// A ramp has up to 100 key slots indexed 0..99. Indices 0 and 99 are
// fixed endpoints that always exist and can never be deleted; interior
// keys come and go. Each key is a position in [0, 1], an RGBA color and
// a delete control, living as a parameter group triple in a
// store.ParameterStore.
//
// Index assignment fills the lowest missing interior index before
// growing the range, so deleting key 2 from {0,1,2,3,99} and adding a
// key yields index 2 again. With sort-on-change enabled the interior
// keys are relabeled 1..k by ascending position after every insertion
// and on the explicit sort trigger.
//
// The manager is single-writer: the host serializes calls.
package keyslot
