// Package rng centralizes deterministic random generation for the graphkern
// generators.
//
// Goals:
//   - Determinism: same seed => identical output across platforms of equal
//     endianness; no time-based sources hidden anywhere.
//   - Substreaming: parallel workers draw from independent streams derived
//     from (parent seed, stream id) by a SplitMix64 finalizer, so observable
//     generator output never depends on scheduling for a fixed seed and
//     worker count.
//   - Safety: no panics; sentinel errors for invalid sampling inputs.
//
// Concurrency: an *RNG is NOT goroutine-safe. Derive one substream per
// worker with Substream and keep each confined to its goroutine.
package rng
