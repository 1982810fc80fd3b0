// Package reading implements the interpretation pipeline: authoritative
// input sanitization, deterministic prompt composition, the completion
// gateway with its sandwich defense, post-response validation, and the
// offline fallback text.
package reading
