// Package journal provides the per-node causal history record. Every
// message a node publishes or receives is appended with the Lamport
// timestamp its event was assigned, and history is read back in the
// Lamport total order (timestamp, then origin node ID as tiebreak).
package journal
