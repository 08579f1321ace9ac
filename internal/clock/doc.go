// Package clock provides a thread-safe Lamport logical clock for
// establishing a causal partial order over events in a distributed
// system. The clock is a single lock-free counter: local and send
// events advance it atomically, and receiving a remote timestamp
// merges it with a compare-and-swap retry loop so the local clock
// never regresses behind anything it has observed.
package clock
