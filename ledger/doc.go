// Package ledger implements an append-only, hash-chained log of the rounds
// played in a single match.
//
// # Core Components
//
// Blockchain: An append-only log of rounds with SHA-256 hash chaining for
// tamper detection. It implements mjp.RoundObserver so it can be plugged
// straight into a GameManager.
//
// Block: A single round record with its metadata and the cryptographic link
// to the previous block. The genesis block carries the match id and the
// player names.
//
// # Security Properties
//
// The blockchain provides:
//   - Append-only history: blocks are only ever added at the end
//   - Verifiability: anyone can verify the integrity of the entire chain
//   - Tamper detection: any modification breaks the hash chain
//
// The ledger lives in memory only and is dropped with the match.
package ledger
