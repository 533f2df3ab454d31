// Package fairplay lets a player commit to a hand before the opponent
// chooses, and prove afterwards that the hand played is the committed one.
//
// # Scheme
//
// Commitments are Pedersen commitments on the Ed25519 group:
//
//	C = h·G + r·H
//
// where h is the hand index, r a random blinding scalar, G the group base
// point and H a second generator derived from a fixed seed through the suite
// XOF, so nobody knows its discrete logarithm with respect to G.
//
// Commitment hides the hand (r is uniform) and binds the committer to it:
// opening C to a different hand would require the discrete log of H.
//
// # Usage
//
// Call Commit before the round and publish the Commitment. After both
// players have chosen, publish the Opening; anyone can call Verify.
package fairplay
