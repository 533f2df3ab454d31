// Package mjp implements the domain logic of a two-player Mukjjippa match:
// an opening Rock-Paper-Scissors round followed by the MJP phase.
//
// # Core Types
//
// Hand: one of Rock, Paper, Scissors, ordered cyclically.
//
// Choice: what a Player submits for a round. Besides the three hands it can be
// Exit (the player quits) or Invalid (malformed input).
//
// Turn: the player holding the advantage in the MJP phase, or none.
//
// Phase: either the RPS phase or the MJP phase held by a player.
//
// # Game Flow
//
// The match starts in the RPS phase. Drawn RPS rounds are replayed. The first
// decisive RPS round moves the match into the MJP phase, held by the winner.
// In the MJP phase both hands are remapped before scoring; a decisive round
// hands the advantage to its winner, a drawn round ends the match in favour
// of the player that held the advantage.
//
// The Referee owns the state machine and reports what happened through a
// Reporter. The GameManager plays one round per PlayRound call by asking two
// Players for a Choice and forwarding them to the Referee.
package mjp
