package players

import (
	"fmt"
	"math/rand/v2"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
	"github.com/luca-patrignani/mental-mukjjippa/fairplay"
)

// Computer throws uniformly random hands. It never exits and never submits
// an invalid option.
type Computer struct {
	rng *rand.Rand

	committed  bool
	revealable bool
	opening    fairplay.Opening
}

// NewComputer creates a computer player. A zero seed picks a random one.
func NewComputer(seed uint64) *Computer {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Computer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *Computer) pick() mjp.Hand {
	return mjp.Hand(c.rng.IntN(3))
}

// Commit fixes the hand of the next round and returns a commitment to it.
// A second Commit before the hand is played replaces the first one.
func (c *Computer) Commit() (fairplay.Commitment, error) {
	commitment, opening, err := fairplay.Commit(c.pick())
	if err != nil {
		return fairplay.Commitment{}, fmt.Errorf("commit: %w", err)
	}
	c.opening = opening
	c.committed = true
	c.revealable = false
	return commitment, nil
}

// Reveal returns the opening of the committed hand once it has been played.
func (c *Computer) Reveal() (fairplay.Opening, error) {
	if !c.revealable {
		return fairplay.Opening{}, fmt.Errorf("nothing to reveal")
	}
	return c.opening, nil
}

// ChooseOption plays the committed hand if there is one, a fresh random hand
// otherwise.
func (c *Computer) ChooseOption() mjp.Choice {
	if c.committed {
		c.committed = false
		c.revealable = true
		return mjp.ChoiceOf(c.opening.Hand)
	}
	c.revealable = false
	return mjp.ChoiceOf(c.pick())
}
