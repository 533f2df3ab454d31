package fairplay

import (
	"encoding/hex"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
)

// ErrCommitmentMismatch is returned when an opening does not match a
// commitment.
var ErrCommitmentMismatch = errors.New("opening does not match commitment")

var suite suites.Suite = suites.MustFind("Ed25519")

// blindingBase is the second generator H.
var blindingBase kyber.Point = suite.Point().Pick(suite.XOF([]byte("mental-mukjjippa/fairplay/H")))

// Commitment is a published commitment to a hand.
type Commitment struct {
	point kyber.Point
}

// Opening reveals the committed hand and its blinding factor.
type Opening struct {
	Hand  mjp.Hand
	blind kyber.Scalar
}

// Commit commits to h with a fresh blinding factor.
func Commit(h mjp.Hand) (Commitment, Opening, error) {
	if _, ok := mjp.ChoiceOf(h).Hand(); !ok {
		return Commitment{}, Opening{}, fmt.Errorf("cannot commit to %s", h)
	}
	r := suite.Scalar().Pick(suite.RandomStream())
	o := Opening{Hand: h, blind: r}
	return Commitment{point: o.point()}, o, nil
}

func (o Opening) point() kyber.Point {
	m := suite.Scalar().SetInt64(int64(o.Hand))
	c := suite.Point().Mul(m, nil)
	return c.Add(c, suite.Point().Mul(o.blind, blindingBase))
}

// Verify checks that o opens c.
func (o Opening) Verify(c Commitment) error {
	if c.point == nil || o.blind == nil {
		return fmt.Errorf("verify %s: %w", o.Hand, ErrCommitmentMismatch)
	}
	if !o.point().Equal(c.point) {
		return fmt.Errorf("verify %s: %w", o.Hand, ErrCommitmentMismatch)
	}
	return nil
}

// Bytes returns the marshalled commitment point.
func (c Commitment) Bytes() ([]byte, error) {
	if c.point == nil {
		return nil, fmt.Errorf("empty commitment")
	}
	return c.point.MarshalBinary()
}

// String returns the hex encoding of the commitment, or "<none>".
func (c Commitment) String() string {
	b, err := c.Bytes()
	if err != nil {
		return "<none>"
	}
	return hex.EncodeToString(b)
}

// ParseCommitment decodes a commitment produced by String.
func ParseCommitment(s string) (Commitment, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Commitment{}, fmt.Errorf("decode commitment: %w", err)
	}
	p := suite.Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return Commitment{}, fmt.Errorf("unmarshal commitment: %w", err)
	}
	return Commitment{point: p}, nil
}
