// Package svpa implements the Single Value Product Argument: a proof that
// the committed vector a has a claimed product b = prod_i a_i.
package svpa

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts that the vector committed in CA has product B.
type Statement struct {
	CA group.GqElement `json:"c_a"`
	B  group.ZqElement `json:"b"`
}

// Witness holds the committed vector (length n >= 2) and its randomness.
type Witness struct {
	A group.ZqVector
	R group.ZqElement
}

// Argument is a Single Value Product Argument proof.
type Argument struct {
	CD          group.GqElement `json:"c_d"`
	CLowerDelta group.GqElement `json:"c_lower_delta"`
	CUpperDelta group.GqElement `json:"c_upper_delta"`
	ATilde      group.ZqVector  `json:"a_tilde"` // length n
	BTilde      group.ZqVector  `json:"b_tilde"` // length n
	RTilde      group.ZqElement `json:"r_tilde"`
	STilde      group.ZqElement `json:"s_tilde"`
}

func hashChallenge(h transcript.HashTranscript, pp params.Public, st Statement, cd, cLowerDelta, cUpperDelta group.GqElement) (group.ZqElement, error) {
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.NewInt(st.CA.Value()),
		transcript.NewInt(st.B.Value()),
		transcript.NewInt(cd.Value()),
		transcript.NewInt(cLowerDelta.Value()),
		transcript.NewInt(cUpperDelta.Value()),
	)
}

func ckElements(ck commitment.Key) []group.GqElement {
	out := make([]group.GqElement, ck.Size()+1)
	out[0] = ck.H()
	for i := 0; i < ck.Size(); i++ {
		out[i+1] = ck.G(i)
	}
	return out
}

func pkElements(pk elgamal.PublicKey) []group.GqElement {
	out := make([]group.GqElement, pk.Size())
	for i := range out {
		out[i] = pk.Element(i)
	}
	return out
}

// partialProducts returns b_0=1, b_i=b_{i-1}*a_i for i=1..n (length n+1,
// indexed 0..n; b_n equals the full product).
func partialProducts(zq group.ZqGroup, a group.ZqVector) []group.ZqElement {
	n := a.Len()
	b := make([]group.ZqElement, n+1)
	b[0] = zq.OneElement()
	for i := 1; i <= n; i++ {
		b[i], _ = b[i-1].Multiply(a.Get(i - 1))
	}
	return b
}

// Prove constructs a Single Value Product Argument for a witness vector of
// length n >= 2 whose product is st.B.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	n := w.A.Len()
	if n < 2 {
		return Argument{}, group.InvalidArgument("single value product argument requires n >= 2, got %d", n)
	}
	zq := pp.Group.ZqGroup()

	dElems := make([]group.ZqElement, n)
	for i := range dElems {
		v, err := sampler.Next(zq)
		if err != nil {
			return Argument{}, err
		}
		dElems[i] = v
	}
	d, err := group.NewZqVector(zq, dElems)
	if err != nil {
		return Argument{}, err
	}
	rd, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}
	s0, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}
	sx, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}

	bParts := partialProducts(zq, w.A)

	// delta_1 = d_1; delta_i = -d_i * b_{i-1} for i=2..n-1; delta_n := 0,
	// used only as a boundary value in the response, never committed.
	delta := make([]group.ZqElement, n+1)
	delta[1] = d.Get(0)
	for i := 2; i <= n-1; i++ {
		t, err := d.Get(i - 1).Multiply(bParts[i-1])
		if err != nil {
			return Argument{}, err
		}
		delta[i] = t.Negate()
	}
	delta[n] = zq.ZeroElement()

	// Delta_i = -d_{i+1} * delta_i for i=1..n-1.
	upperDelta := make([]group.ZqElement, n)
	for i := 1; i <= n-1; i++ {
		t, err := d.Get(i).Multiply(delta[i])
		if err != nil {
			return Argument{}, err
		}
		upperDelta[i] = t.Negate()
	}

	cd, err := commitment.GetCommitment(d, rd, pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	lowerDeltaVals := make([]group.ZqElement, n-1)
	for i := 1; i <= n-1; i++ {
		lowerDeltaVals[i-1] = upperDelta[i]
	}
	lowerDeltaVec, err := group.NewZqVector(zq, lowerDeltaVals)
	if err != nil {
		return Argument{}, err
	}
	cLowerDelta, err := commitment.GetCommitment(lowerDeltaVec, s0, pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	upperDeltaVals := make([]group.ZqElement, 0)
	for i := 2; i <= n-1; i++ {
		upperDeltaVals = append(upperDeltaVals, delta[i])
	}
	upperDeltaVec, err := group.NewZqVector(zq, upperDeltaVals)
	if err != nil {
		return Argument{}, err
	}
	cUpperDelta, err := commitment.GetCommitment(upperDeltaVec, sx, pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	x, err := hashChallenge(h, pp, st, cd, cLowerDelta, cUpperDelta)
	if err != nil {
		return Argument{}, err
	}

	aTildeElems := make([]group.ZqElement, n)
	bTildeElems := make([]group.ZqElement, n)
	for i := 1; i <= n; i++ {
		xa, err := x.Multiply(w.A.Get(i - 1))
		if err != nil {
			return Argument{}, err
		}
		at, err := xa.Add(d.Get(i - 1))
		if err != nil {
			return Argument{}, err
		}
		aTildeElems[i-1] = at

		xb, err := x.Multiply(bParts[i])
		if err != nil {
			return Argument{}, err
		}
		bt, err := xb.Add(delta[i])
		if err != nil {
			return Argument{}, err
		}
		bTildeElems[i-1] = bt
	}
	aTilde, err := group.NewZqVector(zq, aTildeElems)
	if err != nil {
		return Argument{}, err
	}
	bTilde, err := group.NewZqVector(zq, bTildeElems)
	if err != nil {
		return Argument{}, err
	}

	xr, err := x.Multiply(w.R)
	if err != nil {
		return Argument{}, err
	}
	rTilde, err := xr.Add(rd)
	if err != nil {
		return Argument{}, err
	}

	xs, err := x.Multiply(sx)
	if err != nil {
		return Argument{}, err
	}
	sTilde, err := xs.Add(s0)
	if err != nil {
		return Argument{}, err
	}

	return Argument{
		CD: cd, CLowerDelta: cLowerDelta, CUpperDelta: cUpperDelta,
		ATilde: aTilde, BTilde: bTilde,
		RTilde: rTilde, STilde: sTilde,
	}, nil
}

// Verify recomputes the challenge and checks the three response equations.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	n := arg.ATilde.Len()
	if n < 2 || arg.BTilde.Len() != n {
		return verification.Result{}, group.InvalidArgument("single value product argument has inconsistent dimensions")
	}

	x, err := hashChallenge(h, pp, st, arg.CD, arg.CLowerDelta, arg.CUpperDelta)
	if err != nil {
		return verification.Result{}, err
	}

	ckN, err := pp.Ck.Truncate(n)
	if err != nil {
		return verification.Result{}, err
	}
	ckNMinus1, err := pp.Ck.Truncate(n - 1)
	if err != nil {
		return verification.Result{}, err
	}

	// Check 1: com(a~; r~) == c_a^x * c_d.
	lhs1, err := commitment.GetCommitment(arg.ATilde, arg.RTilde, ckN)
	if err != nil {
		return verification.Result{}, err
	}
	caX, err := st.CA.Exponentiate(x)
	if err != nil {
		return verification.Result{}, err
	}
	rhs1, err := caX.Multiply(arg.CD)
	if err != nil {
		return verification.Result{}, err
	}
	if !lhs1.Equals(rhs1) {
		return verification.Failed("single value product argument check 1 (a~ opening) failed"), nil
	}

	// Check 2: com((b~_1,...,b~_{n-1}); s~) == c_Delta^x * c_delta.
	bTildeHead := make([]group.ZqElement, n-1)
	for i := 0; i < n-1; i++ {
		bTildeHead[i] = arg.BTilde.Get(i)
	}
	bTildeHeadVec, err := group.NewZqVector(pp.Group.ZqGroup(), bTildeHead)
	if err != nil {
		return verification.Result{}, err
	}
	lhs2, err := commitment.GetCommitment(bTildeHeadVec, arg.STilde, ckNMinus1)
	if err != nil {
		return verification.Result{}, err
	}
	cUpperX, err := arg.CUpperDelta.Exponentiate(x)
	if err != nil {
		return verification.Result{}, err
	}
	rhs2, err := cUpperX.Multiply(arg.CLowerDelta)
	if err != nil {
		return verification.Result{}, err
	}
	if !lhs2.Equals(rhs2) {
		return verification.Failed("single value product argument check 2 (b~ opening) failed"), nil
	}

	// Check 3: b~_n == x * b.
	xb, err := x.Multiply(st.B)
	if err != nil {
		return verification.Result{}, err
	}
	if !arg.BTilde.Get(n - 1).Equals(xb) {
		return verification.Failed("single value product argument check 3 (product closing) failed"), nil
	}

	return verification.Verified(), nil
}
