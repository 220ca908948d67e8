// Package zeroarg implements the Zero Argument: a proof that committed
// matrices A and B, column-paired under the bilinear map star_y, sum to
// zero. Every other argument in this module ultimately reduces to one or
// more Zero Argument instances.
package zeroarg

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts sum_i A_i star_Y B_i = 0 for the committed columns of A
// and B, under the bilinear map with parameter Y.
type Statement struct {
	CA group.GqVector // length m
	CB group.GqVector // length m
	Y  group.ZqElement
}

// Witness holds the committed matrices and column randomness.
type Witness struct {
	A group.ZqMatrix // n x m
	B group.ZqMatrix // n x m
	R group.ZqVector // length m
	S group.ZqVector // length m
}

// Argument is a Zero Argument proof: the field names mirror the canonical
// JSON contract (c_a0, c_bm, c_d, a, b, r, s, t).
type Argument struct {
	CA0    group.GqElement `json:"c_a0"`
	CBM    group.GqElement `json:"c_bm"`
	CD     group.GqVector  `json:"c_d"` // length 2m+1
	APrime group.ZqVector  `json:"a"`   // length n
	BPrime group.ZqVector  `json:"b"`   // length n
	RPrime group.ZqElement `json:"r"`
	SPrime group.ZqElement `json:"s"`
	TPrime group.ZqElement `json:"t"`
}

// bilinear computes a star_y b = sum_{j=1..n} a_j * b_j * y^j (1-indexed in
// the exponent, 0-indexed in storage: index 0 contributes y^1).
func bilinear(a, b group.ZqVector, y group.ZqElement) (group.ZqElement, error) {
	if a.Len() != b.Len() {
		return group.ZqElement{}, group.InvalidArgument("bilinear map operands differ in length: %d vs %d", a.Len(), b.Len())
	}
	zq := y.Group()
	acc := zq.ZeroElement()
	yPow := y
	for j := 0; j < a.Len(); j++ {
		aj, bj := a.Get(j), b.Get(j)
		term, err := aj.Multiply(bj)
		if err != nil {
			return group.ZqElement{}, err
		}
		term, err = term.Multiply(yPow)
		if err != nil {
			return group.ZqElement{}, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return group.ZqElement{}, err
		}
		if j+1 < a.Len() {
			yPow, err = yPow.Multiply(y)
			if err != nil {
				return group.ZqElement{}, err
			}
		}
	}
	return acc, nil
}

func scaleAndSum(zq group.ZqGroup, terms []group.ZqVector, powers []group.ZqElement) (group.ZqVector, error) {
	n := terms[0].Len()
	acc := group.ZeroVector(zq, n)
	for i, term := range terms {
		scaled, err := term.ScalarMultiply(powers[i])
		if err != nil {
			return group.ZqVector{}, err
		}
		acc, err = acc.Add(scaled)
		if err != nil {
			return group.ZqVector{}, err
		}
	}
	return acc, nil
}

func scalarsSum(zq group.ZqGroup, vals, powers []group.ZqElement) (group.ZqElement, error) {
	acc := zq.ZeroElement()
	for i, v := range vals {
		term, err := v.Multiply(powers[i])
		if err != nil {
			return group.ZqElement{}, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return group.ZqElement{}, err
		}
	}
	return acc, nil
}

func powers(x group.ZqElement, n int) []group.ZqElement {
	out := make([]group.ZqElement, n)
	for i := range out {
		out[i] = x.Exponentiate(int64(i))
	}
	return out
}

// hashChallenge derives x from the shared public parameters, the statement
// and the prover's first-round commitments.
func hashChallenge(h transcript.HashTranscript, pp params.Public, st Statement, cA0, cBM group.GqElement, cD group.GqVector) (group.ZqElement, error) {
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.GqElements(st.CA.Slice()...),
		transcript.GqElements(st.CB.Slice()...),
		transcript.NewInt(st.Y.Value()),
		transcript.NewInt(cA0.Value()),
		transcript.NewInt(cBM.Value()),
		transcript.GqElements(cD.Slice()...),
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

// Prove constructs a Zero Argument for statement/witness under the shared
// public parameters pp, drawing fresh randomness from sampler.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	n, m := w.A.NumRows(), w.A.NumColumns()
	if n == 0 || m == 0 {
		return Argument{}, group.InvalidArgument("zero argument matrices must be non-empty")
	}
	if w.B.NumRows() != n || w.B.NumColumns() != m {
		return Argument{}, group.InvalidArgument("A and B have mismatched dimensions")
	}
	if w.R.Len() != m || w.S.Len() != m || st.CA.Len() != m || st.CB.Len() != m {
		return Argument{}, group.InvalidArgument("zero argument vectors must have length m=%d", m)
	}
	zq := pp.Group.ZqGroup()

	a0Elems := make([]group.ZqElement, n)
	for i := range a0Elems {
		v, err := sampler.Next(zq)
		if err != nil {
			return Argument{}, err
		}
		a0Elems[i] = v
	}
	a0, err := group.NewZqVector(zq, a0Elems)
	if err != nil {
		return Argument{}, err
	}
	r0, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}
	sM, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}

	zeroCol := group.ZeroVector(zq, n)
	cA0, err := commitment.GetCommitment(a0, r0, pp.Ck)
	if err != nil {
		return Argument{}, err
	}
	cBM, err := commitment.GetCommitment(zeroCol, sM, pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	extA := func(i int) group.ZqVector {
		if i == 0 {
			return a0
		}
		return w.A.GetColumn(i - 1)
	}
	extB := func(j int) group.ZqVector {
		if j == m {
			return zeroCol
		}
		return w.B.GetColumn(j)
	}

	special := m + 1
	ck1, err := pp.Ck.Truncate(1)
	if err != nil {
		return Argument{}, err
	}

	dVals := make([]group.ZqElement, 2*m+1)
	tVals := make([]group.ZqElement, 2*m+1)
	cD := make([]group.GqElement, 2*m+1)
	for k := 0; k <= 2*m; k++ {
		acc := zq.ZeroElement()
		for i := 0; i <= m; i++ {
			j := i + m - k
			if j < 0 || j > m {
				continue
			}
			term, err := bilinear(extA(i), extB(j), st.Y)
			if err != nil {
				return Argument{}, err
			}
			acc, err = acc.Add(term)
			if err != nil {
				return Argument{}, err
			}
		}
		dVals[k] = acc

		var tk group.ZqElement
		if k == special {
			tk = zq.ZeroElement()
		} else {
			tk, err = sampler.Next(zq)
			if err != nil {
				return Argument{}, err
			}
		}
		tVals[k] = tk

		dVec, err := group.NewZqVector(zq, []group.ZqElement{dVals[k]})
		if err != nil {
			return Argument{}, err
		}
		c, err := commitment.GetCommitment(dVec, tk, ck1)
		if err != nil {
			return Argument{}, err
		}
		cD[k] = c
	}
	cDVec, err := group.NewGqVector(pp.Group, cD)
	if err != nil {
		return Argument{}, err
	}

	x, err := hashChallenge(h, pp, st, cA0, cBM, cDVec)
	if err != nil {
		return Argument{}, err
	}

	aTerms := make([]group.ZqVector, m+1)
	aPows := make([]group.ZqElement, m+1)
	rVals := make([]group.ZqElement, m+1)
	for i := 0; i <= m; i++ {
		aTerms[i] = extA(i)
		aPows[i] = x.Exponentiate(int64(i))
		if i == 0 {
			rVals[i] = r0
		} else {
			rVals[i] = w.R.Get(i - 1)
		}
	}
	aPrime, err := scaleAndSum(zq, aTerms, aPows)
	if err != nil {
		return Argument{}, err
	}
	rPrime, err := scalarsSum(zq, rVals, aPows)
	if err != nil {
		return Argument{}, err
	}

	bTerms := make([]group.ZqVector, m+1)
	bPows := make([]group.ZqElement, m+1)
	sVals := make([]group.ZqElement, m+1)
	for j := 0; j <= m; j++ {
		bTerms[j] = extB(j)
		bPows[j] = x.Exponentiate(int64(m - j))
		if j == m {
			sVals[j] = sM
		} else {
			sVals[j] = w.S.Get(j)
		}
	}
	bPrime, err := scaleAndSum(zq, bTerms, bPows)
	if err != nil {
		return Argument{}, err
	}
	sPrime, err := scalarsSum(zq, sVals, bPows)
	if err != nil {
		return Argument{}, err
	}

	kPows := powers(x, 2*m+1)
	tPrime, err := scalarsSum(zq, tVals, kPows)
	if err != nil {
		return Argument{}, err
	}

	return Argument{
		CA0: cA0, CBM: cBM, CD: cDVec,
		APrime: aPrime, BPrime: bPrime,
		RPrime: rPrime, SPrime: sPrime, TPrime: tPrime,
	}, nil
}

// Verify checks that c_d[m+1] is com(0; 0), recomputes the challenge and
// checks the three commitment equalities. It makes no RNG calls.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	m := st.CA.Len()
	n := arg.APrime.Len()
	if st.CB.Len() != m || arg.BPrime.Len() != n || arg.CD.Len() != 2*m+1 {
		return verification.Result{}, group.InvalidArgument("zero argument has inconsistent dimensions")
	}

	x, err := hashChallenge(h, pp, st, arg.CA0, arg.CBM, arg.CD)
	if err != nil {
		return verification.Result{}, err
	}

	ckN, err := pp.Ck.Truncate(n)
	if err != nil {
		return verification.Result{}, err
	}
	ck1, err := pp.Ck.Truncate(1)
	if err != nil {
		return verification.Result{}, err
	}

	// The honest diagonal d_{m+1} is the asserted sum, committed as com(0; 0).
	if !arg.CD.Get(m + 1).Equals(pp.Group.Identity()) {
		return verification.Failed("zero argument: c_d[m+1] is not com(0; 0)"), nil
	}

	// Check 1: com(a'; r') == prod_{i=0}^m c_{A,i}^{x^i}.
	lhs1, err := commitment.GetCommitment(arg.APrime, arg.RPrime, ckN)
	if err != nil {
		return verification.Result{}, err
	}
	rhs1 := pp.Group.Identity()
	for i := 0; i <= m; i++ {
		var base group.GqElement
		if i == 0 {
			base = arg.CA0
		} else {
			base = st.CA.Get(i - 1)
		}
		term, err := base.Exponentiate(x.Exponentiate(int64(i)))
		if err != nil {
			return verification.Result{}, err
		}
		rhs1, err = rhs1.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	if !lhs1.Equals(rhs1) {
		return verification.Failed("zero argument check 1 (a' opening) failed"), nil
	}

	// Check 2: com(b'; s') == prod_{j=0}^m c_{B,j}^{x^{m-j}}.
	lhs2, err := commitment.GetCommitment(arg.BPrime, arg.SPrime, ckN)
	if err != nil {
		return verification.Result{}, err
	}
	rhs2 := pp.Group.Identity()
	for j := 0; j <= m; j++ {
		var base group.GqElement
		if j == m {
			base = arg.CBM
		} else {
			base = st.CB.Get(j)
		}
		term, err := base.Exponentiate(x.Exponentiate(int64(m - j)))
		if err != nil {
			return verification.Result{}, err
		}
		rhs2, err = rhs2.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	if !lhs2.Equals(rhs2) {
		return verification.Failed("zero argument check 2 (b' opening) failed"), nil
	}

	// Check 3: com(a' star_y b'; t') == prod_k c_{d,k}^{x^k}.
	prod, err := bilinear(arg.APrime, arg.BPrime, st.Y)
	if err != nil {
		return verification.Result{}, err
	}
	prodVec, err := group.NewZqVector(pp.Group.ZqGroup(), []group.ZqElement{prod})
	if err != nil {
		return verification.Result{}, err
	}
	lhs3, err := commitment.GetCommitment(prodVec, arg.TPrime, ck1)
	if err != nil {
		return verification.Result{}, err
	}
	rhs3 := pp.Group.Identity()
	for k := 0; k <= 2*m; k++ {
		term, err := arg.CD.Get(k).Exponentiate(x.Exponentiate(int64(k)))
		if err != nil {
			return verification.Result{}, err
		}
		rhs3, err = rhs3.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	if !lhs3.Equals(rhs3) {
		return verification.Failed("zero argument check 3 (bilinear closing) failed"), nil
	}

	return verification.Verified(), nil
}
