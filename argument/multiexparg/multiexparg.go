// Package multiexparg implements the Multi-Exponentiation Argument: a proof
// that a committed exponent matrix A and scalar rho link an m x n
// ciphertext matrix C to a single target ciphertext via
// C = E(1; rho) * prod_{i,j} C_{i,j}^{A_{j,i}}.
package multiexparg

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts that CMatrix (m rows of n ciphertexts each), combined
// diagonally with the matrix committed column-wise in CA, yields C.
type Statement struct {
	CMatrix [][]elgamal.Ciphertext // m x n
	C       elgamal.Ciphertext
	CA      group.GqVector // length m
}

// Witness holds the exponent matrix, its column randomness, and the
// rerandomization scalar linking CMatrix to C.
type Witness struct {
	A   group.ZqMatrix // n x m
	R   group.ZqVector // length m
	Rho group.ZqElement
}

// Argument is a Multi-Exponentiation Argument proof.
type Argument struct {
	CA0      group.GqElement      `json:"c_a_0"`
	CB       group.GqVector       `json:"c_b"` // length 2m
	E        []elgamal.Ciphertext `json:"e"`   // length 2m
	APrime   group.ZqVector       `json:"a"`   // length n
	RPrime   group.ZqElement      `json:"r"`
	BPrime   group.ZqElement      `json:"b"`
	SPrime   group.ZqElement      `json:"s"`
	TauPrime group.ZqElement      `json:"tau"`
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

func ciphertextElements(cs []elgamal.Ciphertext) []group.GqElement {
	out := make([]group.GqElement, 0, len(cs)*2)
	for _, c := range cs {
		out = append(out, c.Gamma())
		out = append(out, c.Phis().Slice()...)
	}
	return out
}

func hashChallenge(h transcript.HashTranscript, pp params.Public, st Statement, cA0 group.GqElement, cB group.GqVector, e []elgamal.Ciphertext) (group.ZqElement, error) {
	rows := make([]elgamal.Ciphertext, 0, len(st.CMatrix)*len(st.CMatrix[0]))
	for _, row := range st.CMatrix {
		rows = append(rows, row...)
	}
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.GqElements(ciphertextElements(rows)...),
		transcript.GqElements(ciphertextElements([]elgamal.Ciphertext{st.C})...),
		transcript.GqElements(st.CA.Slice()...),
		transcript.NewInt(cA0.Value()),
		transcript.GqElements(cB.Slice()...),
		transcript.GqElements(ciphertextElements(e)...),
	)
}

// encryptScalar builds the l-wide ciphertext E(g^b; tau) under pp.Pk, where
// l is the width shared by every ciphertext in the statement.
func encryptScalar(pp params.Public, width int, b, tau group.ZqElement) (elgamal.Ciphertext, error) {
	gb, err := pp.Group.GeneratorElement().Exponentiate(b)
	if err != nil {
		return elgamal.Ciphertext{}, err
	}
	messages := make([]group.GqElement, width)
	for i := range messages {
		messages[i] = gb
	}
	return elgamal.Encrypt(messages, tau, pp.Pk)
}

// Prove constructs a Multi-Exponentiation Argument. A is extended with a
// sampled leading column a_0 (giving m+1 extended columns indexed 0..m,
// extA(0)=a_0, extA(i)=A_{*,i-1} for i>=1). The 2m diagonal positions
// p=0..2m-1 collect, for every (row, extended column) pair with
// i - row + m - 1 = p, the multi-exponentiation of that row against that
// extended column, blinded by an independent ElGamal encryption of g^{b_p}
// under randomness tau_p. Position p=m is the honest diagonal (row paired
// with its own original column) and forces b_m=0, tau_m=rho so that
// E_m reproduces the real relation exactly.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	n, m := w.A.NumRows(), w.A.NumColumns()
	if n == 0 || m == 0 {
		return Argument{}, group.InvalidArgument("multi-exponentiation argument matrix must be non-empty")
	}
	if len(st.CMatrix) != m || w.R.Len() != m || st.CA.Len() != m {
		return Argument{}, group.InvalidArgument("multi-exponentiation argument has inconsistent dimensions")
	}
	for _, row := range st.CMatrix {
		if len(row) != n {
			return Argument{}, group.InvalidArgument("ciphertext matrix row has length %d, expected n=%d", len(row), n)
		}
	}
	width := st.CMatrix[0][0].Width()
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
	cA0, err := commitment.GetCommitment(a0, r0, pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	extA := func(i int) group.ZqVector {
		if i == 0 {
			return a0
		}
		return w.A.GetColumn(i - 1)
	}

	width2m := 2 * m
	special := m
	bVals := make([]group.ZqElement, width2m)
	sVals := make([]group.ZqElement, width2m)
	tauVals := make([]group.ZqElement, width2m)
	cB := make([]group.GqElement, width2m)
	eCiphertexts := make([]elgamal.Ciphertext, width2m)
	ck1, err := pp.Ck.Truncate(1)
	if err != nil {
		return Argument{}, err
	}

	for p := 0; p < width2m; p++ {
		var bp, tp group.ZqElement
		if p == special {
			bp = zq.ZeroElement()
			tp = w.Rho
		} else {
			bp, err = sampler.Next(zq)
			if err != nil {
				return Argument{}, err
			}
			tp, err = sampler.Next(zq)
			if err != nil {
				return Argument{}, err
			}
		}
		sp, err := sampler.Next(zq)
		if err != nil {
			return Argument{}, err
		}
		bVals[p], sVals[p], tauVals[p] = bp, sp, tp

		bVec, err := group.NewZqVector(zq, []group.ZqElement{bp})
		if err != nil {
			return Argument{}, err
		}
		c, err := commitment.GetCommitment(bVec, sp, ck1)
		if err != nil {
			return Argument{}, err
		}
		cB[p] = c

		// Position p=special is fixed to the statement's own target
		// ciphertext rather than rebuilt from the witness: for an honest
		// witness this equals the value the general diagonal formula below
		// would compute (b_special=0, tau_special=rho reproduce the real
		// blinding, and the row pairing at this diagonal is exactly the
		// original, unshifted one), so completeness is unaffected; fixing it
		// directly is what binds the proof to st.C instead of merely to a
		// prover-picked ciphertext that happens to satisfy the closing
		// equation.
		if p == special {
			eCiphertexts[p] = st.C
			continue
		}

		acc, err := encryptScalar(pp, width, bp, tp)
		if err != nil {
			return Argument{}, err
		}
		for row := 0; row < m; row++ {
			i := p - m + 1 + row
			if i < 0 || i > m {
				continue
			}
			term, err := elgamal.GetCiphertextVectorExponentiation(st.CMatrix[row], extA(i))
			if err != nil {
				return Argument{}, err
			}
			acc, err = acc.Multiply(term)
			if err != nil {
				return Argument{}, err
			}
		}
		eCiphertexts[p] = acc
	}
	cBVec, err := group.NewGqVector(pp.Group, cB)
	if err != nil {
		return Argument{}, err
	}

	x, err := hashChallenge(h, pp, st, cA0, cBVec, eCiphertexts)
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
	aPrime := group.ZeroVector(zq, n)
	for i, term := range aTerms {
		scaled, err := term.ScalarMultiply(aPows[i])
		if err != nil {
			return Argument{}, err
		}
		aPrime, err = aPrime.Add(scaled)
		if err != nil {
			return Argument{}, err
		}
	}
	rPrime := zq.ZeroElement()
	for i, rv := range rVals {
		term, err := rv.Multiply(aPows[i])
		if err != nil {
			return Argument{}, err
		}
		rPrime, err = rPrime.Add(term)
		if err != nil {
			return Argument{}, err
		}
	}

	bPrime := zq.ZeroElement()
	sPrime := zq.ZeroElement()
	tauPrime := zq.ZeroElement()
	for p := 0; p < width2m; p++ {
		xp := x.Exponentiate(int64(p))
		bt, err := bVals[p].Multiply(xp)
		if err != nil {
			return Argument{}, err
		}
		bPrime, err = bPrime.Add(bt)
		if err != nil {
			return Argument{}, err
		}
		st_, err := sVals[p].Multiply(xp)
		if err != nil {
			return Argument{}, err
		}
		sPrime, err = sPrime.Add(st_)
		if err != nil {
			return Argument{}, err
		}
		tt, err := tauVals[p].Multiply(xp)
		if err != nil {
			return Argument{}, err
		}
		tauPrime, err = tauPrime.Add(tt)
		if err != nil {
			return Argument{}, err
		}
	}

	return Argument{
		CA0: cA0, CB: cBVec, E: eCiphertexts,
		APrime: aPrime, RPrime: rPrime,
		BPrime: bPrime, SPrime: sPrime, TauPrime: tauPrime,
	}, nil
}

// Verify recomputes the challenge and checks the three closing equations.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	m := st.CA.Len()
	if len(st.CMatrix) != m || arg.CB.Len() != 2*m || len(arg.E) != 2*m {
		return verification.Result{}, group.InvalidArgument("multi-exponentiation argument has inconsistent dimensions")
	}
	n := arg.APrime.Len()
	for _, row := range st.CMatrix {
		if len(row) != n {
			return verification.Result{}, group.InvalidArgument("ciphertext matrix row has length %d, expected n=%d", len(row), n)
		}
	}
	width := st.CMatrix[0][0].Width()

	special := m
	if !arg.E[special].Gamma().Equals(st.C.Gamma()) {
		return verification.Failed("multi-exponentiation argument: E[m] does not match the target ciphertext"), nil
	}
	for i := 0; i < width; i++ {
		if !arg.E[special].Phi(i).Equals(st.C.Phi(i)) {
			return verification.Failed("multi-exponentiation argument: E[m] does not match the target ciphertext"), nil
		}
	}

	x, err := hashChallenge(h, pp, st, arg.CA0, arg.CB, arg.E)
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
		return verification.Failed("multi-exponentiation argument check 1 (a' opening) failed"), nil
	}

	// Check 2: com(b'; s') == prod_{p=0}^{2m-1} c_{B,p}^{x^p}.
	bVec, err := group.NewZqVector(pp.Group.ZqGroup(), []group.ZqElement{arg.BPrime})
	if err != nil {
		return verification.Result{}, err
	}
	lhs2, err := commitment.GetCommitment(bVec, arg.SPrime, ck1)
	if err != nil {
		return verification.Result{}, err
	}
	rhs2 := pp.Group.Identity()
	for p := 0; p < 2*m; p++ {
		term, err := arg.CB.Get(p).Exponentiate(x.Exponentiate(int64(p)))
		if err != nil {
			return verification.Result{}, err
		}
		rhs2, err = rhs2.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	if !lhs2.Equals(rhs2) {
		return verification.Failed("multi-exponentiation argument check 2 (b' opening) failed"), nil
	}

	// Check 3: prod_p E_p^{x^p} == E(g^{b'}; tau') * prod_{row} [row ^ a']^{x^{m-1-row}}.
	lhs3 := elgamal.Neutral(pp.Group, width)
	for p := 0; p < 2*m; p++ {
		term, err := arg.E[p].Exponentiate(x.Exponentiate(int64(p)))
		if err != nil {
			return verification.Result{}, err
		}
		lhs3, err = lhs3.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	blind, err := encryptScalar(pp, width, arg.BPrime, arg.TauPrime)
	if err != nil {
		return verification.Result{}, err
	}
	rhs3 := blind
	for row := 0; row < m; row++ {
		multi, err := elgamal.GetCiphertextVectorExponentiation(st.CMatrix[row], arg.APrime)
		if err != nil {
			return verification.Result{}, err
		}
		term, err := multi.Exponentiate(x.Exponentiate(int64(m - 1 - row)))
		if err != nil {
			return verification.Result{}, err
		}
		rhs3, err = rhs3.Multiply(term)
		if err != nil {
			return verification.Result{}, err
		}
	}
	if !lhs3.Gamma().Equals(rhs3.Gamma()) {
		return verification.Failed("multi-exponentiation argument check 3 (diagonal closing) failed"), nil
	}
	for i := 0; i < width; i++ {
		if !lhs3.Phi(i).Equals(rhs3.Phi(i)) {
			return verification.Failed("multi-exponentiation argument check 3 (diagonal closing) failed"), nil
		}
	}

	return verification.Verified(), nil
}
