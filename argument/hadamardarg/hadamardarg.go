// Package hadamardarg implements the Hadamard Argument: a proof that a
// committed vector b equals the elementwise (Hadamard) product of a
// committed matrix A's columns. It reduces to a single Zero Argument call.
package hadamardarg

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/zeroarg"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts that the committed vector CB equals the Hadamard
// product of the m committed columns of A.
type Statement struct {
	CA group.GqVector // length m
	CB group.GqElement
}

// Witness holds A, its column randomness R, the claimed product vector B and
// its commitment randomness S.
type Witness struct {
	A group.ZqMatrix // n x m
	B group.ZqVector  // length n
	R group.ZqVector  // length m
	S group.ZqElement
}

// Argument is (cUpperB, ZeroArgument) per the canonical field names.
type Argument struct {
	CUpperB group.GqVector   `json:"cUpperB"` // length m
	Zero    zeroarg.Argument `json:"zero_argument"`
}

// negOnes returns the length-n vector of -1 in zq, the public b-side column
// paired against each B_i in the reduced Zero Argument.
func negOnes(zq group.ZqGroup, n int) group.ZqVector {
	negOne := zq.OneElement().Negate()
	elems := make([]group.ZqElement, n)
	for i := range elems {
		elems[i] = negOne
	}
	v, _ := group.NewZqVector(zq, elems)
	return v
}

func hashY(h transcript.HashTranscript, pp params.Public, st Statement, cB group.GqVector) (group.ZqElement, error) {
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.GqElements(st.CA.Slice()...),
		transcript.NewInt(st.CB.Value()),
		transcript.GqElements(cB.Slice()...),
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

// Prove builds the intermediate product columns, commits them, derives the
// bilinear challenge y, and reduces the Hadamard recurrence to a single Zero
// Argument: for i=1..m-1, A_i (paired with B_{i-1}) and B_i (paired with
// -1) together assert sum_i [A_i star_y B_{i-1} + B_i star_y (-1)] = 0,
// which holds exactly when B_i = B_{i-1} (x) A_i for every i. Requires m>=2.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	n, m := w.A.NumRows(), w.A.NumColumns()
	if m < 2 {
		return Argument{}, group.InvalidArgument("hadamard argument requires m >= 2, got %d", m)
	}
	if w.B.Len() != n || w.R.Len() != m || st.CA.Len() != m {
		return Argument{}, group.InvalidArgument("hadamard argument has inconsistent dimensions")
	}
	zq := pp.Group.ZqGroup()

	bCols := make([]group.ZqVector, m)
	bCols[0] = w.A.GetColumn(0)
	for k := 1; k < m; k++ {
		prod, err := bCols[k-1].Hadamard(w.A.GetColumn(k))
		if err != nil {
			return Argument{}, err
		}
		bCols[k] = prod
	}

	sVals := make([]group.ZqElement, m)
	sVals[0] = w.R.Get(0)
	sVals[m-1] = w.S
	for k := 1; k < m-1; k++ {
		v, err := sampler.Next(zq)
		if err != nil {
			return Argument{}, err
		}
		sVals[k] = v
	}

	cBElems := make([]group.GqElement, m)
	cBElems[0] = st.CA.Get(0)
	cBElems[m-1] = st.CB
	for k := 1; k < m-1; k++ {
		c, err := commitment.GetCommitment(bCols[k], sVals[k], pp.Ck)
		if err != nil {
			return Argument{}, err
		}
		cBElems[k] = c
	}
	cB, err := group.NewGqVector(pp.Group, cBElems)
	if err != nil {
		return Argument{}, err
	}

	y, err := hashY(h, pp, st, cB)
	if err != nil {
		return Argument{}, err
	}

	width := 2 * (m - 1)
	aCols := make([][]group.ZqElement, width)
	bColsZero := make([][]group.ZqElement, width)
	rVals := make([]group.ZqElement, width)
	cAZero := make([]group.GqElement, width)
	cBZero := make([]group.GqElement, width)
	negOnesVec := negOnes(zq, n)
	negOnesCommit, err := commitment.GetCommitment(negOnesVec, zq.ZeroElement(), pp.Ck)
	if err != nil {
		return Argument{}, err
	}

	for i := 1; i < m; i++ {
		idx := i - 1
		aCols[idx] = w.A.GetColumn(i).Slice()
		bColsZero[idx] = bCols[i-1].Slice()
		rVals[idx] = w.R.Get(i)
		cAZero[idx] = st.CA.Get(i)
		cBZero[idx] = cBElems[i-1]

		idx2 := (m - 1) + idx
		aCols[idx2] = bCols[i].Slice()
		bColsZero[idx2] = negOnesVec.Slice()
		rVals[idx2] = sVals[i]
		cAZero[idx2] = cBElems[i]
		cBZero[idx2] = negOnesCommit
	}

	zeroA, err := group.NewZqMatrixFromColumns(zq, aCols)
	if err != nil {
		return Argument{}, err
	}
	zeroB, err := group.NewZqMatrixFromColumns(zq, bColsZero)
	if err != nil {
		return Argument{}, err
	}
	zeroR, err := group.NewZqVector(zq, rVals)
	if err != nil {
		return Argument{}, err
	}
	zeroSVals := make([]group.ZqElement, width)
	for i := range zeroSVals {
		if i < m-1 {
			zeroSVals[i] = sVals[i]
		} else {
			zeroSVals[i] = zq.ZeroElement()
		}
	}
	zeroS, err := group.NewZqVector(zq, zeroSVals)
	if err != nil {
		return Argument{}, err
	}
	zeroCA, err := group.NewGqVector(pp.Group, cAZero)
	if err != nil {
		return Argument{}, err
	}
	zeroCB, err := group.NewGqVector(pp.Group, cBZero)
	if err != nil {
		return Argument{}, err
	}

	zeroSt := zeroarg.Statement{CA: zeroCA, CB: zeroCB, Y: y}
	zeroWit := zeroarg.Witness{A: zeroA, B: zeroB, R: zeroR, S: zeroS}
	zeroArg, err := zeroarg.Prove(pp, h, sampler, zeroSt, zeroWit)
	if err != nil {
		return Argument{}, err
	}

	return Argument{CUpperB: cB, Zero: zeroArg}, nil
}

// Verify reconstructs the reduced ZeroStatement from the public commitments
// and delegates to zeroarg.Verify.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	m := st.CA.Len()
	if m < 2 || arg.CUpperB.Len() != m {
		return verification.Result{}, group.InvalidArgument("hadamard argument has inconsistent dimensions")
	}
	if !arg.CUpperB.Get(0).Equals(st.CA.Get(0)) {
		return verification.Failed("hadamard argument: c_B[0] does not match c_A[0]"), nil
	}
	if !arg.CUpperB.Get(m - 1).Equals(st.CB) {
		return verification.Failed("hadamard argument: c_B[m-1] does not match c_b"), nil
	}

	y, err := hashY(h, pp, st, arg.CUpperB)
	if err != nil {
		return verification.Result{}, err
	}

	zq := pp.Group.ZqGroup()
	n := 0
	if arg.Zero.APrime.Len() > 0 {
		n = arg.Zero.APrime.Len()
	}
	negOnesVec := negOnes(zq, n)
	negOnesCommit, err := commitment.GetCommitment(negOnesVec, zq.ZeroElement(), pp.Ck)
	if err != nil {
		return verification.Result{}, err
	}

	width := 2 * (m - 1)
	cAZero := make([]group.GqElement, width)
	cBZero := make([]group.GqElement, width)
	for i := 1; i < m; i++ {
		idx := i - 1
		cAZero[idx] = st.CA.Get(i)
		cBZero[idx] = arg.CUpperB.Get(i - 1)

		idx2 := (m - 1) + idx
		cAZero[idx2] = arg.CUpperB.Get(i)
		cBZero[idx2] = negOnesCommit
	}
	zeroCA, err := group.NewGqVector(pp.Group, cAZero)
	if err != nil {
		return verification.Result{}, err
	}
	zeroCB, err := group.NewGqVector(pp.Group, cBZero)
	if err != nil {
		return verification.Result{}, err
	}

	zeroSt := zeroarg.Statement{CA: zeroCA, CB: zeroCB, Y: y}
	return zeroarg.Verify(pp, h, zeroSt, arg.Zero)
}
