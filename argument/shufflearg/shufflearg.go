// Package shufflearg implements the outer Shuffle Argument: a proof that a
// vector of output ciphertexts C' is a permutation-and-rerandomization of
// an input vector C, without revealing the permutation or the
// rerandomization scalars. It reshapes both vectors into an m x n grid and
// reduces the claim to a Product Argument (the permutation's exponents
// form the same multiset as the challenge vector) composed with a
// Multi-Exponentiation Argument (those exponents actually reconstruct C'
// from C).
package shufflearg

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/multiexparg"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/productarg"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/matrixutil"
	"github.com/Cipheritall/crypto-primitives-sub001/permutation"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts that CPrime is a shuffle of C.
type Statement struct {
	C      []elgamal.Ciphertext `json:"C"`
	CPrime []elgamal.Ciphertext `json:"C'"`
}

// NewStatement validates that C and C' are non-empty and of the same size
// before any proving or verification is attempted.
func NewStatement(c, cPrime []elgamal.Ciphertext) (Statement, error) {
	if len(c) == 0 || len(c) != len(cPrime) {
		return Statement{}, group.InvalidArgument("shuffle statement requires C and C' of the same size, got %d and %d", len(c), len(cPrime))
	}
	return Statement{C: c, CPrime: cPrime}, nil
}

// Witness holds the permutation and the per-input rerandomization scalars
// that produced CPrime from C.
type Witness struct {
	Perm permutation.Permutation
	Rho  group.ZqVector // length N, indexed like C
}

// Argument is a Shuffle Argument proof.
type Argument struct {
	CA       group.GqVector       `json:"c_A"` // length m, commits the permutation's exponent matrix
	CB       group.GqElement      `json:"c_B"`
	Product  productarg.Argument  `json:"product_argument"`
	MultiExp multiexparg.Argument `json:"multi_exp_argument"`
}

func ciphertextElements(cs []elgamal.Ciphertext) []group.GqElement {
	out := make([]group.GqElement, 0, len(cs)*2)
	for _, c := range cs {
		out = append(out, c.Gamma())
		out = append(out, c.Phis().Slice()...)
	}
	return out
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

// reshape splits a length-m*n ciphertext vector into m rows of n, row-major.
func reshape(cs []elgamal.Ciphertext, m, n int) [][]elgamal.Ciphertext {
	out := make([][]elgamal.Ciphertext, m)
	for i := 0; i < m; i++ {
		out[i] = cs[i*n : (i+1)*n]
	}
	return out
}

func hashSeed(h transcript.HashTranscript, pp params.Public, st Statement) (group.ZqElement, error) {
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.GqElements(ciphertextElements(st.C)...),
		transcript.GqElements(ciphertextElements(st.CPrime)...),
		transcript.Bytes("shuffle-x-seed"),
	)
}

func hashShift(h transcript.HashTranscript, pp params.Public, st Statement, cA group.GqVector) (group.ZqElement, error) {
	return h.Recompute(
		transcript.NewInt(pp.Group.P()),
		transcript.NewInt(pp.Group.Q()),
		transcript.NewInt(pp.Group.G()),
		transcript.GqElements(ckElements(pp.Ck)...),
		transcript.GqElements(pkElements(pp.Pk)...),
		transcript.GqElements(ciphertextElements(st.C)...),
		transcript.GqElements(ciphertextElements(st.CPrime)...),
		transcript.GqElements(cA.Slice()...),
		transcript.Bytes("shuffle-z"),
	)
}

// xPowers returns (x_seed^1, ..., x_seed^count).
func xPowers(xSeed group.ZqElement, count int) []group.ZqElement {
	out := make([]group.ZqElement, count)
	for k := 0; k < count; k++ {
		out[k] = xSeed.Exponentiate(int64(k + 1))
	}
	return out
}

// buildExponentMatrix lays the x-vector out, permuted, into the n x m grid
// the nested arguments expect: A[j][i] = x[perm(i*n+j)], the weight of the
// shuffled ciphertext that input i*n+j is moved to.
func buildExponentMatrix(zq group.ZqGroup, x []group.ZqElement, perm permutation.Permutation, m, n int) (group.ZqMatrix, error) {
	cols := make([][]group.ZqElement, m)
	for i := 0; i < m; i++ {
		col := make([]group.ZqElement, n)
		for j := 0; j < n; j++ {
			col[j] = x[perm.At(i*n+j)]
		}
		cols[i] = col
	}
	return group.NewZqMatrixFromColumns(zq, cols)
}

// shiftCommitments computes c_{A,i} * com(z*1_n; 0)^-1 for every column,
// the commitment-linearity shortcut for shifting A by the constant z
// without re-committing the shifted matrix.
func shiftCommitments(zq group.ZqGroup, ck commitment.Key, cA group.GqVector, z group.ZqElement, n int) (group.GqVector, error) {
	zOnes := make([]group.ZqElement, n)
	for i := range zOnes {
		zOnes[i] = z
	}
	zVec, err := group.NewZqVector(zq, zOnes)
	if err != nil {
		return group.GqVector{}, err
	}
	ckN, err := ck.Truncate(n)
	if err != nil {
		return group.GqVector{}, err
	}
	zCommit, err := commitment.GetCommitment(zVec, zq.ZeroElement(), ckN)
	if err != nil {
		return group.GqVector{}, err
	}
	zCommitInv := zCommit.Invert()

	shifted := make([]group.GqElement, cA.Len())
	for i := 0; i < cA.Len(); i++ {
		v, err := cA.Get(i).Multiply(zCommitInv)
		if err != nil {
			return group.GqVector{}, err
		}
		shifted[i] = v
	}
	return group.NewGqVector(cA.Group(), shifted)
}

// shiftMatrix subtracts z from every entry of a, matching the commitment
// shortcut in shiftCommitments: shifting by a public constant changes the
// committed value but not the commitment randomness, so the witness for
// the shifted statement is this matrix with the same column randomness.
func shiftMatrix(a group.ZqMatrix, z group.ZqElement) (group.ZqMatrix, error) {
	zq := a.Group()
	m := a.NumColumns()
	cols := make([][]group.ZqElement, m)
	for i := 0; i < m; i++ {
		col := a.GetColumn(i)
		shifted := make([]group.ZqElement, col.Len())
		for j := 0; j < col.Len(); j++ {
			v, err := col.Get(j).Subtract(z)
			if err != nil {
				return group.ZqMatrix{}, err
			}
			shifted[j] = v
		}
		cols[i] = shifted
	}
	return group.NewZqMatrixFromColumns(zq, cols)
}

// targetProduct computes prod_k (x_k - z), the value the shifted row
// products must multiply to: invariant under any permutation of the
// multiset {x_1,...,x_N}, so it is computable directly from the public
// challenges without the witness.
func targetProduct(zq group.ZqGroup, x []group.ZqElement, z group.ZqElement) (group.ZqElement, error) {
	total := zq.OneElement()
	for _, xk := range x {
		shifted, err := xk.Subtract(z)
		if err != nil {
			return group.ZqElement{}, err
		}
		total, err = total.Multiply(shifted)
		if err != nil {
			return group.ZqElement{}, err
		}
	}
	return total, nil
}

// Prove builds a Shuffle Argument that st.CPrime is a shuffle of st.C under
// w.Perm and w.Rho.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	bigN := len(st.C)
	if bigN == 0 || len(st.CPrime) != bigN {
		return Argument{}, group.InvalidArgument("shuffle statement requires C and C' of the same size, got %d and %d", bigN, len(st.CPrime))
	}
	if w.Perm.Size() != bigN || w.Rho.Len() != bigN {
		return Argument{}, group.InvalidArgument("shuffle argument witness has inconsistent dimensions")
	}

	m, n, err := matrixutil.GetMatrixDimensions(bigN)
	if err != nil {
		return Argument{}, err
	}
	zq := pp.Group.ZqGroup()

	xSeed, err := hashSeed(h, pp, st)
	if err != nil {
		return Argument{}, err
	}
	x := xPowers(xSeed, bigN)

	a, err := buildExponentMatrix(zq, x, w.Perm, m, n)
	if err != nil {
		return Argument{}, err
	}

	rElems := make([]group.ZqElement, m)
	for i := range rElems {
		v, err := sampler.Next(zq)
		if err != nil {
			return Argument{}, err
		}
		rElems[i] = v
	}
	r, err := group.NewZqVector(zq, rElems)
	if err != nil {
		return Argument{}, err
	}
	ckN, err := pp.Ck.Truncate(n)
	if err != nil {
		return Argument{}, err
	}
	cA, err := commitment.GetCommitmentMatrix(a, r, ckN)
	if err != nil {
		return Argument{}, err
	}

	z, err := hashShift(h, pp, st, cA)
	if err != nil {
		return Argument{}, err
	}

	shiftedCA, err := shiftCommitments(zq, pp.Ck, cA, z, n)
	if err != nil {
		return Argument{}, err
	}
	target, err := targetProduct(zq, x, z)
	if err != nil {
		return Argument{}, err
	}

	shiftedA, err := shiftMatrix(a, z)
	if err != nil {
		return Argument{}, err
	}
	productSt := productarg.Statement{CA: shiftedCA, B: target}
	productWit := productarg.Witness{A: shiftedA, R: r}
	productArg, err := productarg.Prove(pp, h, sampler, productSt, productWit)
	if err != nil {
		return Argument{}, err
	}

	var cb group.GqElement
	if productArg.Composed {
		cb = productArg.CB
	} else {
		cb = shiftedCA.Get(0)
	}

	xVec, err := group.NewZqVector(zq, x)
	if err != nil {
		return Argument{}, err
	}
	combined, err := elgamal.GetCiphertextVectorExponentiation(st.CPrime, xVec)
	if err != nil {
		return Argument{}, err
	}

	rhoCombined := zq.ZeroElement()
	for k := 0; k < bigN; k++ {
		term, err := w.Rho.Get(k).Multiply(x[w.Perm.At(k)])
		if err != nil {
			return Argument{}, err
		}
		rhoCombined, err = rhoCombined.Add(term)
		if err != nil {
			return Argument{}, err
		}
	}

	multiSt := multiexparg.Statement{CMatrix: reshape(st.C, m, n), C: combined, CA: cA}
	multiWit := multiexparg.Witness{A: a, R: r, Rho: rhoCombined}
	multiArg, err := multiexparg.Prove(pp, h, sampler, multiSt, multiWit)
	if err != nil {
		return Argument{}, err
	}

	return Argument{CA: cA, CB: cb, Product: productArg, MultiExp: multiArg}, nil
}

// Verify recomputes both challenges and checks the Product Argument and
// Multi-Exponentiation Argument sub-proofs.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	bigN := len(st.C)
	if bigN == 0 || len(st.CPrime) != bigN {
		return verification.Result{}, group.InvalidArgument("shuffle statement requires C and C' of the same size, got %d and %d", bigN, len(st.CPrime))
	}
	m, n, err := matrixutil.GetMatrixDimensions(bigN)
	if err != nil {
		return verification.Result{}, err
	}
	if arg.CA.Len() != m {
		return verification.Failed("shuffle argument: c_A has length %d, expected m=%d", arg.CA.Len(), m), nil
	}
	zq := pp.Group.ZqGroup()

	xSeed, err := hashSeed(h, pp, st)
	if err != nil {
		return verification.Result{}, err
	}
	x := xPowers(xSeed, bigN)

	z, err := hashShift(h, pp, st, arg.CA)
	if err != nil {
		return verification.Result{}, err
	}

	shiftedCA, err := shiftCommitments(zq, pp.Ck, arg.CA, z, n)
	if err != nil {
		return verification.Result{}, err
	}
	target, err := targetProduct(zq, x, z)
	if err != nil {
		return verification.Result{}, err
	}

	productSt := productarg.Statement{CA: shiftedCA, B: target}
	productResult, err := productarg.Verify(pp, h, productSt, arg.Product)
	if err != nil {
		return verification.Result{}, err
	}
	if !productResult.IsVerified() {
		return verification.Failed("shuffle argument: product sub-argument failed: %s", productResult.Reason()), nil
	}

	xVec, err := group.NewZqVector(zq, x)
	if err != nil {
		return verification.Result{}, err
	}
	combined, err := elgamal.GetCiphertextVectorExponentiation(st.CPrime, xVec)
	if err != nil {
		return verification.Result{}, err
	}

	multiSt := multiexparg.Statement{CMatrix: reshape(st.C, m, n), C: combined, CA: arg.CA}
	multiResult, err := multiexparg.Verify(pp, h, multiSt, arg.MultiExp)
	if err != nil {
		return verification.Result{}, err
	}
	if !multiResult.IsVerified() {
		return verification.Failed("shuffle argument: multi-exponentiation sub-argument failed: %s", multiResult.Reason()), nil
	}

	return verification.Verified(), nil
}
