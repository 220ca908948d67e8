// Package productarg implements the Product Argument: a proof that the
// entries of a committed n x m matrix A multiply out to a claimed scalar b.
// For m = 1 this is just a Single Value Product Argument; for m >= 2 it
// composes a Hadamard Argument (row products are consistent with A) with a
// Single Value Product Argument (the row products themselves multiply to b).
package productarg

import (
	"encoding/json"

	"github.com/Cipheritall/crypto-primitives-sub001/argument/hadamardarg"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/svpa"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// Statement asserts that the n x m matrix committed column-wise in CA has
// total product B.
type Statement struct {
	CA group.GqVector  `json:"c_a"` // length m
	B  group.ZqElement `json:"b"`
}

// Witness holds the matrix and its column randomness.
type Witness struct {
	A group.ZqMatrix // n x m
	R group.ZqVector // length m
}

// Argument is either a bare SVPA (m=1) or the composed
// (c_b, HadamardArgument, SingleValueProductArgument) payload (m>=2).
// Composed is true in the latter case.
type Argument struct {
	Composed bool
	CB       group.GqElement // only set when Composed
	Hadamard hadamardarg.Argument
	Svpa     svpa.Argument
}

// MarshalJSON emits the bare {single_vpa} shape for m=1, or the composed
// {c_b, hadamard_argument, single_vpa} shape for m>=2.
func (a Argument) MarshalJSON() ([]byte, error) {
	if !a.Composed {
		return json.Marshal(struct {
			Svpa svpa.Argument `json:"single_vpa"`
		}{Svpa: a.Svpa})
	}
	return json.Marshal(struct {
		CB       group.GqElement      `json:"c_b"`
		Hadamard hadamardarg.Argument `json:"hadamard_argument"`
		Svpa     svpa.Argument        `json:"single_vpa"`
	}{CB: a.CB, Hadamard: a.Hadamard, Svpa: a.Svpa})
}

func rowProducts(a group.ZqMatrix) group.ZqVector {
	zq := a.Group()
	n := a.NumRows()
	elems := make([]group.ZqElement, n)
	for j := 0; j < n; j++ {
		elems[j] = a.GetRow(j).Product()
	}
	v, _ := group.NewZqVector(zq, elems)
	return v
}

// Prove builds a Product Argument for a witness matrix A whose total
// product is st.B.
func Prove(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, st Statement, w Witness) (Argument, error) {
	n, m := w.A.NumRows(), w.A.NumColumns()
	if n == 0 || m == 0 {
		return Argument{}, group.InvalidArgument("product argument matrix must be non-empty")
	}
	if w.R.Len() != m || st.CA.Len() != m {
		return Argument{}, group.InvalidArgument("product argument has inconsistent dimensions")
	}
	zq := pp.Group.ZqGroup()

	if m == 1 {
		svpaSt := svpa.Statement{CA: st.CA.Get(0), B: st.B}
		svpaWit := svpa.Witness{A: w.A.GetColumn(0), R: w.R.Get(0)}
		svpaArg, err := svpa.Prove(pp, h, sampler, svpaSt, svpaWit)
		if err != nil {
			return Argument{}, err
		}
		return Argument{Composed: false, Svpa: svpaArg}, nil
	}

	b := rowProducts(w.A)
	s, err := sampler.Next(zq)
	if err != nil {
		return Argument{}, err
	}
	ckN, err := pp.Ck.Truncate(n)
	if err != nil {
		return Argument{}, err
	}
	cB, err := commitment.GetCommitment(b, s, ckN)
	if err != nil {
		return Argument{}, err
	}

	hadSt := hadamardarg.Statement{CA: st.CA, CB: cB}
	hadWit := hadamardarg.Witness{A: w.A, B: b, R: w.R, S: s}
	hadArg, err := hadamardarg.Prove(pp, h, sampler, hadSt, hadWit)
	if err != nil {
		return Argument{}, err
	}

	svpaSt := svpa.Statement{CA: cB, B: st.B}
	svpaWit := svpa.Witness{A: b, R: s}
	svpaArg, err := svpa.Prove(pp, h, sampler, svpaSt, svpaWit)
	if err != nil {
		return Argument{}, err
	}

	return Argument{Composed: true, CB: cB, Hadamard: hadArg, Svpa: svpaArg}, nil
}

// Verify checks the composed or bare-SVPA argument against the statement.
func Verify(pp params.Public, h transcript.HashTranscript, st Statement, arg Argument) (verification.Result, error) {
	m := st.CA.Len()
	if m == 0 {
		return verification.Result{}, group.InvalidArgument("product argument statement must be non-empty")
	}

	if !arg.Composed {
		if m != 1 {
			return verification.Result{}, group.InvalidArgument("bare SVPA argument requires m=1, got %d", m)
		}
		svpaSt := svpa.Statement{CA: st.CA.Get(0), B: st.B}
		return svpa.Verify(pp, h, svpaSt, arg.Svpa)
	}

	hadSt := hadamardarg.Statement{CA: st.CA, CB: arg.CB}
	hadResult, err := hadamardarg.Verify(pp, h, hadSt, arg.Hadamard)
	if err != nil {
		return verification.Result{}, err
	}
	if !hadResult.IsVerified() {
		return verification.Failed("product argument: hadamard sub-argument failed: %s", hadResult.Reason()), nil
	}

	svpaSt := svpa.Statement{CA: arg.CB, B: st.B}
	svpaResult, err := svpa.Verify(pp, h, svpaSt, arg.Svpa)
	if err != nil {
		return verification.Result{}, err
	}
	if !svpaResult.IsVerified() {
		return verification.Failed("product argument: single value product sub-argument failed: %s", svpaResult.Reason()), nil
	}

	return verification.Verified(), nil
}
