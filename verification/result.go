// Package verification defines the VerificationResult sum type every
// argument verifier returns: a rejected proof is ordinary data, not an
// error, since a dishonest prover is an expected adversarial input rather
// than a caller mistake.
package verification

import "fmt"

// Result is either Verified or Failed(reason). The zero value is Failed("")
// so a forgotten return never silently reads as accepted.
type Result struct {
	ok     bool
	reason string
}

// Verified returns the accepting result.
func Verified() Result {
	return Result{ok: true}
}

// Failed returns a rejecting result naming which check failed. The reason
// describes the check, never the witness.
func Failed(format string, args ...any) Result {
	return Result{ok: false, reason: fmt.Sprintf(format, args...)}
}

// IsVerified reports whether the proof was accepted.
func (r Result) IsVerified() bool { return r.ok }

// Reason returns the rejection reason, or "" if verified.
func (r Result) Reason() string { return r.reason }

// String renders the result for logging.
func (r Result) String() string {
	if r.ok {
		return "Verified"
	}
	return fmt.Sprintf("Failed: %s", r.reason)
}
