// Command mixnetctl demonstrates a full shuffle-and-prove round trip over
// the standardized Default security level group: it encrypts a batch of
// random plaintexts, shuffles them with a verifiable argument, and checks
// that argument against the original batch.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/log"
	"github.com/Cipheritall/crypto-primitives-sub001/mixnet"
	"github.com/Cipheritall/crypto-primitives-sub001/securitylevel"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
)

const (
	defaultCount      = 4
	defaultRecipients = 2
	defaultLogLevel   = "info"
)

func main() {
	count := flag.IntP("count", "n", defaultCount, "number of ciphertexts to shuffle")
	recipients := flag.IntP("recipients", "l", defaultRecipients, "number of ElGamal recipient slots per ciphertext")
	logLevel := flag.StringP("log.level", "v", defaultLogLevel, "log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mixnetctl: demo a verifiable shuffle round trip\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mixnetctl [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Init(*logLevel, "stderr", nil)

	if err := run(*count, *recipients); err != nil {
		log.Fatalf("mixnetctl: %v", err)
	}
}

func run(count, recipients int) error {
	if count < 1 {
		return group.InvalidArgument("count must be >= 1, got %d", count)
	}
	if recipients < 1 {
		return group.InvalidArgument("recipients must be >= 1, got %d", recipients)
	}

	gr, err := securitylevel.DefaultGroup()
	if err != nil {
		return fmt.Errorf("loading standardized group: %w", err)
	}
	zq := gr.ZqGroup()
	sampler := group.CryptoSampler{}

	pk, err := randomPublicKey(gr, sampler, recipients)
	if err != nil {
		return fmt.Errorf("generating public key: %w", err)
	}

	kc, err := commitment.NewKeyCache()
	if err != nil {
		return fmt.Errorf("building commitment key cache: %w", err)
	}
	ck, err := kc.Get(count, gr)
	if err != nil {
		return fmt.Errorf("deriving commitment key: %w", err)
	}

	pp, err := params.New(gr, ck, pk)
	if err != nil {
		return fmt.Errorf("building public parameters: %w", err)
	}

	ciphertexts, err := randomCiphertexts(gr, sampler, pk, count, recipients)
	if err != nil {
		return fmt.Errorf("encrypting batch: %w", err)
	}

	h, err := transcript.New(zq)
	if err != nil {
		return fmt.Errorf("building hash transcript: %w", err)
	}

	log.Infow("shuffling batch", "count", count, "recipients", recipients)
	vs, err := mixnet.Shuffle(pp, h, sampler, ciphertexts)
	if err != nil {
		return fmt.Errorf("shuffling: %w", err)
	}

	result, err := mixnet.VerifyShuffle(pp, h, ciphertexts, vs)
	if err != nil {
		return fmt.Errorf("verifying: %w", err)
	}
	if !result.IsVerified() {
		return fmt.Errorf("shuffle argument failed verification: %s", result.Reason())
	}

	log.Infow("shuffle argument verified", "count", count, "recipients", recipients)
	fmt.Printf("verified shuffle of %d ciphertext(s) across %d recipient slot(s)\n", count, recipients)
	return nil
}

// randomPublicKey generates l independent per-slot secret keys and returns
// the corresponding public key; decryption material is discarded, since the
// demo only exercises the shuffle proof.
func randomPublicKey(gr group.GqGroup, sampler group.Sampler, l int) (elgamal.PublicKey, error) {
	zq := gr.ZqGroup()
	elems := make([]group.GqElement, l)
	for i := range elems {
		sk, err := sampler.Next(zq)
		if err != nil {
			return elgamal.PublicKey{}, err
		}
		pkI, err := gr.GeneratorElement().Exponentiate(sk)
		if err != nil {
			return elgamal.PublicKey{}, err
		}
		elems[i] = pkI
	}
	vec, err := group.NewGqVector(gr, elems)
	if err != nil {
		return elgamal.PublicKey{}, err
	}
	return elgamal.NewPublicKey(vec)
}

// randomCiphertexts encrypts n random plaintext vectors of width l under pk,
// each with a fresh rerandomization exponent.
func randomCiphertexts(gr group.GqGroup, sampler group.Sampler, pk elgamal.PublicKey, n, l int) ([]elgamal.Ciphertext, error) {
	zq := gr.ZqGroup()
	out := make([]elgamal.Ciphertext, n)
	for i := range out {
		messages := make([]group.GqElement, l)
		for j := range messages {
			m, err := sampler.Next(zq)
			if err != nil {
				return nil, err
			}
			msgElem, err := gr.GeneratorElement().Exponentiate(m)
			if err != nil {
				return nil, err
			}
			messages[j] = msgElem
		}
		rho, err := sampler.Next(zq)
		if err != nil {
			return nil, err
		}
		ct, err := elgamal.Encrypt(messages, rho, pk)
		if err != nil {
			return nil, err
		}
		out[i] = ct
	}
	return out, nil
}
