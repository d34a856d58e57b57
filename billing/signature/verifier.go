// Package signature authenticates inbound processor notifications before any
// payload parsing happens.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"encore.app/billing/model"
)

var (
	// ErrInvalidSignature covers a missing/malformed header, a digest
	// mismatch, and a timestamp outside the tolerance window. Callers must
	// not distinguish these to an external audience.
	ErrInvalidSignature = errors.New("invalid event signature")

	// ErrMalformedPayload means the signature checked out but the body is not
	// a parseable event envelope.
	ErrMalformedPayload = errors.New("malformed event payload")
)

// DefaultTolerance is how far the signed timestamp may deviate from now.
const DefaultTolerance = 300 * time.Second

// Verifier authenticates raw webhook bodies against a shared signing secret.
// The zero tolerance and nil clock fall back to defaults, so
// Verifier{Secret: s} is usable directly.
type Verifier struct {
	Secret    string
	Tolerance time.Duration
	Now       func() time.Time // injectable for tests
}

// NewVerifier returns a Verifier with the default tolerance window.
func NewVerifier(secret string) *Verifier {
	return &Verifier{Secret: secret, Tolerance: DefaultTolerance}
}

// Verify checks the signature header against an HMAC-SHA256 of
// "timestamp.body", rejects stale timestamps, and only then parses the body
// into a typed envelope. Constant-time comparison throughout.
func (v *Verifier) Verify(body []byte, header string) (*model.EventEnvelope, error) {
	ts, digests, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	tolerance := v.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	signedAt := time.Unix(ts, 0)
	if drift := now().Sub(signedAt); drift > tolerance || drift < -tolerance {
		return nil, ErrInvalidSignature
	}

	expected := computeSignature(v.Secret, ts, body)
	ok := false
	for _, digest := range digests {
		if hmac.Equal([]byte(digest), []byte(expected)) {
			ok = true
		}
	}
	if !ok {
		return nil, ErrInvalidSignature
	}

	var envelope model.EventEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.ID == "" {
		return nil, ErrMalformedPayload
	}
	return &envelope, nil
}

// Sign produces a header for the given body, used by tests and the local
// replay tooling.
func Sign(secret string, signedAt time.Time, body []byte) string {
	ts := signedAt.Unix()
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + computeSignature(secret, ts, body)
}

func computeSignature(secret string, ts int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// parseHeader splits "t=<unix>,v1=<hex>[,v1=<hex>...]". Multiple v1 entries
// are legal during secret rotation; any one matching is sufficient.
func parseHeader(header string) (int64, []string, error) {
	var (
		ts      int64
		digests []string
		seenTS  bool
	)
	for _, part := range strings.Split(header, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			parsed, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidSignature
			}
			ts = parsed
			seenTS = true
		case "v1":
			if val != "" {
				digests = append(digests, val)
			}
		}
	}
	if !seenTS || len(digests) == 0 {
		return 0, nil, ErrInvalidSignature
	}
	return ts, digests, nil
}
