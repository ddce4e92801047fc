// Package anonymizer derives anonymous visitor identifiers for ratings.
package anonymizer

import (
	"encoding/hex"
	"net"
	"strings"

	"pharmaduty/config"
	"pharmaduty/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

type blake2bAnonymizer struct {
	key []byte
}

// NewAnonymizer builds a keyed BLAKE2b-256 anonymizer from the rating config section.
func NewAnonymizer(cfg *config.Config) (service.Anonymizer, error) {
	if cfg.Rating == nil || cfg.Rating.AnonymousKey == "" {
		return nil, errors.New("rating anonymous key must be provided")
	}

	return newBlake2bAnonymizer([]byte(cfg.Rating.AnonymousKey))
}

func newBlake2bAnonymizer(key []byte) (*blake2bAnonymizer, error) {
	// blake2b accepts keys of at most 64 bytes; longer secrets are folded first.
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}

	if _, err := blake2b.New256(key); err != nil {
		return nil, errors.Wrap(err, "invalid anonymizer key")
	}

	return &blake2bAnonymizer{key: key}, nil
}

// AnonymousID returns a hex digest of the normalized origin. The same origin
// always yields the same identifier for a given key.
func (a *blake2bAnonymizer) AnonymousID(origin string) string {
	h, _ := blake2b.New256(a.key)
	h.Write([]byte(normalizeOrigin(origin)))

	return hex.EncodeToString(h.Sum(nil))
}

// normalizeOrigin canonicalizes IP literals so that equivalent spellings collide.
func normalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if ip := net.ParseIP(origin); ip != nil {
		return ip.String()
	}

	return strings.ToLower(origin)
}
