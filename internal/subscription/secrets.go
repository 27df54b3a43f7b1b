package subscription

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
)

var randReader = rand.Reader

// newEmailToken returns 32 random bytes, URL-safe encoded.
func newEmailToken(r io.Reader) (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("generating email token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// newPhoneCode returns a 6-digit code in [100000, 999999].
func newPhoneCode(r io.Reader) (string, error) {
	n, err := rand.Int(r, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generating phone code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
