// Package generator produces random passwords from crypto/rand. Every
// generated password contains at least one lowercase letter, one uppercase
// letter, one digit, and one symbol.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/passvault-app/passvault/internal/common"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// MinLength is the shortest password Generate accepts: one character per
// mandatory class.
const MinLength = 4

// Generate returns a random password of exactly length characters drawn
// from the combined alphabet. One pick from each mandatory class seeds the
// result, the remaining positions are filled uniformly from the combined
// alphabet, and the whole password is shuffled so the mandatory characters
// do not sit in fixed positions.
//
// Lengths below MinLength fail with common.ErrInvalidLength.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", common.ErrInvalidLength
	}

	combined := lowercase + uppercase + digits + symbols

	pw := make([]byte, 0, length)
	for _, class := range []string{lowercase, uppercase, digits, symbols} {
		ch, err := pickByte(class)
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}
	for len(pw) < length {
		ch, err := pickByte(combined)
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}

	if err := shuffle(pw); err != nil {
		return "", err
	}
	return string(pw), nil
}

// pickByte returns one uniformly random byte of the given alphabet.
func pickByte(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("random source failure: %w", err)
	}
	return alphabet[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("random source failure: %w", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
