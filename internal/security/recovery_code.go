package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

// Recovery codes are shown to the user exactly once at registration and used
// for password recovery. The alphabet avoids lookalike characters.
const (
	recoveryCodeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	recoveryCodeGroups     = 3
	recoveryCodeGroupWidth = 4
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")

	recoveryCodePattern = regexp.MustCompile(`^[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`)
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// GenerateRecoveryCode produces a grouped code like "K7QF-2MNP-8XWZ".
func GenerateRecoveryCode() (string, error) {
	groups := make([]string, 0, recoveryCodeGroups)
	for index := 0; index < recoveryCodeGroups; index++ {
		group, err := RandomString(recoveryCodeGroupWidth, recoveryCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return strings.Join(groups, "-"), nil
}

// NormalizeRecoveryCode uppercases user input and restores the grouping, so
// codes pasted without dashes still validate.
func NormalizeRecoveryCode(raw string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if len(cleaned) != recoveryCodeGroups*recoveryCodeGroupWidth {
		return strings.ToUpper(strings.TrimSpace(raw))
	}
	groups := make([]string, 0, recoveryCodeGroups)
	for index := 0; index < len(cleaned); index += recoveryCodeGroupWidth {
		groups = append(groups, cleaned[index:index+recoveryCodeGroupWidth])
	}
	return strings.Join(groups, "-")
}

// ValidRecoveryCodeFormat checks shape only, never existence.
func ValidRecoveryCodeFormat(code string) bool {
	return recoveryCodePattern.MatchString(code)
}
