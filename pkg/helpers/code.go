package helpers

import (
	"math/rand/v2"
	"strconv"
)

// KeyVerificationCode is the Redis key holding the active verification code
// for an email. One active code per address; a new code overwrites the old.
func KeyVerificationCode(email string) string {
	return "auth:code:" + email
}

// GenVerificationCode returns a 6-digit numeric code in [0, 999999] as a
// decimal string without zero padding. The source is a pseudo-random
// generator, not crypto/rand; codes are short-lived and single-purpose.
func GenVerificationCode() string {
	return strconv.Itoa(rand.IntN(1000000))
}
