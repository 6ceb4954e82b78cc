package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a@b.co",
		"first.last+tag@sub.domain.org",
	}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"no-at.example.com",
		"user@nodot",
		"user@@example.com",
		"user name@example.com",
		"user@exa mple.com",
		"@example.com",
		"user@",
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}

func TestIsStrongPassword(t *testing.T) {
	strong := []string{
		"Str0ng!pwd",
		"a1@aaaaa",
		"PASSW0RD&",
		"xyz12345$",
	}
	for _, p := range strong {
		assert.True(t, IsStrongPassword(p), p)
	}

	weak := []string{
		"",
		"short1!",      // under 8 chars
		"lettersonly!", // no digit
		"12345678!",    // no letter
		"abcd1234",     // no symbol
		"abcd 1234!",   // space outside the allowed set
		"abcd1234#",    // symbol outside the allowed set
		"päss1234!",    // non-ASCII letter
	}
	for _, p := range weak {
		assert.False(t, IsStrongPassword(p), p)
	}
}
