package user

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

var ownerTagRegex = regexp.MustCompile(`^[A-Z]{2,3}-\d{2}-\d{2}$`)

// OwnerTag is the public "XXX-NN-NN" handle printed on certificates.
type OwnerTag struct {
	value string
}

func ParseOwnerTag(s string) (OwnerTag, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !ValidateOwnerTag(s) {
		return OwnerTag{}, ErrInvalidOwnerTag
	}
	return OwnerTag{value: s}, nil
}

func ValidateOwnerTag(s string) bool {
	return ownerTagRegex.MatchString(s)
}

func (t OwnerTag) String() string { return t.value }

// DigitSource returns a number in [0, 10000). Swapped in tests.
type DigitSource func() int

func RandomDigits() int {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}

// GenerateOwnerTag builds the tag from the initials of the first name, a
// middle letter (second given name or the first name's second letter) and the
// last name, followed by the first and last two digits of the phone. Without a
// usable phone, four random digits are used instead.
func GenerateOwnerTag(firstName, lastName, phone string, digits DigitSource) (OwnerTag, error) {
	first := lettersOnly(firstName)
	last := lettersOnly(lastName)
	if len(first) == 0 || len(last) == 0 {
		return OwnerTag{}, ErrInvalidOwnerTag
	}

	code := []rune{first[0]}
	if parts := strings.Fields(firstName); len(parts) > 1 {
		if m := lettersOnly(parts[1]); len(m) > 0 {
			code = append(code, m[0])
		}
	} else if len(first) > 1 {
		code = append(code, first[1])
	}
	code = append(code, last[0])

	var head, tail string
	if d := digitsOnly(phone); len(d) >= 4 {
		head, tail = d[:2], d[len(d)-2:]
	} else {
		if digits == nil {
			digits = RandomDigits
		}
		suffix := fmt.Sprintf("%04d", digits()%10000)
		head, tail = suffix[:2], suffix[2:]
	}

	return ParseOwnerTag(fmt.Sprintf("%s-%s-%s", string(code), head, tail))
}

func lettersOnly(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			out = append(out, r)
		}
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
