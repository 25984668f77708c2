package slugify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromShopName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Berber Ndreca", "berber-ndreca"},
		{"Joe's  Barber Shop!", "joes-barber-shop"},
		{"  Cuts & Fades  ", "cuts-fades"},
		{"UPPER lower 123", "upper-lower-123"},
		{"already-hyphened--name", "already-hyphened-name"},
		{"çüß", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FromShopName(tc.in), "input %q", tc.in)
	}
}

func TestWithSuffix(t *testing.T) {
	out := WithSuffix("berber-ndreca")

	assert.True(t, strings.HasPrefix(out, "berber-ndreca-"))
	suffix := strings.TrimPrefix(out, "berber-ndreca-")
	assert.NotEmpty(t, suffix)
	// base36: lower-case alphanumerics only
	for _, r := range suffix {
		ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
		assert.True(t, ok, "unexpected rune %q in suffix", r)
	}
}
