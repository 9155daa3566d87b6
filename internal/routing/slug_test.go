package routing

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"canonical", "ali", "ali", true},
		{"separators and case", "--Ali__", "ali", true},
		{"surrounding whitespace", "  Fatima-Zahra ", "fatima-zahra", true},
		{"tabs and newlines", "\tali\n", "ali", true},
		{"whitespace outside separators", " -ali- ", "ali", true},
		{"underscore kept inside", "Mohammed_Ali", "mohammed_ali", true},
		{"digits", "Ali2", "ali2", true},
		{"double hyphen", "a--b", "", false},
		{"mixed double separator", "a_-b", "", false},
		{"empty", "", "", false},
		{"only separators", "-_-", "", false},
		{"only whitespace", "   ", "", false},
		{"punctuation", "ali!", "", false},
		{"inner space", "- ali", "", false},
		{"unicode", "ālī", "", false},
		{"control byte", "ali\x00", "", false},
		{"slash", "ali/khan", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sanitize(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitize_FixedPoint(t *testing.T) {
	for _, s := range []string{"ali", "fatima-zahra", "mohammed_ali", "a1", "x", "abd-al-rahman"} {
		got, ok := Sanitize(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
		assert.True(t, IsCanonical(s), s)
	}
}

func TestSanitize_OutputIsCanonical(t *testing.T) {
	const alphabet = "aZ09-_ \t.é"
	rng := rand.New(rand.NewSource(7))
	runes := []rune(alphabet)

	for i := 0; i < 2000; i++ {
		var b strings.Builder
		for j := rng.Intn(12); j > 0; j-- {
			b.WriteRune(runes[rng.Intn(len(runes))])
		}
		out, ok := Sanitize(b.String())
		if !ok {
			assert.Empty(t, out)
			continue
		}
		assert.True(t, IsCanonical(out), "input %q gave %q", b.String(), out)
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("ali"))
	assert.False(t, IsCanonical("Ali"))
	assert.False(t, IsCanonical("-ali"))
	assert.False(t, IsCanonical("a--b"))
	assert.False(t, IsCanonical(""))
}

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "the-meaning-of-ali", MakeSlug("The Meaning of  Ali!"))
	assert.Equal(t, "item", MakeSlug("¡¿?"))
	assert.Len(t, MakeSlug(strings.Repeat("abc ", 40)), 99) // cut lands on a dash

	// MakeSlug output always satisfies the sanitizer grammar.
	for _, title := range []string{"Zainab & Co.", "  Yusuf  ", "Top 10 Names", "x--y"} {
		assert.True(t, IsCanonical(MakeSlug(title)), title)
	}
}

func TestBuildPath(t *testing.T) {
	assert.Equal(t, "/", BuildPath("", ""))
	assert.Equal(t, "/ali", BuildPath("", "ali"))
	assert.Equal(t, "/names/islamic", BuildPath("/names/islamic/", ""))
	assert.Equal(t, "/names/islamic/ali", BuildPath("/names/islamic/", "/ali"))
}
