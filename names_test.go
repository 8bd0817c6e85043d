package optscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedInName(t *testing.T) {
	for _, r := range "aZß日ж٣9-_" {
		assert.True(t, IsAllowedInName(r), "%q should be allowed", r)
	}
	for _, r := range " =!+.,/\t\x00😀�" {
		assert.False(t, IsAllowedInName(r), "%q should not be allowed", r)
	}
}

func TestReadableRune(t *testing.T) {
	assert.Equal(t, "'x'", readableRune('x'))
	assert.Equal(t, "'日'", readableRune('日'))
	assert.Equal(t, "(Unicode scalar 32)", readableRune(' '))
	assert.Equal(t, "(Unicode scalar 9)", readableRune('\t'))
	assert.Equal(t, "(Unicode scalar 0)", readableRune(0))
}

func TestScalars(t *testing.T) {
	token := "-日😀a"
	seq := scalars(token)

	assert.Len(t, seq, 4)
	assert.Equal(t, '日', seq[1].r)
	assert.Equal(t, "😀a", text(token, seq[2:]))
	assert.Equal(t, "", text(token, seq[4:]))
	assert.Equal(t, token, text(token, seq))
}

func TestScalars_InvalidUTF8(t *testing.T) {
	token := "a\xffb"
	seq := scalars(token)

	assert.Len(t, seq, 3)
	assert.Equal(t, '�', seq[1].r)
	assert.Equal(t, "\xffb", text(token, seq[1:]), "original bytes are kept")
}
