package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256_Deterministic(t *testing.T) {
	h := SHA256{}

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, "secret123", first)
	// sha256("password")
	digest, _ := h.Hash("password")
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)
}

func TestHashers_Compare(t *testing.T) {
	tests := []struct {
		name string
		h    Hasher
	}{
		{name: "sha256", h: SHA256{}},
		{name: "bcrypt", h: Bcrypt{Cost: bcrypt.MinCost}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := tt.h.Hash("secret123")
			require.NoError(t, err)

			assert.NoError(t, tt.h.Compare(digest, "secret123"))
			assert.ErrorIs(t, tt.h.Compare(digest, "wrong"), ErrMismatch)
			assert.ErrorIs(t, tt.h.Compare("", "secret123"), ErrMismatch)
		})
	}
}

func TestBcrypt_LengthLimit(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	_, err := h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrTooLong)

	// the legacy digest has no length limit
	_, err = SHA256{}.Hash(strings.Repeat("a", 200))
	assert.NoError(t, err)
}

func TestNew(t *testing.T) {
	h, err := New(KindSHA256)
	assert.NoError(t, err)
	assert.IsType(t, SHA256{}, h)

	h, err = New(KindBcrypt)
	assert.NoError(t, err)
	assert.IsType(t, Bcrypt{}, h)

	h, err = New("md5")
	assert.Error(t, err)
	assert.Nil(t, h)
}
