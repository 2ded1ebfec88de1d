package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	// xxHash64 of empty input is a fixed constant.
	assert.Equal(t, uint64(0xef46db3751d8e999), Digest(nil))
	assert.Equal(t, uint64(0xef46db3751d8e999), Digest([]byte{}))
}

func TestDigest_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	require.Equal(t, Digest(data), Digest(data))
}

func TestDigest_Sensitivity(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x01, 0x02, 0x04}
	require.NotEqual(t, Digest(a), Digest(b))
}

func BenchmarkDigest(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for b.Loop() {
		Digest(data)
	}
}
