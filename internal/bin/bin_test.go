package bin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, int32(-3)))
	require.NoError(t, Write(&buf, uint32(0xDEADBEEF)))
	assert.Equal(t, 8, buf.Len())

	i, err := Read[int32](&buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), i)

	u, err := Read[uint32](&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u)

	_, err = Read[uint32](&buf)
	assert.Error(t, err)
}

func TestBytesValue(t *testing.T) {
	assert.Equal(t, uint32(1234567), Value[uint32](Bytes(uint32(1234567))))
}
