package shm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMapShared(t *testing.T) {
	file, err := CreateSize(4096)
	require.NoError(t, err)
	defer file.Close()

	mmap, err := MapShared(file, 4096, unix.PROT_READ|unix.PROT_WRITE)
	require.NoError(t, err)
	copy(mmap, "wlwin")
	require.NoError(t, mmap.Unmap())

	buf := make([]byte, 5)
	_, err = file.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "wlwin", string(buf))
}
