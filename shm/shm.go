// Package shm provides helpers for dealing with shared memory.
package shm

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// Create returns an anonymous, unlinked file suitable for sharing
// with the compositor. It prefers memfd_create and falls back to a
// file in /dev/shm that is removed immediately.
func Create() (*os.File, error) {
	fd, err := unix.MemfdCreate("wlwin-shm", unix.MFD_CLOEXEC)
	if err == nil {
		return os.NewFile(uintptr(fd), "wlwin-shm"), nil
	}

	path := "/dev/shm/wlwin-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}

	return file, os.Remove(path)
}

// CreateSize is like Create but also truncates the file to size.
func CreateSize(size int64) (*os.File, error) {
	file, err := Create()
	if err != nil {
		return nil, err
	}

	err = file.Truncate(size)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("truncate: %w", err)
	}
	return file, nil
}

type Mmap []byte

// MapShared maps size bytes of file into memory with MAP_SHARED.
func MapShared(file *os.File, size int, prot int) (mmap Mmap, err error) {
	sc, err := file.SyscallConn()
	if err != nil {
		return nil, err
	}

	cerr := sc.Control(func(fd uintptr) {
		m, merr := unix.Mmap(int(fd), 0, size, prot, unix.MAP_SHARED)
		mmap, err = Mmap(m), merr
	})
	if cerr != nil {
		return nil, cerr
	}

	return mmap, err
}

func (mmap Mmap) Unmap() error {
	return unix.Munmap(mmap[:cap(mmap)])
}
