package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is the physical memory device
const DevMem = "/dev/mem"

// MemoryMap represents a memory mapped register window
type MemoryMap struct {
	addr   uintptr
	region []byte
}

// NewMemoryMap maps size bytes of physical memory starting at addr
func NewMemoryMap(addr, size uintptr) (*MemoryMap, error) {
	return NewFileMap(DevMem, addr, size)
}

// NewFileMap maps size bytes of the file at path starting at offset addr.
// Registers are read and written in place, so the file is opened for
// synchronous I/O.
func NewFileMap(path string, addr, size uintptr) (*MemoryMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	// the mapping stays valid after the descriptor is closed
	defer f.Close()

	region, err := unix.Mmap(
		int(f.Fd()),
		int64(addr),
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s at 0x%x: %w", path, addr, err)
	}

	return &MemoryMap{
		addr:   addr,
		region: region,
	}, nil
}

// Close unmaps the region
func (m *MemoryMap) Close() error {
	if m.region == nil {
		return nil
	}
	if err := unix.Munmap(m.region); err != nil {
		return fmt.Errorf("failed to munmap: %w", err)
	}
	m.region = nil
	return nil
}

// Addr returns the base address of the mapping
func (m *MemoryMap) Addr() uintptr {
	return m.addr
}

// Size returns the length of the mapping in bytes
func (m *MemoryMap) Size() int {
	return len(m.region)
}

// Read32 reads the 32-bit register at offset. The access is a single
// aligned load so the hardware sees one bus read.
func (m *MemoryMap) Read32(offset uintptr) uint32 {
	return atomic.LoadUint32(m.word(offset))
}

// Write32 writes the 32-bit register at offset
func (m *MemoryMap) Write32(offset uintptr, value uint32) {
	atomic.StoreUint32(m.word(offset), value)
}

func (m *MemoryMap) word(offset uintptr) *uint32 {
	if offset%4 != 0 || offset+4 > uintptr(len(m.region)) {
		panic(fmt.Sprintf("mmap: bad register offset 0x%x", offset))
	}
	return (*uint32)(unsafe.Pointer(&m.region[offset]))
}
