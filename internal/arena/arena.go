// Package arena provides a block allocator for short-lived, fixed-size
// byte buffers, so a busy glyph cache doesn't hand one tiny slice at a
// time to the garbage collector.
package arena

import "unsafe"

const pointerSize = int(unsafe.Sizeof(uintptr(0)))

// Arena allocates byte slices out of a sequence of larger backing blocks.
// It never frees individual allocations; the whole arena is reclaimed at
// once by dropping it, which suits caches that evict in bulk (see the
// glyph LRU's Reset).
type Arena struct {
	blockSize    int
	blocks       [][]byte
	currentBlock int
	currentPos   int
}

// New creates an Arena whose blocks are blockSize bytes. A blockSize of
// zero or less means every allocation larger than the previous block gets
// its own dedicated block.
func New(blockSize int) *Arena {
	a := &Arena{blockSize: blockSize}
	a.addBlock(0)
	return a
}

func (a *Arena) addBlock(minSize int) {
	size := a.blockSize
	if size < minSize {
		size = minSize
	}
	a.blocks = append(a.blocks, make([]byte, size))
	a.currentBlock = len(a.blocks) - 1
	a.currentPos = 0
}

// Alloc returns a zeroed byte slice of the requested size, carved out of
// the arena's current block. The slice aliases arena-owned memory and
// must not outlive a Reset of this arena.
func (a *Arena) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	aligned := (size + pointerSize - 1) &^ (pointerSize - 1)
	block := a.blocks[a.currentBlock]
	if a.currentPos+aligned > len(block) {
		a.addBlock(aligned)
		block = a.blocks[a.currentBlock]
	}
	result := block[a.currentPos : a.currentPos+size : a.currentPos+aligned]
	a.currentPos += aligned
	return result
}

// Reset releases every block back to a single fresh one, invalidating all
// slices previously returned by Alloc.
func (a *Arena) Reset() {
	a.blocks = a.blocks[:0]
	a.addBlock(0)
}
