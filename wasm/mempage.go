package wasm

const (
	memoryPageSizeInBit = 16
	// MemoryPageSize is the granularity (64 KiB) in which linear memory is
	// declared, grown and bounded (binary format section 5.5.6).
	MemoryPageSize = 1 << memoryPageSizeInBit
)

func memoryPagesToBytesNum(pages uint32) uint64 {
	return uint64(pages) * MemoryPageSize
}

func memoryBytesNumToPages(numBytes uint64) uint32 {
	return uint32(numBytes / MemoryPageSize)
}
