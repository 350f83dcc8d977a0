// loader_bin.go - raw binary image loader

package main

import (
	"fmt"
	"os"
)

// LoadBinary copies the entire contents of path into region starting at
// offset, with no header of its own.
func LoadBinary(path string, region *ByteArrayRegion, offset uint32) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loadbinary: %w", err)
	}
	dst := region.Bytes()
	if int(offset)+len(data) > len(dst) {
		return fmt.Errorf("loadbinary: %s (%d bytes) does not fit in %s at offset %#x", path, len(data), region.Name(), offset)
	}
	copy(dst[offset:], data)
	return nil
}
