// mpu.go - address-routed bus: resolves an absolute address to its owning region

package main

import (
	"fmt"
	"log"
)

var busLog = log.New(log.Writer(), "mpu: ", log.LstdFlags)

// Mpu routes absolute addresses to registered regions in insertion order and
// performs width-typed reads/writes. Region [base, base+size) intervals must
// not overlap; this is an invariant of construction, not enforced at runtime.
type Mpu struct {
	regions []Region
}

// NewMpu creates an empty bus with no registered regions.
func NewMpu() *Mpu {
	return &Mpu{}
}

// Register adds a region to the bus. Order of registration only affects the
// linear scan in findRegion, which is fine: the region set is small and fixed.
func (m *Mpu) Register(r Region) {
	m.regions = append(m.regions, r)
}

func (m *Mpu) findRegion(addr uint32) Region {
	for _, r := range m.regions {
		if addr >= r.Base() && addr < r.Base()+r.Size() {
			return r
		}
	}
	return nil
}

// Read performs a width-typed read (1, 2, or 4 bytes). A missing region
// returns 0 and logs a warning; it never faults.
func (m *Mpu) Read(addr uint32, width int) uint32 {
	r := m.findRegion(addr)
	if r == nil {
		busLog.Printf("no matching region for address %#08x%s", addr, ioHint(addr))
		return 0
	}
	return r.Read(addr-r.Base(), width)
}

// Write performs a width-typed write. A missing region drops the write and
// logs a warning.
func (m *Mpu) Write(addr uint32, value uint32, width int) {
	r := m.findRegion(addr)
	if r == nil {
		busLog.Printf("no matching region for address %#08x, write dropped%s", addr, ioHint(addr))
		return
	}
	r.Write(addr-r.Base(), value, width)
}

// ioHint adds a region-name suffix to a bus-miss log line when addr falls
// inside a known peripheral's address window despite missing m.findRegion,
// which otherwise means that peripheral simply wasn't registered on this bus.
func ioHint(addr uint32) string {
	if name := GetIORegion(addr); name != "" {
		return fmt.Sprintf(" (inside %s window, but not registered)", name)
	}
	return ""
}

func (m *Mpu) Read8(addr uint32) uint32        { return m.Read(addr, 1) }
func (m *Mpu) Read16(addr uint32) uint32       { return m.Read(addr, 2) }
func (m *Mpu) Read32(addr uint32) uint32       { return m.Read(addr, 4) }
func (m *Mpu) Write8(addr uint32, v uint32)    { m.Write(addr, v, 1) }
func (m *Mpu) Write16(addr uint32, v uint32)   { m.Write(addr, v, 2) }
func (m *Mpu) Write32(addr uint32, v uint32)   { m.Write(addr, v, 4) }
