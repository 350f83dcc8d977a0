package main

import "testing"

func TestMpuRoutesToRegisteredRegion(t *testing.T) {
	m := NewMpu()
	r := NewByteArrayRegion("SRAM", 0x20000000, 0x1000, 0x00)
	m.Register(r)

	m.Write32(0x20000010, 0x12345678)
	if got := m.Read32(0x20000010); got != 0x12345678 {
		t.Fatalf("Mpu round-trip = %#x, want 0x12345678", got)
	}
}

func TestMpuMissingRegionIsSoft(t *testing.T) {
	m := NewMpu()
	if got := m.Read32(0xDEADBEEF); got != 0 {
		t.Fatalf("unrouted read = %#x, want 0", got)
	}
	m.Write32(0xDEADBEEF, 0x1234) // must not panic
}

func TestMpuFindRegionBoundaries(t *testing.T) {
	m := NewMpu()
	m.Register(NewByteArrayRegion("A", 0x100, 0x10, 0x00))
	m.Register(NewByteArrayRegion("B", 0x110, 0x10, 0x00))

	m.Write8(0x10F, 0xAA) // last byte of A
	m.Write8(0x110, 0xBB) // first byte of B
	if got := m.Read8(0x10F); got != 0xAA {
		t.Fatalf("boundary read of A = %#x, want 0xaa", got)
	}
	if got := m.Read8(0x110); got != 0xBB {
		t.Fatalf("boundary read of B = %#x, want 0xbb", got)
	}
}
