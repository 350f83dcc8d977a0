package main

import "testing"

func TestByteArrayRegionRoundTrip(t *testing.T) {
	r := NewByteArrayRegion("TEST", 0x1000, 0x100, 0x00)
	r.Write(0x10, 0xDEADBEEF, 4)
	if got := r.Read(0x10, 4); got != 0xDEADBEEF {
		t.Fatalf("round-trip 32-bit write/read = %#x, want 0xDEADBEEF", got)
	}
	r.Write(0x20, 0xAB, 1)
	if got := r.Read(0x20, 1); got != 0xAB {
		t.Fatalf("round-trip 8-bit write/read = %#x, want 0xAB", got)
	}
}

func TestByteArrayRegionPreinit(t *testing.T) {
	r := NewByteArrayRegion("FLASH", 0x10000000, 0x100, 0xFF)
	if got := r.Read(0, 4); got != 0xFFFFFFFF {
		t.Fatalf("preinit fill = %#x, want 0xFFFFFFFF", got)
	}
}

func TestRegisterMapMissingHook(t *testing.T) {
	rm := NewRegisterMap("TEST", 0x2000, 0x100, false)
	if got := rm.Read(0x10, 4); got != 0 {
		t.Fatalf("unhooked read = %#x, want 0", got)
	}
	rm.Write(0x10, 0x1234, 4) // must not panic
}

func TestRegisterMapNarrowWriteReplication(t *testing.T) {
	rm := NewRegisterMap("TEST", 0x2000, 0x100, false)
	var stored uint32
	rm.OnWrite(0x10, func(v uint32) { stored = v })
	rm.Write(0x10, 0xAB, 1)
	if stored != 0xABABABAB {
		t.Fatalf("narrow byte write replication = %#x, want 0xABABABAB", stored)
	}
	rm.Write(0x10, 0xBEEF, 2)
	if stored != 0xBEEFBEEF {
		t.Fatalf("narrow halfword write replication = %#x, want 0xBEEFBEEF", stored)
	}
}

// TestRegisterMapAtomicAlias exercises the RP2040 atomic-alias scheme of
// register maps: offset+0x1000 XORs, +0x2000 sets, +0x3000 clears.
func TestRegisterMapAtomicAlias(t *testing.T) {
	rm := NewRegisterMap("TEST", 0x2000, 0x4000, true)
	var stored uint32 = 0x0000FF00
	rm.OnRead(0x10, func() uint32 { return stored })
	rm.OnWrite(0x10, func(v uint32) { stored = v })

	rm.Write(0x10+0x1000, 0x000000FF, 4) // XOR alias
	if stored != 0x0000FFFF {
		t.Fatalf("XOR alias = %#x, want 0x0000ffff", stored)
	}

	rm.Write(0x10+0x2000, 0x00FF0000, 4) // SET alias
	if stored != 0x00FFFFFF {
		t.Fatalf("SET alias = %#x, want 0x00ffffff", stored)
	}

	rm.Write(0x10+0x3000, 0x0000FFFF, 4) // CLEAR alias
	if stored != 0x00FF0000 {
		t.Fatalf("CLEAR alias = %#x, want 0x00ff0000", stored)
	}
}
