package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nescore/internal/cartridge"
)

// ramCHR is an 8KB writable pattern-table stand-in.
type ramCHR struct {
	data [0x2000]uint8
}

func (c *ramCHR) ReadCHR(address uint16) uint8         { return c.data[address] }
func (c *ramCHR) WriteCHR(address uint16, value uint8) { c.data[address] = value }

func newTestRegisters(mirror cartridge.MirrorMode) (*Registers, *Memory, *ramCHR) {
	chr := &ramCHR{}
	mem := NewMemory(chr, mirror)
	return NewRegisters(mem), mem, chr
}

func writeAddr(r *Registers, address uint16) {
	r.WriteRegister(PPUADDR, uint8(address>>8))
	r.WriteRegister(PPUADDR, uint8(address))
}

func TestPPUADDRThenPPUDATAWritesVRAM(t *testing.T) {
	r, mem, _ := newTestRegisters(cartridge.MirrorVertical)

	writeAddr(r, 0x2005)
	r.WriteRegister(PPUDATA, 0x66)

	assert.Equal(t, uint8(0x66), mem.Read(0x2005))
}

func TestPPUDATAReadIsBuffered(t *testing.T) {
	r, mem, _ := newTestRegisters(cartridge.MirrorVertical)
	mem.Write(0x2100, 0xAA)
	mem.Write(0x2101, 0xBB)

	writeAddr(r, 0x2100)
	r.ReadRegister(PPUDATA) // primes the buffer, returns stale contents
	assert.Equal(t, uint8(0xAA), r.ReadRegister(PPUDATA))
	assert.Equal(t, uint8(0xBB), r.ReadRegister(PPUDATA))
}

func TestPPUDATAPaletteReadSkipsBuffer(t *testing.T) {
	r, mem, _ := newTestRegisters(cartridge.MirrorVertical)
	mem.Write(0x3F01, 0x34)

	writeAddr(r, 0x3F01)

	assert.Equal(t, uint8(0x34), r.ReadRegister(PPUDATA))
}

func TestPPUDATAIncrementsBy32WhenCtrlBitSet(t *testing.T) {
	r, mem, _ := newTestRegisters(cartridge.MirrorVertical)
	r.WriteRegister(PPUCTRL, 0x04)

	writeAddr(r, 0x2000)
	r.WriteRegister(PPUDATA, 0x01)
	r.WriteRegister(PPUDATA, 0x02)

	assert.Equal(t, uint8(0x01), mem.Read(0x2000))
	assert.Equal(t, uint8(0x02), mem.Read(0x2020))
}

func TestPPUSTATUSReadClearsVBlankAndWriteLatch(t *testing.T) {
	r, _, _ := newTestRegisters(cartridge.MirrorVertical)
	r.status = 0x80

	// Half a PPUADDR write leaves the latch armed; reading status resets it
	// so the next write is a high byte again.
	r.WriteRegister(PPUADDR, 0x21)
	first := r.ReadRegister(PPUSTATUS)
	writeAddr(r, 0x2005)
	r.WriteRegister(PPUDATA, 0x42)

	assert.Equal(t, uint8(0x80), first&0x80)
	assert.Zero(t, r.ReadRegister(PPUSTATUS)&0x80)
	assert.Equal(t, uint8(0x42), r.mem.Read(0x2005))
}

func TestOAMDATAAutoIncrementsOnWrite(t *testing.T) {
	r, _, _ := newTestRegisters(cartridge.MirrorVertical)

	r.WriteRegister(OAMADDR, 0x10)
	r.WriteRegister(OAMDATA, 0xDE)
	r.WriteRegister(OAMDATA, 0xAD)

	r.WriteRegister(OAMADDR, 0x10)
	assert.Equal(t, uint8(0xDE), r.ReadRegister(OAMDATA))
	r.WriteRegister(OAMADDR, 0x11)
	assert.Equal(t, uint8(0xAD), r.ReadRegister(OAMDATA))
}

func TestNametableVerticalMirroring(t *testing.T) {
	_, mem, _ := newTestRegisters(cartridge.MirrorVertical)

	mem.Write(0x2000, 0x11) // table 0
	mem.Write(0x2400, 0x22) // table 1

	assert.Equal(t, uint8(0x11), mem.Read(0x2800)) // table 2 aliases 0
	assert.Equal(t, uint8(0x22), mem.Read(0x2C00)) // table 3 aliases 1
}

func TestNametableHorizontalMirroring(t *testing.T) {
	_, mem, _ := newTestRegisters(cartridge.MirrorHorizontal)

	mem.Write(0x2000, 0x11) // table 0
	mem.Write(0x2800, 0x22) // table 2

	assert.Equal(t, uint8(0x11), mem.Read(0x2400)) // table 1 aliases 0
	assert.Equal(t, uint8(0x22), mem.Read(0x2C00)) // table 3 aliases 2
}

func TestNametablePartialMirrorAt3000(t *testing.T) {
	_, mem, _ := newTestRegisters(cartridge.MirrorVertical)

	mem.Write(0x2123, 0x99)

	assert.Equal(t, uint8(0x99), mem.Read(0x3123))
}

func TestPaletteBackdropMirrors(t *testing.T) {
	_, mem, _ := newTestRegisters(cartridge.MirrorVertical)

	mem.Write(0x3F00, 0x0F)

	assert.Equal(t, uint8(0x0F), mem.Read(0x3F10))
	assert.Equal(t, uint8(0x0F), mem.Read(0x3F20)) // 32-byte stride mirror
}

func TestPatternTableGoesThroughCHR(t *testing.T) {
	_, mem, chr := newTestRegisters(cartridge.MirrorVertical)
	chr.data[0x1234] = 0x77

	assert.Equal(t, uint8(0x77), mem.Read(0x1234))
}
