// Package bus implements the NES CPU address space: the fabric of RAM
// mirrors, the PPU register window, the APU/IO cell block, and the
// cartridge space that the CPU core reads and writes through.
package bus

// PPURegisters is the eight memory-mapped PPU registers as seen from the
// CPU side of the bus ($2000-$2007, mirrored every 8 bytes through
// $3FFF). internal/ppu.Registers satisfies this.
type PPURegisters interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
}

// CartridgeInterface is the cartridge-space collaborator ($4020-$FFFF):
// PRG-RAM, PRG-ROM, and whatever mapper registers live in between.
// internal/cartridge.Cartridge satisfies this.
type CartridgeInterface interface {
	ReadPRG(address uint16) uint8
	WritePRG(address uint16, value uint8)
}

// Bus owns the CPU-visible address space. It exclusively owns the backing
// RAM and APU/IO arrays; the PPU register window and cartridge space are
// reached only through their collaborator interfaces.
type Bus struct {
	ram   [0x800]uint8
	apuIO [0x20]uint8
	ppu   PPURegisters
	cart  CartridgeInterface
}

// New wires a Bus to its PPU register and cartridge collaborators.
func New(ppu PPURegisters, cart CartridgeInterface) *Bus {
	return &Bus{ppu: ppu, cart: cart}
}

// Read dispatches a CPU read to the zone address falls into:
//
//	$0000-$1FFF  2KB internal RAM, mirrored four times
//	$2000-$3FFF  8 PPU registers, mirrored every 8 bytes
//	$4000-$401F  APU/IO registers, treated as plain byte cells
//	$4020-$FFFF  cartridge space (PRG-RAM/PRG-ROM via the mapper)
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return b.ram[address&0x07FF]
	case address < 0x4000:
		return b.ppu.ReadRegister(0x2000 + (address & 0x0007))
	case address < 0x4020:
		return b.apuIO[address-0x4000]
	default:
		return b.cart.ReadPRG(address)
	}
}

// Write mirrors Read's zone dispatch for CPU writes.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address&0x07FF] = value
	case address < 0x4000:
		b.ppu.WriteRegister(0x2000+(address&0x0007), value)
	case address < 0x4020:
		b.apuIO[address-0x4000] = value
	default:
		b.cart.WritePRG(address, value)
	}
}

// Read16 reads a little-endian word. Per the 6502's own vector-fetch
// behavior the high byte wraps at $FFFF rather than reading from $10000.
func (b *Bus) Read16(address uint16) uint16 {
	low := uint16(b.Read(address))
	high := uint16(b.Read(address + 1))
	return (high << 8) | low
}
