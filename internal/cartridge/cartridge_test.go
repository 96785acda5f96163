package cartridge

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles a minimal iNES image: header + PRG + optional CHR.
func buildINES(t *testing.T, prgBanks, chrBanks int, flags6, flags7 uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(uint8(prgBanks))
	buf.WriteByte(uint8(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // PRGRAMSize, TVSystem1/2, 5 padding bytes

	prg := make([]byte, prgBanks*16384)
	for i := range prg {
		prg[i] = uint8(i)
	}
	buf.Write(prg)

	if chrBanks > 0 {
		chr := make([]byte, chrBanks*8192)
		for i := range chr {
			chr[i] = uint8(i)
		}
		buf.Write(chr)
	}

	return buf.Bytes()
}

func TestLoadNROM128MirrorsPRGAcrossWindow(t *testing.T) {
	cart, err := loadFromReader(bytes.NewReader(buildINES(t, 1, 1, 0, 0)))
	require.NoError(t, err)

	assert.Equal(t, cart.ReadPRG(0x8000), cart.ReadPRG(0xC000))
	assert.Equal(t, cart.ReadPRG(0x8001), cart.ReadPRG(0xC001))
}

func TestLoadNROM256DoesNotMirror(t *testing.T) {
	data := buildINES(t, 2, 1, 0, 0)
	// buildINES's fill pattern repeats every 256 bytes, so both banks would
	// start with 0; mark the second bank's first byte to tell them apart.
	data[16+0x4000] = 0xFF
	cart, err := loadFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.NotEqual(t, cart.ReadPRG(0x8000), cart.ReadPRG(0xC000))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildINES(t, 1, 1, 0, 0)
	data[0] = 'X'

	_, err := loadFromReader(bytes.NewReader(data))

	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestLoadRejectsNonZeroMapper(t *testing.T) {
	// mapper 1 (MMC1): low nibble of Flags6 high nibble set to 1
	_, err := loadFromReader(bytes.NewReader(buildINES(t, 1, 1, 0x10, 0)))

	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestLoadRejectsZeroPRGSize(t *testing.T) {
	data := buildINES(t, 1, 1, 0, 0)
	data[4] = 0 // PRGROMSize

	_, err := loadFromReader(bytes.NewReader(data))

	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	data := buildINES(t, 1, 1, 0, 0)

	// Cut inside the header, inside PRG, and inside CHR.
	for _, cut := range []int{8, 16 + 100, 16 + 16384 + 100} {
		_, err := loadFromReader(bytes.NewReader(data[:cut]))

		require.Error(t, err, "cut at %d", cut)
		var fe *FormatError
		require.ErrorAs(t, err, &fe, "cut at %d", cut)
	}
}

func TestZeroCHRSizeAllocatesCHRRAM(t *testing.T) {
	cart, err := loadFromReader(bytes.NewReader(buildINES(t, 1, 0, 0, 0)))
	require.NoError(t, err)

	cart.WriteCHR(0x0010, 0x42)
	assert.Equal(t, uint8(0x42), cart.ReadCHR(0x0010))
}

func TestVerticalMirroringFlag(t *testing.T) {
	cart, err := loadFromReader(bytes.NewReader(buildINES(t, 1, 1, 0x01, 0)))
	require.NoError(t, err)

	assert.Equal(t, MirrorVertical, cart.MirrorMode())
}

func TestSRAMPersistsAcrossReadWrite(t *testing.T) {
	cart, err := loadFromReader(bytes.NewReader(buildINES(t, 1, 1, 0, 0)))
	require.NoError(t, err)

	cart.WritePRG(0x6100, 0x77)
	assert.Equal(t, uint8(0x77), cart.ReadPRG(0x6100))
}

func TestLoadMissingFileReturnsIOError(t *testing.T) {
	_, err := Load("/nonexistent/path/does-not-exist.nes")

	require.Error(t, err)
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
}
