package debugger

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/internal/cpu"
)

type flatMemory struct {
	data [0x10000]uint8
}

func (m *flatMemory) Read(address uint16) uint8         { return m.data[address] }
func (m *flatMemory) Write(address uint16, value uint8) { m.data[address] = value }

func newTestModel() (model, *cpu.CPU) {
	mem := &flatMemory{}
	c := cpu.New(mem)
	mem.data[0xFFFC] = 0x00
	mem.data[0xFFFD] = 0xC0
	c.Reset()
	mem.data[0xC000] = 0xA9 // LDA #$42
	mem.data[0xC001] = 0x42
	return model{cpu: c, mem: mem}, c
}

func TestStepKeyExecutesOneInstruction(t *testing.T) {
	m, c := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	require.Nil(t, cmd)
	assert.Equal(t, uint16(0xC002), c.PC)
	assert.Equal(t, uint8(0x42), c.A)
	assert.Len(t, next.(model).history, 1)
}

func TestQuitKeyReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
}

func TestIllegalOpcodeQuitsWithError(t *testing.T) {
	m, c := newTestModel()
	m.mem.Write(0xC000, 0x02) // not a legal opcode

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	require.NotNil(t, cmd)
	var illegal *cpu.IllegalOpcodeError
	require.ErrorAs(t, next.(model).err, &illegal)
	assert.Equal(t, uint16(0xC000), c.PC)
}

func TestViewShowsRegistersAndNextInstruction(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()

	assert.True(t, strings.Contains(view, "PC: C000"))
	assert.True(t, strings.Contains(view, "LDA #$42"))
}
