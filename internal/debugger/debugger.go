// Package debugger is an interactive terminal single-stepper: one CPU
// instruction per keypress, with the trace line, register file, and a
// window of memory around the stack on screen.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nescore/internal/cpu"
	"nescore/internal/trace"
)

const historyLines = 16

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

type model struct {
	cpu *cpu.CPU
	mem cpu.Memory

	history []string
	err     error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j", "enter":
			m.history = append(m.history, trace.Line(m.cpu, m.mem))
			if len(m.history) > historyLines {
				m.history = m.history[len(m.history)-historyLines:]
			}
			if _, err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as one hex line, highlighting the
// cell PC points at when it falls inside the row.
func (m model) renderRow(start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		cell := fmt.Sprintf("%02X", m.mem.Read(start+i))
		if start+i == m.cpu.PC {
			cell = currentStyle.Render(cell)
		}
		b.WriteString(cell)
		b.WriteString(" ")
	}
	return b.String()
}

func (m model) memoryView() string {
	rows := []string{titleStyle.Render("stack"), m.renderRow(0x0100 | uint16(m.cpu.SP)&0xF0)}

	rows = append(rows, "", titleStyle.Render("code"))
	base := m.cpu.PC &^ 0x000F
	for i := uint16(0); i < 4; i++ {
		rows = append(rows, m.renderRow(base+i*16))
	}
	return strings.Join(rows, "\n")
}

func (m model) statusView() string {
	p := m.cpu.StatusByte()
	flags := ""
	for i := 7; i >= 0; i-- {
		if p&(1<<uint(i)) != 0 {
			flags += "1 "
		} else {
			flags += ". "
		}
	}
	return fmt.Sprintf(`
PC: %04X
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
N V U B D I Z C
%sCYC: %d
`, m.cpu.PC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, flags, m.cpu.Cycles())
}

func (m model) View() string {
	var history string
	if len(m.history) == 0 {
		history = dimStyle.Render("space/j to step, q to quit")
	} else {
		history = strings.Join(m.history, "\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryView(),
			"   ",
			m.statusView(),
		),
		"",
		history,
		dimStyle.Render("next: "+trace.Line(m.cpu, m.mem)),
	)
}

// Run starts the interactive stepper over an already-reset CPU and blocks
// until the user quits or the CPU hits a fatal decode error, which is
// returned after the terminal is restored.
func Run(c *cpu.CPU, mem cpu.Memory) error {
	final, err := tea.NewProgram(model{cpu: c, mem: mem}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
