// Command monitor is an interactive terminal debugger for a running
// bus.Host: step one instruction at a time, watch registers and flags
// update, and see a short disassembly window starting at the program counter.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinbus/mos6502/bus"
	"github.com/pinbus/mos6502/cpu"
	"github.com/pinbus/mos6502/disassemble"
	"github.com/pinbus/mos6502/memory"
)

var (
	regStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	pcStyle  = lipgloss.NewStyle().Bold(true)
)

type model struct {
	host    *bus.Host
	ram     memory.Bank
	history []uint16 // recent opcode addresses, most recent last
	err     error
	halted  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			if m.halted {
				return m, nil
			}
			m.host.StepInstruction()
			m.history = append(m.history, m.host.OpAddr())
			if len(m.history) > 12 {
				m.history = m.history[len(m.history)-12:]
			}
		}
	}
	return m, nil
}

func (m model) registers() string {
	s := m.host.Snapshot()
	return fmt.Sprintf(
		"PC: $%04X\nA:  $%02X\nX:  $%02X\nY:  $%02X\nSP: $%02X\nP:  $%02X  %s",
		s.PC, s.A, s.X, s.Y, s.SP, s.P, flagString(s.P),
	)
}

func flagString(p uint8) string {
	labels := "NV-BDIZC"
	var b strings.Builder
	for i := 0; i < 8; i++ {
		if p&(0x80>>uint(i)) != 0 {
			b.WriteByte(labels[i])
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (m model) disassembly() string {
	var lines []string
	pc := m.host.Snapshot().PC
	for i := 0; i < 8; i++ {
		text, n := disassemble.Step(pc, m.ram)
		if pc == m.host.Snapshot().PC {
			lines = append(lines, pcStyle.Render("> "+text))
		} else {
			lines = append(lines, "  "+text)
		}
		pc += uint16(n)
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		regStyle.Render(m.registers()),
		regStyle.Render(m.disassembly()),
	)
	footer := "space/s: step   q: quit"
	if m.err != nil {
		footer = fmt.Sprintf("error: %v   q: quit", m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <rom-file>", os.Args[0])
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", os.Args[1], err)
	}

	ram, err := memory.New8BitRAMBank(1<<16, nil)
	if err != nil {
		log.Fatalf("New8BitRAMBank: %v", err)
	}
	for i, b := range data {
		if i >= 1<<16 {
			break
		}
		ram.Write(uint16(i), b)
	}

	c := cpu.New()
	h := bus.NewHost(c, ram)
	h.PowerOn()

	if _, err := tea.NewProgram(model{host: h, ram: ram}).Run(); err != nil {
		log.Fatalf("monitor: %v", err)
	}
}
