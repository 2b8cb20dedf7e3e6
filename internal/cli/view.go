package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_solver"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	disabledButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("243")).
				Background(lipgloss.Color("236"))
)

// tokenColors maps facelet tokens to sticker colors. '?' marks a sticker on
// a layer that is between positions.
var tokenColors = map[byte]lipgloss.Color{
	'U': lipgloss.Color("255"),
	'R': lipgloss.Color("196"),
	'F': lipgloss.Color("21"),
	'D': lipgloss.Color("226"),
	'L': lipgloss.Color("208"),
	'B': lipgloss.Color("34"),
}

const cellWidth = 2

func renderCell(tok byte) string {
	c, ok := tokenColors[tok]
	if !ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.Repeat("·", cellWidth))
	}
	return lipgloss.NewStyle().Background(c).Render(strings.Repeat(" ", cellWidth))
}

func renderFace(face string) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			b.WriteString(renderCell(face[r*3+c]))
		}
		rows[r] = b.String()
	}
	return lipgloss.NewStyle().MarginRight(1).Render(strings.Join(rows, "\n"))
}

// renderNet draws the facelet string as an unfolded net:
//
//	  U
//	L F R B
//	  D
func renderNet(facelets string) string {
	faces := make(map[byte]string, 6)
	for i, tok := range []byte("URFDLB") {
		faces[tok] = facelets[i*9 : (i+1)*9]
	}

	pad := lipgloss.NewStyle().Width(3*cellWidth + 1).Render("")
	top := lipgloss.JoinHorizontal(lipgloss.Top, pad, renderFace(faces['U']))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(faces['L']), renderFace(faces['F']), renderFace(faces['R']), renderFace(faces['B']))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pad, renderFace(faces['D']))

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

func (m *playModel) renderButtons() string {
	style := buttonStyle
	if !m.ctrl.Enabled() || m.cube.IsAnimating() {
		style = disabledButtonStyle
	}

	buttons := m.ctrl.Buttons()
	cells := make([]string, len(buttons))
	for i, name := range buttons {
		cells[i] = style.Render(name)
	}

	// Two rows keep the controls inside narrow terminals.
	if m.width > 0 && m.width < 60 {
		half := len(cells) / 2
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cells[:half]...),
			lipgloss.JoinHorizontal(lipgloss.Top, cells[half:]...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Solver"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube.FaceletString()))
	b.WriteString("\n\n")

	if frame, ok := m.cube.Animation(); ok {
		deg := frame.Angle * 180 / math.Pi
		b.WriteString(fmt.Sprintf("Turning %s %+6.1f° (%3.0f%%)", frame.Move.Name, deg, frame.Progress*100))
		if n := len(m.cube.Pending()); n > 0 {
			b.WriteString(statusStyle.Render(fmt.Sprintf("  %d queued", n)))
		}
	} else if m.cube.IsSolved() {
		b.WriteString(moveStyle.Render("Solved"))
	} else {
		b.WriteString(statusStyle.Render("Idle"))
	}
	b.WriteString("\n")

	if scramble := m.ctrl.LastScramble(); len(scramble) > 0 {
		b.WriteString(statusStyle.Render("Scramble: " + strings.Join(scramble, " ")))
		b.WriteString("\n")
	}

	history := m.ctrl.History()
	b.WriteString("Moves: ")
	if len(history) > 20 {
		b.WriteString("... ")
		history = history[len(history)-20:]
	}
	b.WriteString(moveStyle.Render(strings.Join(history, " ")))
	b.WriteString("\n")

	if status := m.ctrl.Status(); status != "" {
		if strings.HasPrefix(status, "Error") {
			b.WriteString(errorStyle.Render(status))
		} else {
			b.WriteString(status)
		}
		b.WriteString("\n")
	}

	if m.bleStatus != "" {
		b.WriteString(statusStyle.Render(m.bleStatus))
		if m.client != nil {
			if level := m.client.Battery(); level >= 0 {
				b.WriteString(statusStyle.Render(fmt.Sprintf(" (battery %d%%)", level)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("udlrfb=turn  UDLRFB=reverse  s=scramble  enter=solve  q=quit"))
	b.WriteString("\n")

	return b.String()
}
