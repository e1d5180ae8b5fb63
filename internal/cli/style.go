package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors are the usual Western colour scheme.
var stickerColors = map[nxcube.Face]lipgloss.Color{
	nxcube.FaceU: lipgloss.Color("15"),  // white
	nxcube.FaceD: lipgloss.Color("226"), // yellow
	nxcube.FaceF: lipgloss.Color("34"),  // green
	nxcube.FaceB: lipgloss.Color("27"),  // blue
	nxcube.FaceR: lipgloss.Color("196"), // red
	nxcube.FaceL: lipgloss.Color("208"), // orange
}

var stickerStyles = func() map[nxcube.Face]lipgloss.Style {
	styles := make(map[nxcube.Face]lipgloss.Style, len(stickerColors))
	for face, color := range stickerColors {
		styles[face] = lipgloss.NewStyle().
			Background(color).
			Foreground(lipgloss.Color("0"))
	}
	return styles
}()

// sticker renders one facelet three cells wide.
func sticker(label nxcube.Face) string {
	if label == "" {
		return " ? "
	}
	text := " " + string(label) + " "
	if style, ok := stickerStyles[label]; ok {
		return style.Render(text)
	}
	return text
}

func faceBlock(grid [][]nxcube.Face) string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, label := range row {
			b.WriteString(sticker(label))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}

// renderNet lays the six faces out as an unfolded cross:
//
//	  U
//	L F R B
//	  D
func renderNet(net map[nxcube.Face][][]nxcube.Face) string {
	blocks := make(map[nxcube.Face]string, len(net))
	for face, grid := range net {
		blocks[face] = faceBlock(grid)
	}

	width := lipgloss.Width(blocks[nxcube.FaceF])
	offset := lipgloss.NewStyle().MarginLeft(width)

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		blocks[nxcube.FaceL],
		blocks[nxcube.FaceF],
		blocks[nxcube.FaceR],
		blocks[nxcube.FaceB],
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		offset.Render(blocks[nxcube.FaceU]),
		middle,
		offset.Render(blocks[nxcube.FaceD]),
	)
}
