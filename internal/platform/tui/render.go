package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/bricks"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Layout constants
const (
	boardLeft   = 1
	boardTop    = 0
	cellWidth   = 2 // Screen columns per board cell
	panelGap    = 3
	panelWidth  = 18
	previewCols = 4
	previewRows = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// pieceColors gives every piece type its own color.
var pieceColors = map[bricks.PieceType]core.Color{
	bricks.PieceZ: core.ColorRed,
	bricks.PieceS: core.ColorGreen,
	bricks.PieceI: core.ColorCyan,
	bricks.PieceT: core.ColorMagenta,
	bricks.PieceO: core.ColorYellow,
	bricks.PieceL: core.ColorOrange,
	bricks.PieceJ: core.ColorBlue,
}

const (
	brickColor = core.ColorWhite
	cellRune   = '█'
	emptyRune  = '·'
)

// Panel holds side panel values that are not part of the engine state.
type Panel struct {
	HighScore int
	LastCue   string // Most recent sound cue, empty if none
}

// ScreenSize returns the screen size needed to draw a board of the given size.
func ScreenSize(boardW, boardH int) (w, h int) {
	return boardLeft + boardW*cellWidth + 2 + panelGap + panelWidth, boardTop + boardH + 2
}

// DrawGame draws the board and side panel for st.
func DrawGame(s *core.Screen, st bricks.State, p Panel) {
	s.Clear()

	board := core.NewRect(boardLeft, boardTop, st.Width*cellWidth+2, st.Height+2)
	s.DrawBox(board, frameColor(st.Status))

	for y := 0; y < st.Height; y++ {
		for x := 0; x < st.Width; x++ {
			s.SetColored(board.X+1+x*cellWidth, board.Y+1+y, emptyRune, core.ColorGray)
		}
	}
	for _, b := range st.Bricks {
		drawCell(s, board.X+1, board.Y+1, b, brickColor)
	}
	color := pieceColors[st.Sprite.Type]
	for _, c := range st.Sprite.Location() {
		drawCell(s, board.X+1, board.Y+1, c, color)
	}

	drawPanel(s, board.Right()+panelGap, board.Y, st, p)
}

// drawCell draws one board cell relative to the origin. Cells above the board are skipped.
func drawCell(s *core.Screen, originX, originY int, p core.Point, c core.Color) {
	if p.Y < 0 {
		return
	}
	x := originX + p.X*cellWidth
	y := originY + p.Y
	for i := 0; i < cellWidth; i++ {
		s.SetColored(x+i, y, cellRune, c)
	}
}

func frameColor(status bricks.Status) core.Color {
	switch status {
	case bricks.StatusPausing:
		return core.ColorYellow
	case bricks.StatusGameOver:
		return core.ColorRed
	default:
		return core.ColorGray
	}
}

func drawPanel(s *core.Screen, x, y int, st bricks.State, p Panel) {
	s.DrawTextColored(x, y, "B R I C K S", core.ColorCyan)
	s.DrawText(x, y+2, fmt.Sprintf("Score %8d", st.Score))
	s.DrawText(x, y+3, fmt.Sprintf("Lines %8d", st.Lines))
	s.DrawText(x, y+4, fmt.Sprintf("Level %8d", st.Level()))
	s.DrawTextColored(x, y+5, fmt.Sprintf("High  %8d", max(p.HighScore, st.Score)), core.ColorYellow)

	s.DrawText(x, y+7, "Next")
	preview := core.NewRect(x, y+8, previewCols*cellWidth+2, previewRows+2)
	s.DrawBox(preview, core.ColorGray)
	next := st.Next()
	for _, c := range previewCells(next) {
		drawCell(s, preview.X+1, preview.Y+1, c, pieceColors[next.Type])
	}

	for i, line := range statusLines(st.Status) {
		s.DrawTextColored(x, y+13+i, line, frameColor(st.Status))
	}

	if st.Muted {
		s.DrawTextColored(x, y+16, "Sound off", core.ColorGray)
	} else {
		s.DrawText(x, y+16, "Sound on")
		if p.LastCue != "" {
			s.DrawTextColored(x, y+17, "♪ "+p.LastCue, core.ColorGreen)
		}
	}
}

func statusLines(status bricks.Status) []string {
	switch status {
	case bricks.StatusGreeting:
		return []string{"Press R", "to start"}
	case bricks.StatusPausing:
		return []string{"PAUSED"}
	case bricks.StatusLineClearing:
		return []string{"Clear!"}
	case bricks.StatusGameOver:
		return []string{"GAME OVER", "Press R to retry"}
	}
	return nil
}

// previewCells returns the sprite's cells normalized to a previewCols x
// previewRows box. Tall pieces are shown turned flat.
func previewCells(sp bricks.Sprite) []core.Point {
	if sp.IsEmpty() {
		return nil
	}
	minX, minY, _, h := bounds(sp.Shape)
	if h > previewRows {
		sp = sp.Rotate()
		minX, minY, _, _ = bounds(sp.Shape)
	}
	out := make([]core.Point, len(sp.Shape))
	for i, p := range sp.Shape {
		out[i] = core.Pt(p.X-minX, p.Y-minY)
	}
	return out
}

// bounds returns the top-left corner and size of the points' bounding box.
func bounds(ps []core.Point) (minX, minY, w, h int) {
	minX, minY = ps[0].X, ps[0].Y
	maxX, maxY := minX, minY
	for _, p := range ps[1:] {
		minX = core.Min(minX, p.X)
		maxX = core.Max(maxX, p.X)
		minY = core.Min(minY, p.Y)
		maxY = core.Max(maxY, p.Y)
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
