// Package render draws the game on a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/grid"
	"github.com/lixenwraith/snake-monster/status"
)

const (
	statusRow = 0

	// Metrics take two rows so they fit the board width
	debugRow = 1

	// Intro lines sit this many rows inside the board edge
	introInset = 3
)

// banner is the game-over text pinned to a grid cell
type banner struct {
	text   string
	anchor core.Cell
	side   core.AnchorSide
	final  string
}

// TerminalRenderer keeps a model of what is on the board and repaints it on Flush
// All methods run on the engine goroutine
type TerminalRenderer struct {
	screen  tcell.Screen
	metrics *status.Registry

	stamps     []core.Cell // body stamps, oldest first
	head       core.Cell
	headRole   core.ColorRole
	hasHead    bool
	monster    core.Cell
	hasMonster bool
	food       map[int]core.Cell
	statusLine string
	intro      bool
	introSide  core.AnchorSide
	banner     *banner
}

// NewTerminalRenderer creates a renderer on screen; a non-nil registry enables the debug line
func NewTerminalRenderer(screen tcell.Screen, metrics *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		metrics: metrics,
		stamps:  make([]core.Cell, 0, constants.MaxSnakeLength),
		food:    make(map[int]core.Cell, constants.FoodCount),
	}
}

// MinWidth returns the terminal columns the board needs
func MinWidth() int {
	return constants.BoardLeft + constants.GridSize*constants.TerminalCellWidth + 1
}

// MinHeight returns the terminal rows the board needs
func MinHeight() int {
	return constants.BoardTop + constants.GridSize + 1
}

// DrawSnakeSegment stamps a body cell, or moves the head marker for head and dead roles
func (r *TerminalRenderer) DrawSnakeSegment(pos vec2.Vector, role core.ColorRole) {
	c := grid.SnakeCellAt(pos)
	if role == core.RoleBody {
		r.stamps = append(r.stamps, c)
		return
	}
	r.head = c
	r.headRole = role
	r.hasHead = true
}

// EraseOldestSegment removes the oldest body stamp
func (r *TerminalRenderer) EraseOldestSegment() {
	if len(r.stamps) == 0 {
		return
	}
	r.stamps = r.stamps[1:]
}

func (r *TerminalRenderer) DrawMonster(pos vec2.Vector) {
	r.monster = grid.MonsterCellAt(pos)
	r.hasMonster = true
}

func (r *TerminalRenderer) DrawFoodGlyph(id int, pos vec2.Vector) {
	r.food[id] = grid.FoodCellAt(pos)
}

func (r *TerminalRenderer) EraseFoodGlyph(id int) {
	delete(r.food, id)
}

// UpdateStatusText replaces the status line; it also clears the intro, which shares the status area
func (r *TerminalRenderer) UpdateStatusText(line string) {
	if r.banner != nil {
		return
	}
	r.statusLine = line
	r.intro = false
}

func (r *TerminalRenderer) ShowIntro(side core.AnchorSide) {
	r.intro = true
	r.introSide = side
}

// ShowGameOverBanner pins the banner to the monster on a loss and to the head on a win
func (r *TerminalRenderer) ShowGameOverBanner(won bool, side core.AnchorSide) {
	b := &banner{anchor: r.monster, side: side, text: constants.BannerLose, final: constants.FinalLose}
	if won {
		b.anchor, b.text, b.final = r.head, constants.BannerWin, constants.FinalWin
	}
	if side == core.AnchorRight {
		b.text += constants.BannerPadding
	} else {
		b.text = constants.BannerPadding + b.text
	}
	r.banner = b
	r.intro = false
}

// Flush repaints the whole frame from the model
func (r *TerminalRenderer) Flush() {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	r.drawBorder(defaultStyle.Foreground(RgbBorder))
	r.drawFood(defaultStyle.Foreground(RgbFood))
	r.drawSnake(defaultStyle)
	r.drawMonster(defaultStyle.Foreground(RgbMonster))
	r.drawOverlays(defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	width, height := r.screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cellOrigin returns the terminal position of a grid cell; rows run left to right and cols bottom to top
func cellOrigin(c core.Cell) (int, int) {
	x := constants.BoardLeft + c.Row*constants.TerminalCellWidth
	y := constants.BoardTop + (constants.GridSize - 1 - c.Col)
	return x, y
}

func (r *TerminalRenderer) drawBorder(style tcell.Style) {
	left := constants.BoardLeft - 1
	right := constants.BoardLeft + constants.GridSize*constants.TerminalCellWidth
	top := constants.BoardTop - 1
	bottom := constants.BoardTop + constants.GridSize

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) drawFood(style tcell.Style) {
	for id, c := range r.food {
		x, y := cellOrigin(c)
		r.screen.SetContent(x, y, rune('1'+id), nil, style.Bold(true))
	}
}

func (r *TerminalRenderer) drawSnake(style tcell.Style) {
	for _, c := range r.stamps {
		r.drawBlock(c, '█', style.Foreground(roleColor(core.RoleBody)))
	}
	if r.hasHead {
		r.drawBlock(r.head, '█', style.Foreground(roleColor(r.headRole)))
	}
}

// drawMonster covers the four cells of the contact footprint
func (r *TerminalRenderer) drawMonster(style tcell.Style) {
	if !r.hasMonster {
		return
	}
	for _, c := range grid.ContactCells(r.monster) {
		r.drawBlock(c, '▓', style)
	}
}

func (r *TerminalRenderer) drawBlock(c core.Cell, ch rune, style tcell.Style) {
	x, y := cellOrigin(c)
	for i := 0; i < constants.TerminalCellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawOverlays(style tcell.Style) {
	statusLine := r.statusLine
	if r.banner != nil {
		statusLine = r.banner.final
	}
	r.drawText(constants.BoardLeft, statusRow, statusLine, style.Foreground(RgbStatusText))

	if r.metrics != nil {
		debugStyle := style.Foreground(RgbDebugText)
		for i, line := range r.debugLines() {
			r.drawText(constants.BoardLeft, debugRow+i, line, debugStyle)
		}
	}

	if r.intro {
		y := constants.BoardTop + introInset
		if r.introSide == core.AnchorBottom {
			y = constants.BoardTop + constants.GridSize - 2 - introInset
		}
		introStyle := style.Foreground(RgbIntroText)
		r.drawCentered(y, constants.IntroWelcome, introStyle)
		r.drawCentered(y+1, constants.IntroPrompt, introStyle)
	}

	if b := r.banner; b != nil {
		x, y := cellOrigin(b.anchor)
		if b.side == core.AnchorRight {
			x -= len(b.text)
		}
		r.drawText(x, y, b.text, style.Foreground(RgbBanner).Bold(true))
	}
}

func (r *TerminalRenderer) debugLines() [2]string {
	ints := r.metrics.Ints
	return [2]string{
		fmt.Sprintf(constants.DebugMotionFormat,
			ints.Get("engine.ticks").Load(),
			ints.Get("snake.moves").Load(),
			ints.Get("monster.moves").Load(),
			ints.Get("snake.blocked").Load(),
			ints.Get("monster.blocked").Load(),
		),
		fmt.Sprintf(constants.DebugFoodFormat,
			ints.Get("food.eaten").Load(),
			ints.Get("food.toggles").Load(),
			ints.Get("monster.contacts").Load(),
		),
	}
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	boardWidth := constants.GridSize * constants.TerminalCellWidth
	x := constants.BoardLeft + (boardWidth-len(text))/2
	r.drawText(x, y, text, style)
}

// drawText writes ASCII text, clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for i, ch := range text {
		if px := x + i; px >= 0 && px < width {
			r.screen.SetContent(px, y, ch, nil, style)
		}
	}
}
