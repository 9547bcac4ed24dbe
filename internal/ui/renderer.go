package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/game"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/world"
)

// Layout: top bar on row 0, map below it, sidebar right of the map, log
// under the map.
const (
	mapTop       = 1
	sidebarGap   = 2
	sidebarWidth = 34
	logLines     = 6
	itemsPerPage = 9
)

const (
	glyphPlayer = '@'
	glyphItem   = '♦'
	glyphShrine = '†'
	glyphStairs = '▼'
)

var titleArt = []string{
	"╔═══════════════════════════════════════════════╗",
	"║                                               ║",
	"║            ⚔  THE GREEN CHAPEL  ⚔             ║",
	"║                                               ║",
	"║       A Roguelike of Honour and Peril         ║",
	"║                                               ║",
	"╠═══════════════════════════════════════════════╣",
	"║                                               ║",
	"║  A year ago, the Green Knight came to court.  ║",
	"║  You took his challenge. You took his head.   ║",
	"║  He picked it up and left.                    ║",
	"║                                               ║",
	"║  Now the year turns. You must find the        ║",
	"║  Green Chapel and receive the return blow.    ║",
	"║                                               ║",
	"║  If you are brave. If you are honest.         ║",
	"║                                               ║",
	"╠═══════════════════════════════════════════════╣",
	"║                                               ║",
	"║           [ENTER] Begin your journey          ║",
	"║                                               ║",
	"║    Arrow keys / WASD / hjkl to move           ║",
	"║    I = Inventory   1-9 = Use item  [ ] = Page ║",
	"║    Space = Wait    Q = Quit                   ║",
	"║                                               ║",
	"╚═══════════════════════════════════════════════╝",
}

var deathArt = []string{
	"╔═══════════════════════════════════════════════╗",
	"║                                               ║",
	"║              YOU HAVE FALLEN                  ║",
	"║                                               ║",
	"╚═══════════════════════════════════════════════╝",
}

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleItem   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleShrine = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStairs = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLocked = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame for s. inventory opens the item pane at page.
func (r *Renderer) Render(s game.Snapshot, inventory bool, page int) {
	r.screen.Begin()
	defer r.screen.End()

	switch s.Mode {
	case game.ModeTitle:
		r.renderLines(titleArt, 0, styleTitle)
	case game.ModeDead:
		r.renderDead(s)
	case game.ModeVictory:
		r.renderVictory(s)
	default:
		r.renderPlaying(s, inventory, page)
	}
}

func (r *Renderer) renderLines(lines []string, y int, style tcell.Style) int {
	for _, line := range lines {
		r.screen.DrawText(0, y, line, style)
		y++
	}
	return y
}

func (r *Renderer) renderPlaying(s game.Snapshot, inventory bool, page int) {
	width := s.Width + sidebarGap + sidebarWidth
	height := mapTop + s.Height + 1 + logLines
	if !r.screen.Fits(width, height) {
		r.screen.DrawText(0, 0, fmt.Sprintf("Terminal too small: need %dx%d.", width, height), styleText)
		return
	}

	r.screen.DrawText(0, 0, fmt.Sprintf("%s   Depth: %d/%d   Turn: %d",
		s.Biome.Name, s.Depth, world.MaxDepth, s.Turns), styleTitle)

	r.renderMap(s)

	x := s.Width + sidebarGap
	y := r.renderStats(s, x, mapTop)
	y++

	switch {
	case inventory:
		r.renderInventory(s, x, y, page)
	case s.Combat != nil:
		r.renderCombat(s, x, y)
	case s.Encounter != nil:
		r.renderEncounter(s, x, y)
	}

	r.renderLog(s.Log, 0, mapTop+s.Height+1, s.Width+sidebarGap+sidebarWidth)
}

// renderMap draws revealed cells. Precedence: player, living enemy, ground
// item, untriggered shrine, stairs, then terrain.
func (r *Renderer) renderMap(s game.Snapshot) {
	wall := firstRune(s.Biome.WallGlyph, rune(world.TileWall))
	floor := firstRune(s.Biome.FloorGlyph, rune(world.TileFloor))

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if !s.Fog[y][x] {
				continue
			}
			var ch rune
			var style tcell.Style
			switch t := s.Tiles[y][x]; t {
			case world.TileWall:
				ch, style = wall, styleWall
			case world.TileFloor, world.TileEnemy, world.TileItem, world.TileShrine, world.TileStairs:
				ch, style = floor, styleFloor
			default:
				ch, style = t.Rune(), styleFloor
			}
			r.screen.SetContent(x, mapTop+y, ch, style)
		}
	}

	visible := func(x, y int) bool {
		return y >= 0 && y < len(s.Fog) && x >= 0 && x < len(s.Fog[y]) && s.Fog[y][x]
	}
	if st := s.Stairs; st != nil && visible(st.X, st.Y) {
		r.screen.SetContent(st.X, mapTop+st.Y, glyphStairs, styleStairs)
	}
	for _, enc := range s.Encounters {
		if visible(enc.X, enc.Y) {
			r.screen.SetContent(enc.X, mapTop+enc.Y, glyphShrine, styleShrine)
		}
	}
	for _, it := range s.Items {
		if visible(it.X, it.Y) {
			r.screen.SetContent(it.X, mapTop+it.Y, glyphItem, styleItem)
		}
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if visible(e.X, e.Y) {
			r.screen.SetContent(e.X, mapTop+e.Y, e.Symbol, enemyStyle(e))
		}
	}
	if p := s.Player; p != nil {
		r.screen.SetContent(p.X, mapTop+p.Y, glyphPlayer, stylePlayer)
	}
}

func enemyStyle(e *entity.Enemy) tcell.Style {
	style := tcell.StyleDefault.Foreground(colorOr(e.Color, tcell.ColorRed))
	if e.Boss {
		style = style.Bold(true)
	}
	return style
}

func (r *Renderer) renderStats(s game.Snapshot, x, y int) int {
	p := s.Player
	if p == nil {
		return y
	}
	hp := tcell.StyleDefault.Foreground(hpColor(p.HP, p.MaxHP))
	r.screen.DrawText(x, y, fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP), hp)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("ATK: %d%s  DEF: %d%s  LVL: %d",
		p.Attack, bonus(p.WeaponBonus()), p.Defense, bonus(p.ArmorBonus()), p.Level), styleText)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("XP: %d/%d  Karma: %d", p.XP, p.XPToLevel, p.Karma), styleText)
	y++
	r.screen.DrawText(x, y, "Weapon: "+slotName(p.Weapon, "Fists"), styleDim)
	y++
	r.screen.DrawText(x, y, "Armor:  "+slotName(p.Armor, "None"), styleDim)
	y++
	r.screen.DrawText(x, y, "Charm:  "+slotName(p.Charm, "None"), styleDim)
	y++
	if p.HasGreenSash {
		r.screen.DrawText(x, y, "You carry the green sash.", styleShrine)
		y++
	}
	return y
}

func bonus(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("+%d", n)
}

func slotName(it *entity.Item, empty string) string {
	if it == nil {
		return empty
	}
	return it.Name
}

func (r *Renderer) renderCombat(s game.Snapshot, x, y int) {
	c := s.Combat
	r.screen.DrawText(x, y, "⚔ COMBAT ⚔", styleTitle)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("%s  HP: %d/%d", c.Enemy.Name, c.Enemy.HP, c.Enemy.MaxHP), enemyStyle(&c.Enemy))
	y++
	if c.Defending {
		r.screen.DrawText(x, y, "(bracing)", styleDim)
	}
	y++
	for _, line := range c.Log {
		for _, w := range wrap(line, sidebarWidth) {
			r.screen.DrawText(x, y, w, styleText)
			y++
		}
	}
	y++
	r.screen.DrawText(x, y, "[A] Attack [D] Defend [F] Flee", styleTitle)
	y++
	r.screen.DrawText(x, y, "[I] Items", styleDim)
}

func (r *Renderer) renderEncounter(s game.Snapshot, x, y int) {
	enc := s.Encounter
	r.screen.DrawText(x, y, "† "+enc.Title, styleShrine)
	y += 2
	for _, para := range strings.Split(enc.Text, "\n") {
		for _, w := range wrap(para, sidebarWidth) {
			r.screen.DrawText(x, y, w, styleText)
			y++
		}
	}
	y++
	for i, ch := range enc.Choices {
		style := styleTitle
		label := fmt.Sprintf("[%d] %s", i+1, ch.Text)
		if !ch.Available {
			style = styleLocked
			label += " (needs " + ch.Requires + ")"
		}
		for _, w := range wrap(label, sidebarWidth) {
			r.screen.DrawText(x, y, w, style)
			y++
		}
	}
}

func (r *Renderer) renderInventory(s game.Snapshot, x, y, page int) {
	r.screen.DrawText(x, y, "Inventory [ESC to close]", styleTitle)
	y++
	if s.Player == nil || len(s.Player.Inventory) == 0 {
		r.screen.DrawText(x, y, "Your pack is empty.", styleDim)
		return
	}

	items := s.Player.Inventory
	pages := pageCount(len(items))
	page = min(max(page, 0), pages-1)
	start := page * itemsPerPage
	end := min(start+itemsPerPage, len(items))

	for i, it := range items[start:end] {
		style := styleText
		if it.Type == gamedata.ItemMisc {
			style = styleDim
		}
		line := fmt.Sprintf("[%d] %s %s", i+1, itemIcon(it.Type), it.Name)
		if it.IsEquippable() {
			line += " (equip)"
		}
		r.screen.DrawText(x, y, line, style)
		y++
	}
	if pages > 1 {
		r.screen.DrawText(x, y, fmt.Sprintf("Page %d/%d  [ ] to turn", page+1, pages), styleDim)
	}
}

// pageCount returns how many inventory pages n items fill. An empty pack
// still has one page.
func pageCount(n int) int {
	return max(1, (n+itemsPerPage-1)/itemsPerPage)
}

func itemIcon(t gamedata.ItemType) string {
	switch t {
	case gamedata.ItemConsumable:
		return "+"
	case gamedata.ItemWeapon:
		return "⚔"
	case gamedata.ItemArmor:
		return "◘"
	case gamedata.ItemCharm:
		return "✧"
	default:
		return "•"
	}
}

// renderLog draws the newest log lines, oldest first.
func (r *Renderer) renderLog(log []string, x, y, width int) {
	start := max(0, len(log)-logLines)
	for i, line := range log[start:] {
		style := styleDim
		if i == len(log[start:])-1 {
			style = styleText
		}
		if rs := []rune(line); len(rs) > width {
			line = string(rs[:width])
		}
		r.screen.DrawText(x, y+i, line, style)
	}
}

func (r *Renderer) renderDead(s game.Snapshot) {
	y := r.renderLines(deathArt, 0, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	y++
	for _, w := range wrap(s.DeathMessage, len(deathArt[0])) {
		r.screen.DrawText(0, y, w, styleText)
		y++
	}
	y++
	level := 0
	if s.Player != nil {
		level = s.Player.Level
	}
	r.screen.DrawText(0, y, fmt.Sprintf("Depth reached: %d/%d", s.Depth, world.MaxDepth), styleDim)
	r.screen.DrawText(0, y+1, fmt.Sprintf("Turns survived: %d", s.Turns), styleDim)
	r.screen.DrawText(0, y+2, fmt.Sprintf("Level: %d", level), styleDim)
	r.screen.DrawText(0, y+4, "[ENTER] Try again   [Q] Quit", styleTitle)
}

func (r *Renderer) renderVictory(s game.Snapshot) {
	y := r.renderLines(strings.Split(s.VictoryText, "\n"), 0, styleShrine)
	y++
	if p := s.Player; p != nil {
		r.screen.DrawText(0, y, fmt.Sprintf("Turns: %d | Level: %d | Karma: %d", s.Turns, p.Level, p.Karma), styleDim)
	}
	r.screen.DrawText(0, y+2, "[ENTER] Journey again   [Q] Quit", styleTitle)
}

// wrap breaks text into lines no wider than width, splitting on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
