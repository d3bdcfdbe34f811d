// Package blocks implements the falling-block puzzle: tetrominoes drop into
// a fixed well, full rows clear, and the game ends when a new piece cannot
// spawn.
package blocks

import (
	"fmt"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/engine"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "blocks"

// Game hosts the falling-block rules in an engine controller.
type Game struct {
	*engine.Controller[Snapshot]
	cfg config.BlocksConfig
}

// New creates an idle game.
func New(cfg config.BlocksConfig, seed int64) *Game {
	return &Game{
		Controller: engine.NewController[Snapshot](NewRules(cfg), seed),
		cfg:        cfg,
	}
}

func init() {
	registry.Register(ID, "Blocks", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBlocks(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if opts.Preset != "" {
			config.ApplyBlocksPreset(&cfg, opts.Preset)
		}
		return New(cfg, opts.Seed), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset rebuilds the rules with a new seed and returns to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Reload(NewRules(g.cfg), cfg.Seed)
}

// Render draws the well, the side panel and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	frame := g.Snapshot()
	s := frame.State

	// Each cell is two columns wide when the terminal allows it.
	cellW := 2
	panelW := 14
	if dst.Width() < s.Width*2+2+panelW {
		cellW = 1
	}
	boardW := s.Width*cellW + 2
	boardH := s.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+1 {
		dst.DrawPanel(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	left := (dst.Width() - boardW - panelW) / 2
	if left < 0 {
		left = 0
	}
	top := 1

	dst.DrawText(1, 0, fmt.Sprintf("Blocks  Score: %d  Lines: %d  Level: %d", s.Score, s.Lines, s.Level))
	dst.DrawBox(core.NewRect(left, top, boardW, boardH), core.ColorGray)

	for y := range s.Height {
		for x := range s.Width {
			r, c := ' ', core.ColorDefault
			if k := s.KindAt(x, y); k != KindEmpty {
				r, c = '█', k.Color()
			} else if s.GhostAt(x, y) {
				r, c = '░', core.ColorGray
			}
			px := left + 1 + x*cellW
			for i := range cellW {
				dst.SetColored(px+i, top+1+y, r, c)
			}
		}
	}

	g.renderPanel(dst, left+boardW+2, top, s)

	switch frame.Phase {
	case core.PhaseIdle:
		dst.DrawPanel(core.ColorCyan, "Blocks", "Press Enter to start")
	case core.PhasePaused:
		dst.DrawPanel(core.ColorYellow, "Paused", "Press P to continue")
	case core.PhaseGameOver:
		dst.DrawPanel(core.ColorRed, "Game Over", fmt.Sprintf("Score: %d", s.Score), "Press R to restart")
	}
}

// renderPanel draws the next-piece preview and counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int, s Snapshot) {
	dst.DrawText(x, y+1, "Next")
	next := ShapeOf(s.Next)
	for dy, row := range next {
		for dx, filled := range row {
			if filled {
				dst.SetColored(x+dx*2, y+3+dy, '█', s.Next.Color())
				dst.SetColored(x+dx*2+1, y+3+dy, '█', s.Next.Color())
			}
		}
	}

	dst.DrawText(x, y+7, fmt.Sprintf("Score %d", s.Score))
	dst.DrawText(x, y+8, fmt.Sprintf("Lines %d", s.Lines))
	dst.DrawText(x, y+9, fmt.Sprintf("Level %d", s.Level))
	if s.LastClear > 0 {
		dst.DrawTextColored(x, y+11, fmt.Sprintf("+%d lines", s.LastClear), core.ColorBrightGreen)
	}
}
