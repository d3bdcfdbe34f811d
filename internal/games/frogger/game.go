// Package frogger implements the lane-crossing game: guide the avatar across
// road lanes of cars and river lanes of logs to the goal row.
package frogger

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/engine"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "frogger"

// Game hosts the lane-crossing rules in an engine controller.
type Game struct {
	*engine.Controller[Snapshot]
	rules *Rules
}

// New creates an idle game.
func New(cfg config.FroggerConfig, seed int64) *Game {
	r := NewRules(cfg)
	return &Game{
		Controller: engine.NewController[Snapshot](r, seed),
		rules:      r,
	}
}

func init() {
	registry.Register(ID, "Frogger", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFrogger(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if opts.Preset != "" {
			config.ApplyFroggerPreset(&cfg, opts.Preset)
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
	return "Frogger"
}

// Reset returns to idle with fresh lanes. The rules instance is kept so the
// session high score carries over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Reload(g.rules, cfg.Seed)
}

var terrainStyle = map[Terrain]struct {
	r rune
	c core.Color
}{
	TerrainSafe:  {'░', core.ColorBrown},
	TerrainRoad:  {'·', core.ColorGray},
	TerrainWater: {'~', core.ColorBlue},
	TerrainGoal:  {'▓', core.ColorGreen},
}

// Render draws the grid, the HUD and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	frame := g.Snapshot()
	s := frame.State

	cellW := 3
	if dst.Width() < s.Cols*cellW+2 {
		cellW = 1
	}
	gridW := s.Cols*cellW + 2
	gridH := s.Rows + 2
	if dst.Width() < gridW || dst.Height() < gridH+1 {
		dst.DrawPanel(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	left := (dst.Width() - gridW) / 2
	top := 1

	hud := fmt.Sprintf("Frogger  Score: %d  Lives: %s  High: %d", s.Score, strings.Repeat("♥", s.Lives), s.High)
	dst.DrawText(1, 0, hud)
	if e := s.Event.String(); e != "" {
		dst.DrawTextColored(dst.Width()-len(e)-1, 0, e, core.ColorBrightYellow)
	}
	dst.DrawBox(core.NewRect(left, top, gridW, gridH), core.ColorGray)

	fx, fy := s.FrogCell()
	for row := range s.Rows {
		lane, hasLane := s.Lane(row)
		for col := range s.Cols {
			st := terrainStyle[s.Terrain[row]]
			r, c := st.r, st.c
			if hasLane && s.ObstacleAt(col, row) {
				if lane.Terrain == TerrainWater {
					r, c = '=', core.ColorBrown
				} else {
					r, c = '█', core.ColorRed
				}
			}
			if col == fx && row == fy {
				r, c = '@', core.ColorBrightGreen
			}
			px := left + 1 + col*cellW
			for i := range cellW {
				dst.SetColored(px+i, top+1+row, r, c)
			}
		}
	}

	if y := top + gridH; y < dst.Height() {
		dst.DrawTextCentered(y, "Arrows move  Esc leaves", core.ColorGray)
	}

	switch frame.Phase {
	case core.PhaseIdle:
		dst.DrawPanel(core.ColorCyan, "Frogger", "Press Enter to start")
	case core.PhaseGameOver:
		dst.DrawPanel(core.ColorRed, "Game Over", fmt.Sprintf("Score: %d  High: %d", s.Score, s.High), "Press R to restart")
	}
}
