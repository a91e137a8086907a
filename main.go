package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snake/game"
)

const (
	cellSize     = 10
	boardPixels  = game.GridSize * cellSize
	pauseMessage = "Paused - press P to resume"
	blurMessage  = "Paused - window lost focus"
)

var (
	bgColor   = color.RGBA{24, 24, 28, 255}
	gridColor = color.RGBA{40, 40, 48, 255}
	headColor = color.RGBA{80, 220, 120, 255}
	bodyColor = color.RGBA{60, 180, 100, 255}
	foodColor = color.RGBA{230, 70, 70, 255}
)

// keyBindings maps ebiten keys to the DOM keydown codes the core input
// mapper understands. WASD aliases the arrows.
var keyBindings = []struct {
	key  ebiten.Key
	code int
}{
	{ebiten.KeyArrowLeft, game.KeyCodeLeft},
	{ebiten.KeyArrowUp, game.KeyCodeUp},
	{ebiten.KeyArrowRight, game.KeyCodeRight},
	{ebiten.KeyArrowDown, game.KeyCodeDown},
	{ebiten.KeyA, game.KeyCodeLeft},
	{ebiten.KeyW, game.KeyCodeUp},
	{ebiten.KeyD, game.KeyCodeRight},
	{ebiten.KeyS, game.KeyCodeDown},
}

// Game is the ebiten shell. It owns the single live model; all state
// changes go through game.Step.
type Game struct {
	model game.Model

	last        time.Time
	foodPulse   float64
	scaleFactor float64
	sounds      *sounds
}

func NewGame() *Game {
	return &Game{
		model:       game.NewModel(),
		scaleFactor: 1.0,
		sounds:      newSounds(),
	}
}

// dispatch feeds one intent through the step function, runs any command it
// produced, and feeds the command's result straight back. Commands here
// are synchronous (a random draw), so the chain settles within the frame.
func (g *Game) dispatch(in game.Intent) {
	if in == nil {
		return
	}
	m, cmd := game.Step(g.model, in)
	g.model = m
	if cmd != nil {
		g.dispatch(cmd())
	}
}

// start issues Play, swapping in a fresh model first when the last run
// ended in game over.
func (g *Game) start() {
	if g.model.Message == game.GameOverMessage {
		g.model = game.NewModel()
	}
	g.dispatch(game.Play{})
}

func (g *Game) Update() error {
	now := time.Now()
	var deltaMs float64
	if !g.last.IsZero() {
		deltaMs = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.dispatch(game.MapKeyCode(b.code))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.model.Running {
			g.start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.model.Running {
			g.dispatch(game.Pause{Reason: pauseMessage})
		} else if g.model.Message == pauseMessage {
			g.dispatch(game.Play{})
		}
	}

	// Blur pauses, focus resumes. Only a blur-caused pause auto-resumes,
	// so game over and an explicit P stay put when focus comes back.
	if g.model.Running && !ebiten.IsFocused() {
		g.dispatch(game.Pause{Reason: blurMessage})
	} else if !g.model.Running && g.model.Message == blurMessage && ebiten.IsFocused() {
		g.dispatch(game.Play{})
	}

	if g.model.Running {
		prevLen := len(g.model.Snake)
		g.dispatch(game.Tick{DeltaMs: deltaMs})
		if len(g.model.Snake) > prevLen {
			g.sounds.playEat()
		}
		if !g.model.Running && g.model.Message == game.GameOverMessage {
			g.sounds.playGameOver()
		}
	}

	g.sounds.syncLoop(g.model.Running)
	g.foodPulse += 0.05
	return nil
}

func (g *Game) drawCell(screen *ebiten.Image, p game.Point, c color.Color, scale float64) {
	size := float64(cellSize) * scale * g.scaleFactor
	offset := float64(cellSize) * (1 - scale) / 2
	x := (float64(p.X*cellSize) + offset) * g.scaleFactor
	y := (float64(p.Y*cellSize) + offset) * g.scaleFactor
	ebitenutil.DrawRect(screen, x, y, size, size, c)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	for i := 0; i <= game.GridSize; i++ {
		ebitenutil.DrawRect(screen, float64(i*cellSize)*g.scaleFactor, 0, 1*g.scaleFactor, float64(boardPixels)*g.scaleFactor, gridColor)
		ebitenutil.DrawRect(screen, 0, float64(i*cellSize)*g.scaleFactor, float64(boardPixels)*g.scaleFactor, 1*g.scaleFactor, gridColor)
	}

	if g.model.HasFood {
		pulse := 0.9 + 0.1*math.Sin(g.foodPulse)
		g.drawCell(screen, g.model.Food, foodColor, pulse)
	}

	for i, p := range g.model.Snake {
		if i == 0 {
			g.drawCell(screen, p, headColor, 1.0)
		} else {
			g.drawCell(screen, p, bodyColor, 0.9)
		}
	}

	lines := []string{
		fmt.Sprintf("Score: %d", g.model.Score()),
		"Arrows/WASD: steer, P: pause",
	}
	if g.model.Message != "" {
		lines = append(lines, g.model.Message)
	}
	padding := 10.0 * g.scaleFactor
	lineHeight := 20.0 * g.scaleFactor
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(padding), int(padding+float64(i)*lineHeight))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scaleX := float64(outsideWidth) / float64(boardPixels)
	scaleY := float64(outsideHeight) / float64(boardPixels)
	g.scaleFactor = math.Min(scaleX, scaleY)
	return int(float64(boardPixels) * g.scaleFactor), int(float64(boardPixels) * g.scaleFactor)
}

func main() {
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
