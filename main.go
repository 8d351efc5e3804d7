package main

import (
	"errors"
	"log"

	"github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/fonts"
	"github.com/automoto/particle-sling/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, config.HUD.FontSize); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, config.HUD.FontSize-1); err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewSandboxScene(),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.Window.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
