package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/bullethell/render"
	"github.com/milk9111/bullethell/system"
)

const (
	hudMargin     = 16.0
	bossBarHeight = 10.0
	pipSize       = 10.0
	hitFlash      = 20
)

// HUD draws the boss health bar, the player's lives and the game-over
// banner.
type HUD struct {
	face  ebtext.Face
	flash int
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

// Flash tints the screen edge briefly after the player is hit.
func (h *HUD) Flash() { h.flash = hitFlash }

func (h *HUD) Update() {
	if h.flash > 0 {
		h.flash--
	}
}

func (h *HUD) Draw(img *ebiten.Image, s render.Surface, w *system.World, autopilot bool) {
	width := float64(w.Width)

	barW := width - 2*hudMargin
	frac := w.Boss.HealthFraction()
	s.FillRect(hudMargin, hudMargin, barW, bossBarHeight, colornames.Dimgray)
	barColor := colornames.Mediumpurple
	if w.Boss.ShieldActive() {
		barColor = colornames.Lightskyblue
	}
	s.FillRect(hudMargin, hudMargin, barW*frac, bossBarHeight, barColor)

	status := w.Boss.Phase().String()
	if w.Boss.TransitionPending() {
		status += " ..."
	}
	h.text(img, status, hudMargin, hudMargin+bossBarHeight+6, colornames.White)

	for i := 0; i < w.Player.Health.Current; i++ {
		x := hudMargin + float64(i)*(pipSize+4)
		s.FillRect(x, float64(w.Height)-hudMargin-pipSize, pipSize, pipSize, colornames.Deepskyblue)
	}
	if autopilot {
		h.text(img, "AUTOPILOT", width-hudMargin-9*7, float64(w.Height)-hudMargin-13, colornames.Yellow)
	}

	if h.flash > 0 {
		a := float64(h.flash) / hitFlash * 0.4
		s.FillRect(0, 0, width, 6, render.Fade(colornames.Red, a))
		s.FillRect(0, float64(w.Height)-6, width, 6, render.Fade(colornames.Red, a))
	}

	switch w.Outcome() {
	case system.OutcomeVictory:
		h.banner(img, w, "BOSS DEFEATED - press R to fight again", colornames.Lightgreen)
	case system.OutcomeDefeat:
		h.banner(img, w, fmt.Sprintf("DEFEATED at %s - press R to retry", w.Boss.Phase()), colornames.Orangered)
	}
}

func (h *HUD) banner(img *ebiten.Image, w *system.World, msg string, clr color.Color) {
	tw, th := ebtext.Measure(msg, h.face, 0)
	h.text(img, msg, (float64(w.Width)-tw)/2, (float64(w.Height)-th)/2, clr)
}

func (h *HUD) text(img *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(img, msg, h.face, op)
}
