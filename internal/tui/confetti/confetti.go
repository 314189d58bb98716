// Package confetti simulates a one-shot confetti burst for the terminal.
package confetti

import (
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// FPS is the simulation and redraw rate.
const FPS = 30

const (
	gravity = 12.0
	wind    = 0.6
)

var glyphs = []string{"▪", "•", "◆", "▴", "*", "~"}

// Rand is the random source; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type particle struct {
	proj  *harmonica.Projectile
	glyph string
	style lipgloss.Style
}

// Field is a burst of particles falling through a width x height area.
// Particles are never recycled.
type Field struct {
	width     int
	height    int
	particles []particle
}

// New spawns count particles above the top edge of a width x height area.
func New(width, height, count int, r Rand) *Field {
	f := &Field{width: max(width, 1), height: max(height, 1)}
	accel := harmonica.Vector{X: wind, Y: gravity}

	for i := 0; i < count; i++ {
		pos := harmonica.Point{
			X: r.Float64() * float64(f.width),
			Y: -r.Float64() * float64(f.height),
		}
		vel := harmonica.Vector{
			X: (r.Float64() - 0.5) * 8,
			Y: r.Float64() * 4,
		}
		color := colorful.Hsv(r.Float64()*360, 0.75, 0.95)
		f.particles = append(f.particles, particle{
			proj:  harmonica.NewProjectile(harmonica.FPS(FPS), pos, vel, accel),
			glyph: glyphs[r.IntN(len(glyphs))],
			style: lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())),
		})
	}
	return f
}

// Count returns the number of particles still inside or above the area.
func (f *Field) Count() int {
	n := 0
	for _, p := range f.particles {
		if p.proj.Position().Y < float64(f.height) {
			n++
		}
	}
	return n
}

// Done reports whether every particle has fallen out of the area.
func (f *Field) Done() bool {
	return f.Count() == 0
}

// Step advances the simulation by one frame.
func (f *Field) Step() {
	for _, p := range f.particles {
		if p.proj.Position().Y < float64(f.height) {
			p.proj.Update()
		}
	}
}

// Overlay draws the particles onto blank rows of base, leaving rows with
// content untouched. base is padded or trimmed to the field height.
func (f *Field) Overlay(base string) string {
	lines := strings.Split(base, "\n")
	for len(lines) < f.height {
		lines = append(lines, "")
	}
	lines = lines[:f.height]

	grid := make([][]string, f.height)
	for _, p := range f.particles {
		pos := p.proj.Position()
		x, y := int(pos.X), int(pos.Y)
		if y < 0 || y >= f.height || x < 0 || x >= f.width {
			continue
		}
		if strings.TrimSpace(ansi.Strip(lines[y])) != "" {
			continue
		}
		if grid[y] == nil {
			grid[y] = make([]string, f.width)
		}
		grid[y][x] = p.style.Render(p.glyph)
	}

	for y, row := range grid {
		if row == nil {
			continue
		}
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cell)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
