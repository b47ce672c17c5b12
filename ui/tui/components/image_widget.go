package components

import (
	"fmt"
	"image"
	"image/color"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel as foreground and the bottom one as
// background, so each cell holds two image rows.
const halfBlock = '▀'

const minImageCols = 4

// ImageWidget draws a bitmap onto a character canvas.
type ImageWidget struct {
	Canvas   canvas.Model
	img      image.Image
	MaxWidth int
	Width    int
	Height   int
}

func NewImageWidget(img image.Image, maxWidth int) *ImageWidget {
	w := &ImageWidget{img: img, MaxWidth: maxWidth}
	w.Resize(maxWidth)
	return w
}

func (w *ImageWidget) Init() tea.Cmd {
	return nil
}

func (w *ImageWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		w.Resize(msg.Width)
	}
	return w, nil
}

// Resize fits the image into width cells, keeping its aspect ratio.
func (w *ImageWidget) Resize(width int) {
	cols, rows := w.fit(width)
	w.Width = cols
	w.Height = rows
	if cols == 0 {
		return
	}

	w.Canvas = canvas.New(cols, rows)
	b := w.img.Bounds()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			srcX := b.Min.X + x*b.Dx()/cols
			top := b.Min.Y + (2*y)*b.Dy()/(2*rows)
			bottom := b.Min.Y + (2*y+1)*b.Dy()/(2*rows)

			style := lipgloss.NewStyle().
				Foreground(hex(w.img.At(srcX, top))).
				Background(hex(w.img.At(srcX, bottom)))
			w.Canvas.SetCell(canvas.Point{X: x, Y: y}, canvas.Cell{Rune: halfBlock, Style: style})
		}
	}
}

func (w *ImageWidget) fit(width int) (int, int) {
	if w.img == nil {
		return 0, 0
	}
	b := w.img.Bounds()
	cols := b.Dx()
	if w.MaxWidth > 0 && cols > w.MaxWidth {
		cols = w.MaxWidth
	}
	if width < cols {
		cols = width
	}
	if cols < minImageCols {
		return 0, 0
	}
	rows := (b.Dy()*cols/b.Dx() + 1) / 2
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (w *ImageWidget) View() string {
	if w.Width == 0 {
		return ""
	}
	return w.Canvas.View()
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
