package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI holds the ebitenui control panel for the viewer: zoom buttons,
// reset, and save.
type ControlsUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnZoomIn  func()
	OnZoomOut func()
	OnReset   func()
	OnSave    func()

	normalFace text.Face
}

// NewControlsUI creates the control panel anchored to the top-right corner.
func NewControlsUI(onZoomIn, onZoomOut, onReset, onSave func()) *ControlsUI {
	cui := &ControlsUI{
		OnZoomIn:  onZoomIn,
		OnZoomOut: onZoomOut,
		OnReset:   onReset,
		OnSave:    onSave,
	}
	cui.loadFonts()
	cui.buildUI()
	return cui
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	cui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (cui *ControlsUI) buildUI() {
	// Transparent root so the world stays visible behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 22, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	buttons := []struct {
		label   string
		handler *func()
	}{
		{"Zoom In", &cui.OnZoomIn},
		{"Zoom Out", &cui.OnZoomOut},
		{"Reset", &cui.OnReset},
		{"Save View", &cui.OnSave},
	}

	for _, b := range buttons {
		handler := b.handler
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 24)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			}),
			widget.ButtonOpts.Text(b.label, &cui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{200, 220, 255, 255},
				Pressed: color.RGBA{150, 170, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if *handler != nil {
					(*handler)()
				}
			}),
		)
		panel.AddChild(btn)
	}

	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{Container: rootContainer}
}

func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

func (cui *ControlsUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}
