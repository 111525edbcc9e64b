package main

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"nematode/internal/config"
	"nematode/pkg/document"
	"nematode/pkg/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nematode-view <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	width, height := cfg.Viewport.Width, cfg.Viewport.Height

	a := app.New()
	w := a.NewWindow("nematode: " + path)
	w.Resize(fyne.NewSize(float32(width), float32(height+40)))

	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("")

	load := func() {
		root, err := document.Load(path)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}
		r := render.NewRenderer(width, height)
		r.Render(root)

		canvasImg.Image = r.Image()
		canvasImg.Refresh()
		status.SetText(fmt.Sprintf("%s: %gx%g", root.TagName(), root.EffectiveWidth(), root.EffectiveHeight()))
	}

	// Reload re-reads the file so edits show without restarting
	reload := widget.NewButton("Reload", load)

	bottom := container.NewBorder(nil, nil, nil, reload, status)
	w.SetContent(container.NewBorder(nil, bottom, nil, nil, canvasImg))

	load()
	w.ShowAndRun()
}
