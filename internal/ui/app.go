package ui

import (
	"LocalSketch/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalSketch")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+480, float32(cfg.Canvas.Height)+160))

	board := NewBoardWidget(cfg)
	toolbar := NewToolbar(board, myWindow)

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, container.NewCenter(board))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
