package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytclip/yt-trimmer/internal/clip"
	"github.com/ytclip/yt-trimmer/internal/config"
	"github.com/ytclip/yt-trimmer/internal/platform"
	"github.com/ytclip/yt-trimmer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytclip.yt-trimmer"
	AppName = "YT Trimmer"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("YT Trimmer v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	clipSvc := clip.NewService(outputDir, settings.GetMaxParallelExports())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, clipSvc)

	// Show and run
	myWindow.ShowAndRun()
}
