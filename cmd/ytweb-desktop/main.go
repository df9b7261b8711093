package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytweb/internal/config"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytweb"
	AppName = "ytweb"
)

func main() {
	lc := logger.DefaultConfig()
	if level, err := logger.ParseLevel(os.Getenv(config.EnvLogLevel)); err == nil {
		lc.Level = level
	}
	log := logger.New(lc)
	log.WithComponent(logger.ComponentApp).Info("Desktop client starting", logger.Fields{"version": version})

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	ui.NewRootUI(myWindow, myApp, log)

	myWindow.ShowAndRun()
}
