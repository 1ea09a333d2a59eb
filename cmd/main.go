package main

import (
	"github.com/pollosrrj/pos/internal/app"
	"github.com/pollosrrj/pos/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
