package main

import (
	"motifscan/internal/app"
	"motifscan/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
