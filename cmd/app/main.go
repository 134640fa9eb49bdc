package main

import (
	"procurement-authoring-api/app"
)

func main() {
	app.Run()
}
