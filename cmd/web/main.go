package main

import "terek_backend/internal/app"

func main() {
	app.Run()
}
