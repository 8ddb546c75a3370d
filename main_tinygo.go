//go:build tinygo

package main

import (
	"vramdemo/app"
	"vramdemo/hal"
)

func main() {
	// The status has no consumer on device.
	_ = app.Run(hal.New(), app.Config{Demo: "gradient"})
}
