package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/acoustofield/pkg/builder"
)

func main() {
	// Tensile coupon: applied stress against measured time-of-flight change.
	stress := []float64{50, 100, 150, 200, 250}
	shift := []float64{24.6e-9, 50.3e-9, 74.8e-9, 100.9e-9, 125.2e-9}

	coeff, err := builder.FitCalibration(stress, shift)
	if err != nil {
		fmt.Printf("Fit failed: %v\n", err)
		return
	}
	coeff.Source = "coupon-7"
	coeff.Direction = "longitudinal"

	model, err := builder.NewCalibrationModel(coeff)
	if err != nil {
		fmt.Printf("Model failed: %v\n", err)
		return
	}
	fmt.Printf("slope=%.3e s/MPa R²=%.4f k=%.3f MPa/ns\n", coeff.Slope, coeff.RSquared, model.K())
	for _, w := range model.Warnings() {
		fmt.Println("warning:", w)
	}

	dir, err := os.MkdirTemp("", "acoustofield-calibration")
	if err != nil {
		fmt.Printf("Temp dir failed: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "coupon-7.json")
	body, _ := json.Marshal(map[string]float64{"k": model.K(), "r_squared": coeff.RSquared})
	if err := os.WriteFile(path, body, 0o644); err != nil {
		fmt.Printf("Write failed: %v\n", err)
		return
	}

	loaded, err := builder.LoadCalibration(path)
	if err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}
	reloaded, err := builder.NewCalibrationModel(loaded)
	if err != nil {
		fmt.Printf("Model failed: %v\n", err)
		return
	}
	for _, dt := range []float64{10, 25, 50} {
		fmt.Printf("Δt=%2.0f ns -> σ=%.1f MPa\n", dt, reloaded.Stress(dt))
	}
}
