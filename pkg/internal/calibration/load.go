package calibration

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

type coefficientFile struct {
	K                 *float64 `json:"k"`
	StressCoefficient *float64 `json:"stress_coefficient"`
	RSquared          *float64 `json:"r_squared"`
	R2                *float64 `json:"R2"`
	Direction         string   `json:"direction"`
}

// LoadFile imports a coefficient from a .json or .csv file carrying k (or
// stress_coefficient) in MPa/ns and optionally r_squared (or R2).
func LoadFile(path string) (types.CalibrationCoefficient, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.CalibrationCoefficient{}, err
	}
	defer f.Close()

	var k, r2 float64
	direction := ""
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		k, r2, direction, err = decodeJSON(f)
	case ".csv":
		k, r2, err = decodeCSV(f)
	default:
		return types.CalibrationCoefficient{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return types.CalibrationCoefficient{}, err
	}
	if k == 0 {
		return types.CalibrationCoefficient{}, ErrMissingCoefficient
	}

	return types.CalibrationCoefficient{
		Slope:     1 / (k * nanosPerSecond),
		RSquared:  r2,
		Source:    "file:" + filepath.Base(path),
		Direction: direction,
	}, nil
}

func decodeJSON(r io.Reader) (float64, float64, string, error) {
	var doc coefficientFile
	if err := utils.DecodeJSON(r, &doc); err != nil {
		return 0, 0, "", fmt.Errorf("calibration: decode json: %w", err)
	}
	k := firstOf(doc.K, doc.StressCoefficient)
	r2 := firstOf(doc.RSquared, doc.R2)
	return k, r2, doc.Direction, nil
}

func firstOf(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// decodeCSV reads the first data row below a header line.
func decodeCSV(r io.Reader) (float64, float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return 0, 0, fmt.Errorf("%w: empty file", ErrMissingCoefficient)
	}
	if err != nil {
		return 0, 0, err
	}
	row, err := reader.Read()
	if err == io.EOF {
		return 0, 0, fmt.Errorf("%w: no data row", ErrMissingCoefficient)
	}
	if err != nil {
		return 0, 0, err
	}

	cols := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			cols[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = strings.TrimSpace(row[i])
		}
	}
	k, err := column(cols, "k", "stress_coefficient")
	if err != nil {
		return 0, 0, err
	}
	r2, err := column(cols, "r_squared", "R2")
	if err != nil {
		return 0, 0, err
	}
	return k, r2, nil
}

func column(cols map[string]string, names ...string) (float64, error) {
	for _, name := range names {
		if raw, ok := cols[name]; ok && raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, fmt.Errorf("calibration: column %s: %w", name, err)
			}
			return v, nil
		}
	}
	return 0, nil
}
