package parquetsink

import (
	"io"
	"os"

	parquet "github.com/parquet-go/parquet-go"
)

// ReadPoints loads every row of a points file.
func ReadPoints(path string) ([]PointRecord, error) { return readFile[PointRecord](path) }

// ReadGrid loads every cell of a grid file.
func ReadGrid(path string) ([]CellRecord, error) { return readFile[CellRecord](path) }

func readFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll[T](f)
}

func readAll[T any](ra io.ReaderAt) ([]T, error) {
	gr := parquet.NewGenericReader[T](ra)
	defer gr.Close()

	out := make([]T, 0, 1024)
	batch := make([]T, 1024)
	for {
		n, err := gr.Read(batch)
		if n > 0 {
			out = append(out, batch[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
