// Package capture saves plot snapshots as timestamped PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"fyne.io/fyne/v2"
)

// Screenshot writes the rendered canvas to a PNG in the working
// directory and returns its name.
func Screenshot(c fyne.Canvas) (string, error) {
	return write(c.Capture())
}

// Snapshot writes an already rendered raster, such as the plot image
// itself, to a PNG in the working directory.
func Snapshot(img image.Image) (string, error) {
	return write(img)
}

func write(img image.Image) (string, error) {
	filename := fmt.Sprintf("axescache-%s.png", time.Now().Format("2006-01-02-15-04-05"))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return filename, nil
}
