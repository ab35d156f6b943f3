package colors

import (
	"hash/crc32"
	"image/color"
)

// GetColor returns a stable color for a series name.
func GetColor(name string) color.RGBA {
	return hashToRGB(name)
}

func hashToRGB(input string) color.RGBA {
	// Calculate CRC32 hash
	hash := crc32.ChecksumIEEE([]byte(input))
	// Map the hash value to RGB color space
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}
