// Package imaging registers the image decoders snowball understands and
// provides dimension probing on top of them.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/gen2brain/heic"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// heifProbe is a minimal ISO-BMFF ftyp box carrying the heic brand. It is
// not a decodable image; Ensure only needs a registered decoder to claim
// the signature.
var heifProbe = []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00heicmif1")

// Ensure verifies that HEIF decoding is available. It must be called before
// scanning: without the decoder every iPhone photo would be skipped
// silently instead of cataloged.
func Ensure() error {
	_, _, err := image.DecodeConfig(bytes.NewReader(heifProbe))
	if errors.Is(err, image.ErrFormat) {
		return errors.New("HEIF decoding is not available in this build; rebuild with the github.com/gen2brain/heic decoder imported (go get github.com/gen2brain/heic)")
	}
	return nil
}

// Dimensions reads just enough of the file at path to report its pixel
// width and height. It returns an error for anything that does not decode
// as an image, including directories and unreadable files.
func Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}
