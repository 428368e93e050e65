package preview

import (
	"fmt"

	"github.com/noelyahan/impexp"
	"github.com/noelyahan/mergi"
)

// MakeThumbnail writes a scaled-down copy of the image at inFile to
// outFile, fitting it inside maxWidth x maxHeight while keeping the aspect
// ratio.
func MakeThumbnail(inFile, outFile string, maxWidth, maxHeight uint) error {
	img, err := mergi.Import(impexp.NewFileImporter(inFile))
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())
	width, height = fitWithin(width, height, maxWidth, maxHeight)

	resized, err := mergi.Resize(img, width, height)
	if err != nil {
		return fmt.Errorf("failed to resize image: %w", err)
	}

	if err := mergi.Export(impexp.NewFileExporter(resized, outFile)); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}

	return nil
}

// fitWithin scales (width, height) down to fit inside (maxWidth, maxHeight)
// without changing the aspect ratio. Images already inside the box keep
// their size.
func fitWithin(width, height, maxWidth, maxHeight uint) (uint, uint) {
	if width == 0 || height == 0 || maxWidth == 0 || maxHeight == 0 {
		return width, height
	}

	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	scaledHeight := height * maxWidth / width
	if scaledHeight <= maxHeight {
		return maxWidth, max(scaledHeight, 1)
	}

	scaledWidth := width * maxHeight / height
	return max(scaledWidth, 1), maxHeight
}
