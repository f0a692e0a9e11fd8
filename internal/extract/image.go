package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"os"

	"github.com/nfnt/resize"
)

const (
	thumbnailEdge    = 100
	thumbnailQuality = 30
)

// extractImage decodes an image, downscales it to a thumbnail and
// reports the thumbnail dimensions plus re-encoded byte size. Images
// contribute no text to the index.
func extractImage(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to read image: %w", err)}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	thumb := resize.Thumbnail(thumbnailEdge, thumbnailEdge, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return Result{Err: fmt.Errorf("failed to encode thumbnail: %w", err)}
	}

	bounds := thumb.Bounds()
	return Result{
		Preview: fmt.Sprintf("Image size: %dx%d, thumbnail %d bytes",
			bounds.Dx(), bounds.Dy(), buf.Len()),
	}
}
