// Package media relays uploaded images to a bucket or a hosted media service.
package media

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"cashmemo/internal/errors"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register decoder
)

// processedImage is an image ready to be stored.
type processedImage struct {
	data        []byte
	contentType string
	format      string
	width       int
	height      int
}

// encodableFormats maps the formats imaging can re-encode after a resize.
var encodableFormats = map[string]imaging.Format{
	"jpeg": imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
}

// prepareImage reads the dimensions and downscales images whose longest side
// exceeds maxDimension. WebP is stored as is because imaging cannot encode it.
func prepareImage(data []byte, maxDimension int) (*processedImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image header")
	}

	out := &processedImage{
		data:        data,
		contentType: "image/" + format,
		format:      format,
		width:       cfg.Width,
		height:      cfg.Height,
	}

	target, canEncode := encodableFormats[format]
	if maxDimension <= 0 || !canEncode || (cfg.Width <= maxDimension && cfg.Height <= maxDimension) {
		return out, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, target, imaging.JPEGQuality(85)); err != nil {
		return nil, errors.Wrap(err, "failed to encode resized image")
	}

	bounds := resized.Bounds()
	out.data = buf.Bytes()
	out.width = bounds.Dx()
	out.height = bounds.Dy()

	return out, nil
}

// extensionFor returns the object-key extension for a decoded format.
func extensionFor(format string) string {
	if format == "jpeg" {
		return ".jpg"
	}

	return "." + format
}
