// Package photo extracts capture timestamps from evidence images.
package photo

import (
	"bytes"
	"time"

	"gravity/internal/domain/service"

	"github.com/rwcarlsen/goexif/exif"
)

type exifTimestamper struct{}

// NewTimestamper returns the EXIF-backed capture-time reader.
func NewTimestamper() service.PhotoTimestamper {
	return &exifTimestamper{}
}

// CaptureTime reads DateTimeOriginal from the image's EXIF block.
// Images without usable metadata (screenshots, stripped uploads) fall
// back to the client-supplied file modification time, matching the
// soft-confirm capture flow.
func (e *exifTimestamper) CaptureTime(data []byte, fallbackModTime time.Time) (time.Time, error) {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return fallbackModTime, nil
	}

	captured, err := meta.DateTime()
	if err != nil {
		return fallbackModTime, nil
	}

	return captured, nil
}
