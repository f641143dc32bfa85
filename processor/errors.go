package processor

import (
	"github.com/noriah/specbar/dsp"
	"github.com/pkg/errors"
)

// Every error returned by RenderFrame means the frame was skipped and nothing
// was drawn. The next frame starts over.
var (
	ErrUnavailableInput  = errors.New("audio buffer unavailable")
	ErrUnsupportedFormat = dsp.ErrUnsupportedFormat
	ErrAllocation        = errors.New("transform buffer allocation failed")
	ErrInvalidGeometry   = errors.New("invalid frame geometry")
	ErrTransform         = errors.New("transform failed")
)
