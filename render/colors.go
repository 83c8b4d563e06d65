package render

import (
	"image/color"

	"github.com/gazekit/go-gazefocus"
	"github.com/gazekit/go-gazefocus/posture"
)

var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 72, G: 249, B: 10, A: 255}
	Yellow = color.RGBA{R: 255, G: 178, B: 29, A: 255}
	Orange = color.RGBA{R: 255, G: 112, B: 31, A: 255}
	Red    = color.RGBA{R: 255, G: 56, B: 56, A: 255}
	Blue   = color.RGBA{R: 0, G: 194, B: 255, A: 255}
)

// PresenceColor returns the color used to indicate a presence state
func PresenceColor(state gazefocus.PresenceState) color.RGBA {
	switch state {
	case gazefocus.Present:
		return Green
	case gazefocus.Uncertain:
		return Yellow
	default:
		return Red
	}
}

// PostureColor returns the color used to indicate a posture state
func PostureColor(state posture.State) color.RGBA {
	switch state {
	case posture.Good:
		return Green
	case posture.TooClose:
		return Red
	case posture.Slouched:
		return Orange
	default:
		return Yellow
	}
}
