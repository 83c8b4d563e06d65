// Package render draws the heads up display for the gazefocus pipeline on
// a video frame using GoCV primitives.
package render

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/gazekit/go-gazefocus"
	"github.com/gazekit/go-gazefocus/posture"
)

// FaceBox draws the stabilized face bounding box colored by presence state
func FaceBox(img *gocv.Mat, res gazefocus.FrameResult, lineThickness int) {

	if !res.FaceVisible {
		return
	}

	box := res.Box.Box
	rect := image.Rect(int(box.X), int(box.Y),
		int(box.X+box.W), int(box.Y+box.H))

	gocv.Rectangle(img, rect, PresenceColor(res.Presence), lineThickness)
}

// HUD draws the status overlay, presence banner, posture verdict, focus
// score and session clock, onto the top left of the frame
func HUD(img *gocv.Mat, res gazefocus.FrameResult, font Font) {

	presenceText := res.Presence.String()
	if res.Presence == gazefocus.Absent {
		presenceText = "AWAY"
	}

	font.Text(img, presenceText, 10, 30, PresenceColor(res.Presence))

	postureText := res.Posture.String()
	if res.Calibration == posture.Calibrating {
		postureText = "CALIBRATING..."
	}

	font.Text(img, postureText, 10, 60, PostureColor(res.Posture))

	score := fmt.Sprintf("Score: %d", int(res.Score))
	font.Text(img, score, 10, img.Rows()-40, White)

	clock := fmt.Sprintf("Session: %s", FormatClock(res.Timer.Accumulated))
	font.Text(img, clock, 10, img.Rows()-12, Blue)
}

// FormatClock formats a session duration as hh:mm:ss
func FormatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
