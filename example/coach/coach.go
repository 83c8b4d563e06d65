/*
Example webcam productivity coach.  Captures frames from a camera, runs Haar
cascade face detection, drives the gazefocus pipeline and serves the
annotated video as an MJPEG stream with the HUD overlay.  Alert events are
dispatched to the log.

Session commands are exposed over HTTP:

	GET /stream      MJPEG video stream
	POST /reset       start a new session
	POST /recalibrate redo the posture baseline
	POST /pause       pause the session timer
	POST /resume      resume the session timer
*/
package main

import (
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/gazekit/go-gazefocus"
	"github.com/gazekit/go-gazefocus/detect"
	"github.com/gazekit/go-gazefocus/render"
)

var (
	// FPS is the camera sampling rate
	FPS         = int64(30)
	FPSinterval = time.Duration(float64(time.Second) / float64(FPS))
)

// Coach wraps the camera, the face detector and the inference pipeline
type Coach struct {
	cam      *gocv.VideoCapture
	cascade  *detect.Cascade
	pipeline *gazefocus.Pipeline
	font     render.Font
	log      *logrus.Logger
	// mu serializes pipeline access between the stream loop and the
	// command handlers, the core itself is single threaded
	mu sync.Mutex
}

// NewCoach opens the camera device and loads the face cascade
func NewCoach(deviceID int, cascadeFile string, log *logrus.Logger) (*Coach, error) {

	cam, err := gocv.OpenVideoCapture(deviceID)

	if err != nil {
		return nil, fmt.Errorf("error opening camera device %d: %w", deviceID, err)
	}

	cascade, err := detect.NewCascade(cascadeFile, detect.DefaultCascadeParams())

	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("error loading face cascade: %w", err)
	}

	cfg := gazefocus.DefaultConfig()
	cfg.FrameHeight = int(cam.Get(gocv.VideoCaptureFrameHeight))

	if cfg.FrameHeight == 0 {
		cfg.FrameHeight = 480
	}

	pipeline, err := gazefocus.NewPipeline(cfg)

	if err != nil {
		cam.Close()
		cascade.Close()
		return nil, fmt.Errorf("error creating pipeline: %w", err)
	}

	return &Coach{
		cam:      cam,
		cascade:  cascade,
		pipeline: pipeline,
		font:     render.DefaultFont(),
		log:      log,
	}, nil
}

// Close releases the camera and detector resources
func (c *Coach) Close() {
	c.cam.Close()
	c.cascade.Close()
}

// Stream is the HTTP handler function used to stream video frames to browser
func (c *Coach) Stream(w http.ResponseWriter, r *http.Request) {

	c.log.Info("new client connection established")

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	img := gocv.NewMat()
	defer img.Close()

	ticker := time.NewTicker(FPSinterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-r.Context().Done():
			c.log.Info("client disconnected")
			break loop

		case <-ticker.C:

			if ok := c.cam.Read(&img); !ok || img.Empty() {
				continue
			}

			// mirror the frame as the original webcam feed is reversed
			gocv.Flip(img, &img, 1)

			buf, err := c.processFrame(&img)

			if err != nil {
				c.log.Errorf("error processing frame: %v", err)
				continue
			}

			w.Write([]byte("--frame\r\n"))
			w.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))
			w.Write(buf.GetBytes())
			w.Write([]byte("\r\n"))

			buf.Close()

			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

// processFrame runs detection and the pipeline on one frame, annotates it
// and encodes the result as JPEG
func (c *Coach) processFrame(img *gocv.Mat) (*gocv.NativeByteBuffer, error) {

	det := c.cascade.Detect(*img)

	c.mu.Lock()
	res := c.pipeline.Update(det, time.Now())
	c.mu.Unlock()

	// notification dispatch, this demo just logs the alert events
	for _, ev := range res.Alerts {
		c.log.WithFields(logrus.Fields{
			"id":   ev.ID,
			"kind": ev.Kind,
		}).Warn(ev.Message)
	}

	if res.PresenceChanged {
		c.log.WithField("state", res.Presence.String()).Info("presence changed")
	}

	render.FaceBox(img, res, 2)
	render.HUD(img, res, c.font)

	return gocv.IMEncode(".jpg", *img)
}

// command wraps a pipeline command as an HTTP handler
func (c *Coach) command(name string, fn func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		fn()
		c.mu.Unlock()

		c.log.WithField("command", name).Info("session command")
		fmt.Fprintf(w, "ok\n")
	}
}

func main() {

	log := logrus.New()
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: time.RFC3339,
	})

	deviceID := flag.Int("d", 0, "Camera device ID")
	cascadeFile := flag.String("c", "haarcascade_frontalface_default.xml",
		"Haar cascade XML file for frontal face detection")
	ttfFile := flag.String("t", "", "TTF font file for HUD text, Hershey font used when unset")
	addr := flag.String("a", ":8080", "HTTP address to listen on")

	flag.Parse()

	coach, err := NewCoach(*deviceID, *cascadeFile, log)

	if err != nil {
		log.Fatalf("error initializing coach: %v", err)
	}

	if *ttfFile != "" {
		face, err := render.LoadTTFFace(*ttfFile, 20)

		if err != nil {
			log.Fatalf("error loading TTF font: %v", err)
		}

		coach.font.TTF = face
	}

	defer coach.Close()

	http.HandleFunc("/stream", coach.Stream)
	http.HandleFunc("/reset", coach.command("reset", coach.pipeline.ResetSession))
	http.HandleFunc("/recalibrate", coach.command("recalibrate", coach.pipeline.RecalibrateBaseline))
	http.HandleFunc("/pause", coach.command("pause", coach.pipeline.PauseSession))
	http.HandleFunc("/resume", coach.command("resume", coach.pipeline.ResumeSession))

	log.Infof("open http://localhost%s/stream to view", *addr)

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
