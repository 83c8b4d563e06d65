/*
go-gazefocus turns a noisy per-frame stream of face bounding box detections
from a webcam into stable presence, posture, and focus signals.  It provides
the stateful inference core of a desk productivity coach: detection
smoothing with dropout tolerance, presence hysteresis, posture baseline
calibration and classification, a presence gated session timer, a focus
score, and debounced posture/idle alerts.

The core is deterministic and single threaded.  The caller drives it one
frame at a time through Pipeline.Update, supplying the raw Detection and the
current wall clock timestamp.  Camera capture, the face detection model,
on screen rendering, and notification delivery all live outside the core,
see the detect and render subpackages and code in the example subdirectory.
*/
package gazefocus
