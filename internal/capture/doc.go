// Package capture holds the platform-facing collaborators of the session:
// the camera frame source and the operator console (preview windows and
// keyboard triggers), both backed by OpenCV through gocv.
//
// Everything here is thin plumbing. The decision logic for region geometry,
// preprocessing, token policy, and dispatch lives in the pure packages and is
// reached through the interfaces the session defines, so it can be tested
// without a camera or a display.
package capture
