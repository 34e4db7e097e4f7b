package lesson

import "github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"

// maxDrop is the tallest vertical offset any pose uses.
const maxDrop = 3

// pose is the card's displacement at one animation frame.
type pose struct {
	dx, dy int
	small  bool
}

// Frames are 100ms apart, so each track spans the 1200ms entry window.
var (
	bounceTrack = []int{3, 2, 0, 1, 2, 1, 0, 1, 0, 0, 0, 0}
	swingTrack  = []int{-8, 6, -5, 4, -3, 2, -1, 1, 0, 0, 0, 0}
	popTrack    = []bool{true, true, true, false, false, false, false, false, false, false, false, false}
)

// poseAt returns where the card sits at frame of animation a. A negative
// frame, or one past the end of the track, is the resting pose.
func poseAt(a catalog.Animation, frame int) pose {
	if frame < 0 {
		return pose{}
	}
	switch a {
	case catalog.AnimationBounce:
		if frame < len(bounceTrack) {
			return pose{dy: bounceTrack[frame]}
		}
	case catalog.AnimationSwing:
		if frame < len(swingTrack) {
			return pose{dx: swingTrack[frame]}
		}
	case catalog.AnimationPop:
		if frame < len(popTrack) {
			return pose{small: popTrack[frame]}
		}
	}
	return pose{}
}
