package audio

import (
	"time"

	"github.com/faiface/beep/speaker"
)

// Start opens the default output device and plays the click track on it for
// the rest of the process.
func Start(track *ClickTrack) error {
	if err := speaker.Init(track.sr, track.sr.N(time.Second/30)); err != nil {
		return err
	}
	speaker.Play(track)
	return nil
}
