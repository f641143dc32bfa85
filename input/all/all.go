// Package all imports all backends implemented by the input package.
package all

import (
	_ "github.com/noriah/specbar/input/ffmpeg"
	_ "github.com/noriah/specbar/input/parec"
	_ "github.com/noriah/specbar/input/stdinput"
	_ "github.com/noriah/specbar/input/synth"
	_ "github.com/noriah/specbar/input/wav"
)
