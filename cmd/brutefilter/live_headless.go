//go:build headless

package main

import (
	"context"
	"errors"
	"io"
)

var errNoAudio = errors.New("audio: built with the headless tag, live playback unavailable")

func playLive(context.Context, liveOptions, io.Writer, io.Writer) error {
	return errNoAudio
}
