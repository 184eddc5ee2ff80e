//go:build !headless

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playLive plays o.stream on the default audio device until ctx is done.
func playLive(ctx context.Context, o liveOptions, stdout, stderr io.Writer) error {
	if o.midi {
		stop, err := listenMIDI(ctx, o.rack.unit, stderr)
		if err != nil {
			return err
		}
		defer stop()
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   o.rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(o.rack.engine.BlockSize()) * time.Second / time.Duration(o.rate),
	})
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(o.stream)
	player.Play()

	fmt.Fprintln(stdout, o.banner)
	<-ctx.Done()

	if err := player.Close(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}
