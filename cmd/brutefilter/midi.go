//go:build !headless

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rakyll/portmidi"

	"github.com/cwbudde/brutefilter/host"
)

const (
	midiPoll   = 5 * time.Millisecond
	midiBuffer = 1024
)

// listenMIDI polls the default MIDI input until ctx is done or stop is
// called. Parameters are written from the polling goroutine; they are
// atomic, so the audio goroutine may read them concurrently.
func listenMIDI(ctx context.Context, u *host.Unit, stderr io.Writer) (stop func(), err error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, fmt.Errorf("midi: %w", err)
	}

	id := portmidi.DefaultInputDeviceID()
	if id < 0 {
		portmidi.Terminate()
		return nil, fmt.Errorf("midi: no input device")
	}

	if info := portmidi.Info(id); info != nil {
		fmt.Fprintf(stderr, "midi: listening on %s\n", info.Name)
	}

	stream, err := portmidi.NewInputStream(id, midiBuffer)
	if err != nil {
		portmidi.Terminate()
		return nil, fmt.Errorf("midi: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(midiPoll)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			events, err := stream.Read(midiBuffer)
			if err != nil {
				fmt.Fprintf(stderr, "midi: %v\n", err)
				return
			}

			for _, ev := range events {
				applyCC(u, ev.Status, ev.Data1, ev.Data2)
			}
		}
	}()

	return func() {
		cancel()
		<-done
		stream.Close()
		portmidi.Terminate()
	}, nil
}
