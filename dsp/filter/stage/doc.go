// Package stage provides the elementary stateful building blocks of the
// brute multimode filter.
//
// Two capabilities are modelled as small interfaces:
//   - Splitter: a one-pole stage exposing simultaneous lowpass and highpass
//     readings of the same internal state.
//   - Follower: a decaying peak tracker used as a gain envelope.
//
// RC and Peak are the concrete implementations. Both advance by exactly one
// sample per Process call, never allocate and never fail, so they can run on
// a real-time audio goroutine. Each instance is owned by a single processor.
package stage
