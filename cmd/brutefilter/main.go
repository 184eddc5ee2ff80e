// Command brutefilter runs the BruteFilter module offline, live, or as a
// frequency response analyzer.
//
// Usage:
//
//	brutefilter <command> [flags]
//
// Commands:
//
//	models    list registered module models
//	render    filter a WAV file or a test oscillator into four WAV files
//	play      play one filter output live, optionally driven by MIDI CCs
//	response  print the magnitude response of all four outputs
//
// Examples:
//
//	brutefilter render -source saw -freq 110 -lfo 0.5 -cutoff-amount -0.8
//	brutefilter render -in drums.wav -out filtered -cutoff 2.2 -resonance 0.8
//	brutefilter play -output bandpass -midi
//	brutefilter response -cutoff 2 -resonance 0.5
//
// Building with -tags headless leaves out the audio and MIDI backends, which
// need cgo; play then fails with an error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/brutefilter/host"
	"github.com/cwbudde/brutefilter/modules/brutefilter"
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"models", "list registered module models", runModels},
	{"render", "filter a WAV file or oscillator into four WAV files", runRender},
	{"play", "play one output live through the default audio device", runPlay},
	{"response", "print the magnitude response of all four outputs", runResponse},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	name := strings.ToLower(args[0])
	for _, c := range commands {
		if c.name != name {
			continue
		}

		err := c.run(args[1:], stdout, stderr)
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)
	return 1
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: brutefilter <command> [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'brutefilter <command> -h' for command flags.\n")
}

func newRegistry() (*host.Registry, error) {
	reg := host.NewRegistry()
	if err := brutefilter.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func runModels(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("models takes no arguments")
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Slug\tName\tVersion\tTags\n")
	fmt.Fprintf(tw, "----\t----\t-------\t----\n")
	for _, m := range reg.Models() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Slug, m.Name, m.Version, strings.Join(m.Tags, ","))
	}
	return tw.Flush()
}
