// Command clipinfo inspects the spectrogram features and activity decisions
// computed for 16-bit mono clips.
//
// Usage:
//
//	clipinfo [--config file] [--log-level level] <command> [args]
//
// Commands:
//
//	extract  - extract one clip and print its shape, activity and peak bands
//	run      - split a recording into clips and run them through the pipeline
//	window   - print window analysis for the supported window types
//
// Examples:
//
//	clipinfo extract --tone-hz 1100
//	clipinfo extract capture.wav
//	clipinfo run --gate noise-floor --metrics session.raw
//	clipinfo window --size 320
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
