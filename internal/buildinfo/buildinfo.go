// Package buildinfo exposes version metadata injected at link time via
// -ldflags "-X github.com/bluemoon/stockkeeper/internal/buildinfo.Version=...".
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version   = "N/A"
	BuildDate = "N/A"
)

// PrintBuildData writes the version banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "stockkeeper %s (built %s)\n", Version, BuildDate)
}
