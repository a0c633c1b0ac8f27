package dump

import (
	"fmt"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Print renders root to stdout. When opts.CopyToClipboard is set, a second
// uncolored rendering is forwarded to the terminal clipboard using an OSC 52
// escape sequence; terminals without OSC 52 support ignore it, and a write
// failure never affects the printed output.
func Print(root any, opts Options) {
	fmt.Println(Tree(root, opts))
	if opts.CopyToClipboard {
		plain := opts
		plain.NoColor = true
		seq := osc52.New(Tree(root, plain))
		_, _ = seq.WriteTo(os.Stderr)
	}
}
