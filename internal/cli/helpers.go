package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hassy0430/K2/pkg/crypto/fsra"
)

const horizontalLine = "**************************************************"

// tableParamsByName resolves an alpha table name (alpha0..alpha3) to its
// parameter set.
func tableParamsByName(name string) (fsra.TableParams, error) {
	for _, p := range fsra.AlphaParams {
		if p.Name == name {
			return p, nil
		}
	}

	names := make([]string, len(fsra.AlphaParams))
	for i, p := range fsra.AlphaParams {
		names[i] = p.Name
	}
	return fsra.TableParams{}, fmt.Errorf("unknown table %q, expected one of: %s", name, strings.Join(names, ", "))
}

// wordsPerRow picks how many 32-bit words fit on one dump row. Each
// word renders as "0x%08X, " (12 columns).
func wordsPerRow() int {
	const perWord = 12

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width/perWord > 0 {
			return width / perWord
		}
	}
	return 8
}

// formatState renders the five register words as hex strings.
func formatState(state fsra.State) [fsra.RegisterSize]string {
	var out [fsra.RegisterSize]string
	for i, w := range state {
		out[i] = fmt.Sprintf("%08X", w)
	}
	return out
}
