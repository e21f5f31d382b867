package main

import (
	"os"
	"strings"

	"flashdeck/internal/cli"
	"flashdeck/internal/store"
)

func isDeckFile(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, store.DeckExt) && len(s) > len(store.DeckExt)
}

func rewriteDirectDeckArgs(argv []string) []string {
	// Convenience: `flashdeck <file>.csv` works like `flashdeck cards <file>.csv`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is
	// rewritten before parsing. Persistent flags may come first
	// (`flashdeck --dir ... x.csv`), so look for the first positional token.
	if len(argv) < 2 {
		return argv
	}

	// Unknown flags are skipped without their value so a deck argument is
	// never consumed by mistake.
	valueFlags := map[string]bool{
		"--dir":       true,
		"--format":    true,
		"--measure":   true,
		"--log":       true,
		"--log-level": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insertCards := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "cards")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops looking for subcommands after "--", so the command
			// goes in front of it.
			if i+1 < len(argv) && isDeckFile(argv[i+1]) {
				return insertCards(i)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isDeckFile(a) {
			return insertCards(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectDeckArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
