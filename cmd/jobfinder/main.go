package main

import (
	"os"
	"strings"

	"jobfinder/internal/cli"
)

// recordIDPrefix is the id prefix used by the bundled dataset.
const recordIDPrefix = "cmp-"

func isRecordID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, recordIDPrefix) && len(s) > len(recordIDPrefix)
}

// rewriteDirectRecordLookupArgs makes `jobfinder <record-id>` work like
// `jobfinder show <record-id>`. Cobra treats the first positional token as a
// subcommand, so argv is rewritten before parsing. Persistent flags may come
// first, so the first positional token is located rather than argv[1].
func rewriteDirectRecordLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dataset":   true,
		"--format":    true,
		"--log-file":  true,
		"--log-level": true,
		"--glyphs":    true,
	}

	insertShow := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "show")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isRecordID(argv[i+1]) {
				return insertShow(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isRecordID(a) {
			return insertShow(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectRecordLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
