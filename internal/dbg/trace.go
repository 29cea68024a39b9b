//go:build mimirtrace

package dbg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Enabled is true when the core is built with the mimirtrace tag.
const Enabled = true

// Log prints a trace line to stderr, tagged with the calling goroutine, file
// and line. It is only compiled in when the mimirtrace build tag is set;
// callers guard invocations with `if dbg.Enabled` so that the format-string
// evaluation is eliminated entirely from release builds.
func Log(owner any, operation, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%s:%d [g%04d, %v] %s: ", file, line, GoroutineID(), owner, operation)
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
	os.Stderr.WriteString(buf.String())
}
