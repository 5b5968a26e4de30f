package process

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
)

// procStatus holds the fields this tool extracts from a status table.
type procStatus struct {
	name     string
	uid      int
	rssBytes int64
}

// readStatus parses /proc/PID/status for the short name, the real uid
// (first token of the Uid line), and VmRSS in bytes. ok is false when the
// file cannot be opened. Kernel threads have no VmRSS line; rssBytes stays
// zero for them.
func (e *Enumerator) readStatus(pid int) (procStatus, bool) {
	f, err := os.Open(e.statusPath(pid))
	if err != nil {
		return procStatus{}, false
	}
	defer f.Close()

	st := procStatus{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Name:"):
			st.name = strings.TrimSpace(line[len("Name:"):])
		case strings.HasPrefix(line, "Uid:"):
			fields := strings.Fields(line[len("Uid:"):])
			if len(fields) > 0 {
				if uid, err := strconv.Atoi(fields[0]); err == nil {
					st.uid = uid
				}
			}
		case strings.HasPrefix(line, "VmRSS:"):
			fields := strings.Fields(line[len("VmRSS:"):])
			if len(fields) > 0 {
				if kb, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
					st.rssBytes = kb * 1024
				}
			}
		}
	}
	return st, true
}

// readCommand joins the null-separated cmdline components with spaces.
// The result is empty for kernel threads and unreadable files; the caller
// falls back to the short name.
func (e *Enumerator) readCommand(pid int) string {
	data, err := os.ReadFile(e.cmdlinePath(pid))
	if err != nil {
		return ""
	}
	joined := string(bytes.ReplaceAll(data, []byte{0}, []byte{' '}))
	return strings.TrimSpace(joined)
}
