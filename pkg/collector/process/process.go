// Package process enumerates live processes from the procfs process table.
package process

import (
	"os"
	"path/filepath"
	"strconv"

	"procview/pkg/types"
	"procview/pkg/users"

	"go.uber.org/zap"
)

// DefaultRoot is the procfs mount point.
const DefaultRoot = "/proc"

// Enumerator lists live processes by walking the numeric entries of the
// process table root. Each List call is a full re-enumeration; nothing is
// cached between ticks.
type Enumerator struct {
	Root  string
	Users *users.Resolver
	Log   *zap.Logger
}

// NewEnumerator returns an enumerator over root (DefaultRoot if empty)
// resolving owners through resolver.
func NewEnumerator(root string, resolver *users.Resolver, log *zap.Logger) *Enumerator {
	if root == "" {
		root = DefaultRoot
	}
	if resolver == nil {
		resolver = users.NewResolver("")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Enumerator{Root: root, Users: resolver, Log: log}
}

// List returns one record per live process, in process-table enumeration
// order. totalMemBytes is the denominator for per-process memory percent;
// callers pass the total from the tick's memory snapshot so the memory
// table is read once per tick, not once per process. A process that
// vanishes between listing and read is silently absent.
func (e *Enumerator) List(totalMemBytes int64) []types.ProcessRecord {
	entries, err := os.ReadDir(e.Root)
	if err != nil {
		e.Log.Warn("process table unreadable", zap.String("root", e.Root), zap.Error(err))
		return nil
	}

	// one account-table read per pass instead of one per process
	accounts := e.Users.Table()

	records := make([]types.ProcessRecord, 0, len(entries))
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue // non-process metadata entry
		}

		st, ok := e.readStatus(pid)
		if !ok {
			// exited between listing and read, or permission denied;
			// a normal race, not an error
			continue
		}

		owner, ok := accounts[st.uid]
		if !ok {
			owner = users.Unknown
		}

		command := e.readCommand(pid)
		if command == "" {
			command = st.name
		}

		var memPercent float64
		if totalMemBytes > 0 {
			memPercent = float64(st.rssBytes) * 100 / float64(totalMemBytes)
		}

		records = append(records, types.ProcessRecord{
			PID:           pid,
			Name:          st.name,
			Owner:         owner,
			CPUPercent:    0.0,
			MemoryPercent: memPercent,
			RSSBytes:      st.rssBytes,
			Command:       command,
		})
	}
	return records
}

func (e *Enumerator) statusPath(pid int) string {
	return filepath.Join(e.Root, strconv.Itoa(pid), "status")
}

func (e *Enumerator) cmdlinePath(pid int) string {
	return filepath.Join(e.Root, strconv.Itoa(pid), "cmdline")
}
