// Package users maps numeric user ids to account names via the system
// account table.
package users

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the standard account table location.
const DefaultPath = "/etc/passwd"

// Unknown is the owner name substituted when resolution fails.
const Unknown = "unknown"

// Resolver looks up account names in a colon-delimited table of
// name:password:uid:... lines. Lookups re-read the table; callers doing
// many lookups per tick should build a Table once instead.
type Resolver struct {
	Path string
}

// NewResolver returns a resolver over path, or DefaultPath if empty.
func NewResolver(path string) *Resolver {
	if path == "" {
		path = DefaultPath
	}
	return &Resolver{Path: path}
}

// Resolve returns the name on the first line whose third field equals uid.
// It fails when the table is unreadable or no line matches.
func (r *Resolver) Resolve(uid int) (string, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, id, ok := parseEntry(scanner.Text())
		if ok && id == uid {
			return name, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("uid %d not found in %s", uid, r.Path)
}

// Table reads the whole account table into a uid->name map. The first
// entry for a uid wins, matching the linear-scan behavior of Resolve.
// An unreadable table yields an empty map.
func (r *Resolver) Table() map[int]string {
	table := make(map[int]string)
	f, err := os.Open(r.Path)
	if err != nil {
		return table
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, id, ok := parseEntry(scanner.Text())
		if !ok {
			continue
		}
		if _, seen := table[id]; !seen {
			table[id] = name
		}
	}
	return table
}

func parseEntry(line string) (name string, uid int, ok bool) {
	parts := strings.Split(line, ":")
	if len(parts) < 3 {
		return "", 0, false
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, false
	}
	return parts[0], id, true
}
