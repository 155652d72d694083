package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaintainerDirectory maps a path namespace (for example a module
// subdirectory) to the handles responsible for it. It is built once per run
// from a static source and immutable afterwards. Entries keep their source
// order so maintainer lookups are deterministic.
type MaintainerDirectory struct {
	namespaces []string
	handles    map[string][]string
}

// ParseMaintainerDirectory reads lines of the form
//
//	namespace: handle1 handle2 …
//
// Blank lines and lines starting with '#' are skipped. A non-blank line
// without a ": " separator is a configuration error; loading is
// all-or-nothing, so the first malformed line fails the whole parse.
func ParseMaintainerDirectory(r io.Reader) (*MaintainerDirectory, error) {
	dir := &MaintainerDirectory{handles: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		namespace, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("maintainers line %d: missing ':' separator in %q", lineNo, line)
		}
		namespace = strings.TrimSpace(namespace)
		if namespace == "" {
			return nil, fmt.Errorf("maintainers line %d: empty namespace in %q", lineNo, line)
		}

		handles := strings.Fields(rest)

		if _, exists := dir.handles[namespace]; !exists {
			dir.namespaces = append(dir.namespaces, namespace)
		}
		dir.handles[namespace] = handles
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maintainers source: %w", err)
	}

	return dir, nil
}

// Namespaces returns the directory's namespace keys in source order.
func (d *MaintainerDirectory) Namespaces() []string {
	out := make([]string, len(d.namespaces))
	copy(out, d.namespaces)
	return out
}

// Handles returns the maintainer handles registered for namespace.
func (d *MaintainerDirectory) Handles(namespace string) []string {
	return d.handles[namespace]
}

// ModuleMaintainers returns the union of maintainer handles over all changed
// files. A file matches a namespace when the namespace string occurs anywhere
// in the file's path, not only on exact equality. The result is deduplicated
// and ordered by namespace source order, then by handle order within a
// namespace.
func (d *MaintainerDirectory) ModuleMaintainers(files []ChangedFile) []string {
	if d == nil {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, namespace := range d.namespaces {
		matched := false
		for _, f := range files {
			if strings.Contains(f.Path, namespace) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, h := range d.handles[namespace] {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	return out
}

// Contains reports whether handle appears in the given maintainer list.
func Contains(handles []string, handle string) bool {
	for _, h := range handles {
		if h == handle {
			return true
		}
	}
	return false
}
