package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are directories omitted from the rendered project tree. They
// carry no signal for implementation-status analysis and bloat the prompt.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"target":       true,
}

// RenderDirectoryTree walks root and renders its file layout as an
// indented listing, two spaces per level, directories suffixed with "/".
// Hidden entries and well-known build/dependency directories are skipped.
// The output is what gets embedded in the analysis prompt and kept in the
// snapshot for audit.
func RenderDirectoryTree(root string) (string, error) {
	var sb strings.Builder
	if err := renderDir(&sb, root, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderDir(sb *strings.Builder, dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			if skipDirs[name] {
				continue
			}
			fmt.Fprintf(sb, "%s%s/\n", indent, name)
			if err := renderDir(sb, filepath.Join(dir, name), depth+1); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(sb, "%s%s\n", indent, name)
	}
	return nil
}
