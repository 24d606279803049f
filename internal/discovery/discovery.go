// Package discovery locates exported CCP log files and handles interactive
// selection. It feeds a single chosen path to the engine; nothing here parses
// log content.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// LogFile describes one candidate file shown in the selection menu.
type LogFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// patterns matched against the scan directory. CCP exports land as .txt, but
// .log is common when agents rename them.
var patterns = []string{"*.txt", "*.log"}

// Scan lists log files directly inside dir, sorted by name.
func Scan(dir string) ([]LogFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []LogFile
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		for _, m := range matches {
			fi, err := os.Stat(m)
			if err != nil {
				continue
			}
			files = append(files, LogFile{
				Path:    m,
				Name:    filepath.Base(m),
				Size:    fi.Size(),
				ModTime: fi.ModTime(),
			})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// FormatSize renders a byte count the way the menu displays it.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
