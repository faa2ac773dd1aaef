package image

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// iconDirs returns the directories searched for theme icons, in priority
// order, following the XDG base directory spec.
func iconDirs() []string {
	var dirs []string

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".icons"))
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "icons"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "icons"))
		}
	}

	dirs = append(dirs, "/usr/share/pixmaps")
	return dirs
}

// ResolveIcon resolves an icon-theme lookup key (e.g. "folder-music") to
// the path of a decodable bitmap. The first match in priority order wins.
// Scalable (SVG) icons are skipped since they need an external rasterizer.
func ResolveIcon(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("icon name cannot be empty")
	}

	for _, dir := range iconDirs() {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		var found string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // unreadable subtrees are skipped, not fatal
			}
			base := d.Name()
			ext := filepath.Ext(base)
			if !isImageFile(base) {
				return nil
			}
			if strings.TrimSuffix(base, ext) == name {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			continue
		}
		if found != "" {
			return found, nil
		}
	}

	return "", fmt.Errorf("icon not found in theme directories: %s", name)
}
