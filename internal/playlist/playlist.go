// Package playlist derives the ordered list of media paths to hand to the
// player from parsed config entries.
package playlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grafov/m3u8"

	"github.com/videoloop/videoloop-cli/internal/config"
)

// An entry is enabled when its key carries the video prefix and its value
// is exactly "yes". Matching is case-sensitive on both sides.
const (
	keyPrefix     = "video"
	enabledValue  = "yes"
	mediaFileExt  = ".mp4"
	exportVersion = 3
)

// ErrNoVideosEnabled indicates the config enables no videos at all.
var ErrNoVideosEnabled = errors.New("no videos enabled in config")

// MissingFileError reports the first enabled video file absent from disk.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("video file not found: %s", e.Path)
}

// Playlist is an ordered list of resolved media file paths. Order follows
// the config file; duplicate keys produce duplicate paths.
type Playlist []string

// Build filters entries down to enabled videos and resolves each key to
// <mediaDir>/<key>.mp4, preserving config order.
func Build(entries []config.Entry, mediaDir string) (Playlist, error) {
	var paths Playlist
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Key, keyPrefix) {
			continue
		}
		if entry.Value != enabledValue {
			continue
		}
		paths = append(paths, filepath.Join(mediaDir, entry.Key+mediaFileExt))
	}
	if len(paths) == 0 {
		return nil, ErrNoVideosEnabled
	}
	return paths, nil
}

// Validate stats every path and returns the combined size in bytes. The
// first path missing from disk yields a *MissingFileError naming it.
func (p Playlist) Validate() (int64, error) {
	var totalBytes int64
	for _, path := range p {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return 0, &MissingFileError{Path: path}
			}
			return 0, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			return 0, &MissingFileError{Path: path}
		}
		totalBytes += info.Size()
	}
	return totalBytes, nil
}

// ExportM3U8 writes the playlist as a VOD M3U8 file, one segment per video
// in playlist order. Durations are unknown to the launcher and written as
// zero; players derive them from the files themselves.
func (p Playlist) ExportM3U8(path string) error {
	out, err := m3u8.NewMediaPlaylist(0, uint(len(p)))
	if err != nil {
		return fmt.Errorf("create media playlist: %w", err)
	}
	out.MediaType = m3u8.VOD
	out.SetVersion(exportVersion)
	for _, videoPath := range p {
		if err := out.Append(videoPath, 0, ""); err != nil {
			return fmt.Errorf("append %s: %w", videoPath, err)
		}
	}
	out.Close()
	if err := os.WriteFile(path, out.Encode().Bytes(), 0644); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	return nil
}
