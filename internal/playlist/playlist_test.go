package playlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/videoloop/videoloop-cli/internal/config"
)

func entries(pairs ...[2]string) []config.Entry {
	out := make([]config.Entry, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, config.Entry{Key: p[0], Value: p[1]})
	}
	return out
}

func TestBuild_KeepsEnabledVideosInConfigOrder(t *testing.T) {
	queue, err := Build(entries(
		[2]string{"video1", "yes"},
		[2]string{"video2", "no"},
		[2]string{"video3", "yes"},
	), "/media")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Playlist{
		filepath.Join("/media", "video1.mp4"),
		filepath.Join("/media", "video3.mp4"),
	}
	if !reflect.DeepEqual(queue, want) {
		t.Fatalf("unexpected playlist: got %v want %v", queue, want)
	}
}

func TestBuild_IgnoresKeysWithoutVideoPrefix(t *testing.T) {
	queue, err := Build(entries(
		[2]string{"brightness", "yes"},
		[2]string{"Video2", "yes"},
		[2]string{"video9", "yes"},
	), "/media")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Playlist{filepath.Join("/media", "video9.mp4")}
	if !reflect.DeepEqual(queue, want) {
		t.Fatalf("expected only video-prefixed keys: got %v want %v", queue, want)
	}
}

func TestBuild_ValueMustBeExactlyYes(t *testing.T) {
	_, err := Build(entries(
		[2]string{"video1", "Yes"},
		[2]string{"video2", "true"},
		[2]string{"video3", ""},
	), "/media")

	if !errors.Is(err, ErrNoVideosEnabled) {
		t.Fatalf("expected ErrNoVideosEnabled, got %v", err)
	}
}

func TestBuild_DuplicateKeysProduceDuplicatePaths(t *testing.T) {
	queue, err := Build(entries(
		[2]string{"video1", "yes"},
		[2]string{"video1", "yes"},
	), "/media")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queue) != 2 || queue[0] != queue[1] {
		t.Fatalf("expected repeated path for duplicate key, got %v", queue)
	}
}

func TestBuild_EmptyConfigFails(t *testing.T) {
	_, err := Build(nil, "/media")

	if !errors.Is(err, ErrNoVideosEnabled) {
		t.Fatalf("expected ErrNoVideosEnabled, got %v", err)
	}
}

func TestValidate_SumsFileSizes(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "video1.mp4"), []byte("abcd"), 0644); err != nil {
		t.Fatalf("failed to write media file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "video2.mp4"), []byte("efghij"), 0644); err != nil {
		t.Fatalf("failed to write media file: %v", err)
	}

	queue := Playlist{
		filepath.Join(tmp, "video1.mp4"),
		filepath.Join(tmp, "video2.mp4"),
	}
	totalBytes, err := queue.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalBytes != 10 {
		t.Fatalf("unexpected total size: got %d want 10", totalBytes)
	}
}

func TestValidate_NamesFirstMissingFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "video1.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write media file: %v", err)
	}
	missing := filepath.Join(tmp, "video2.mp4")

	queue := Playlist{filepath.Join(tmp, "video1.mp4"), missing}
	_, err := queue.Validate()

	var missingErr *MissingFileError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if missingErr.Path != missing {
		t.Fatalf("unexpected missing path: got %q want %q", missingErr.Path, missing)
	}
}

func TestValidate_DirectoryCountsAsMissing(t *testing.T) {
	tmp := t.TempDir()
	dirPath := filepath.Join(tmp, "video1.mp4")
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	_, err := Playlist{dirPath}.Validate()

	var missingErr *MissingFileError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFileError for directory, got %v", err)
	}
}

func TestExportM3U8_WritesPathsInOrder(t *testing.T) {
	queue := Playlist{"/media/video1.mp4", "/media/video3.mp4"}
	outPath := filepath.Join(t.TempDir(), "playlist.m3u8")

	if err := queue.ExportM3U8(outPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read exported playlist: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "#EXTM3U") {
		t.Fatalf("expected M3U8 header, got %q", out)
	}
	if !strings.Contains(out, "#EXT-X-ENDLIST") {
		t.Fatalf("expected closed VOD playlist, got %q", out)
	}
	first := strings.Index(out, "/media/video1.mp4")
	second := strings.Index(out, "/media/video3.mp4")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected both paths in playlist order, got %q", out)
	}
}
