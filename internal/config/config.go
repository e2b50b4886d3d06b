// Package config parses CLI arguments and the videos.conf file.
//
// The config format is one key=value pair per line. Parsing is permissive:
// lines without a "=" are skipped rather than rejected, whitespace around
// keys and values is insignificant, and unrecognized keys are ignored by
// the playlist layer. Entry order and duplicate keys are preserved.
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
)

// Defaults for the fixed external collaborators. All are overridable on
// the command line.
const (
	ConfigFileName  = "videos.conf"
	DefaultMediaDir = "/var/lib/videoloop/media"
	DefaultPlayer   = "vplayer"
)

// ErrConfigNotFound indicates no config file exists at any candidate path.
var ErrConfigNotFound = errors.New("config file not found")

// Entry is a single key=value pair from the config file, in file order.
type Entry struct {
	Key   string
	Value string
}

// Args holds CLI arguments parsed by go-arg.
type Args struct {
	Debug      bool   `arg:"--debug" help:"Print the config and the would-be launch command without validating files or launching."`
	ConfigPath string `arg:"--config" placeholder:"PATH" help:"Config file location (default: ./videos.conf, then ~/.config/videoloop/videos.conf)."`
	MediaDir   string `arg:"--media-dir" placeholder:"DIR" help:"Directory holding the video files."`
	Player     string `arg:"--player" placeholder:"EXE" help:"Player executable to hand off to."`
	ExportM3U8 string `arg:"--export-m3u8" placeholder:"PATH" help:"Write the playlist as an M3U8 file and exit without launching."`
}

// Description provides help text for go-arg.
func (Args) Description() string {
	return "videoloop launches an external player with the videos enabled in videos.conf."
}

// ParseArgs parses the command line and applies defaults.
func ParseArgs() *Args {
	var args Args
	arg.MustParse(&args)
	applyDefaults(&args)
	return &args
}

func applyDefaults(args *Args) {
	if args.MediaDir == "" {
		args.MediaDir = DefaultMediaDir
	}
	if args.Player == "" {
		args.Player = DefaultPlayer
	}
}

// Resolve returns the config path to load. An explicit path wins; otherwise
// candidate locations are tried in order: ./videos.conf, then
// ~/.config/videoloop/videos.conf.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w at %s", ErrConfigNotFound, explicit)
			}
			return "", fmt.Errorf("stat config %s: %w", explicit, err)
		}
		return explicit, nil
	}

	candidates := []string{ConfigFileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".config", "videoloop", ConfigFileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrConfigNotFound, strings.Join(candidates, ", "))
}

// Read returns the raw config file contents. A missing file maps to
// ErrConfigNotFound so callers can report it uniformly.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return data, nil
}

// Parse splits raw config contents into ordered entries. Each line is split
// on the first "=" with surrounding whitespace trimmed from both sides.
// Lines with no "=" or an empty key are skipped.
func Parse(data []byte) []Entry {
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: strings.TrimSpace(value)})
	}
	return entries
}

// Load reads and parses the config file at path.
func Load(path string) ([]Entry, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}
