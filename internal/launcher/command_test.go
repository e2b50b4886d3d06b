package launcher

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildCommand_SingleVideoOmitsHardwareFlag(t *testing.T) {
	cmd := BuildCommand("vplayer", []string{"/media/video1.mp4"})

	want := []string{"vplayer", "-l", "/media/video1.mp4"}
	if !reflect.DeepEqual(cmd.Argv(), want) {
		t.Fatalf("unexpected argv: got %v want %v", cmd.Argv(), want)
	}
}

func TestBuildCommand_TwoVideosAddHardwareFlag(t *testing.T) {
	cmd := BuildCommand("vplayer", []string{"/media/video1.mp4", "/media/video3.mp4"})

	want := []string{"vplayer", "-l", "--hw", "/media/video1.mp4", "/media/video3.mp4"}
	if !reflect.DeepEqual(cmd.Argv(), want) {
		t.Fatalf("unexpected argv: got %v want %v", cmd.Argv(), want)
	}
}

func TestBuildCommand_PathsKeepPlaylistOrder(t *testing.T) {
	paths := []string{"/m/video9.mp4", "/m/video1.mp4", "/m/video5.mp4"}

	cmd := BuildCommand("vplayer", paths)

	if !reflect.DeepEqual(cmd.Args[2:], paths) {
		t.Fatalf("unexpected path order: got %v want %v", cmd.Args[2:], paths)
	}
}

func TestCommandString_QuotesEveryToken(t *testing.T) {
	cmd := BuildCommand("vplayer", []string{"/media/my video.mp4"})

	got := cmd.String()
	want := `"vplayer" "-l" "/media/my video.mp4"`
	if got != want {
		t.Fatalf("unexpected rendering: got %s want %s", got, want)
	}
}

func TestCommandString_ShowsHardwareFlag(t *testing.T) {
	cmd := BuildCommand("vplayer", []string{"/m/video1.mp4", "/m/video2.mp4"})

	if !strings.Contains(cmd.String(), `"--hw"`) {
		t.Fatalf("expected hardware flag in rendering, got %s", cmd.String())
	}
}
