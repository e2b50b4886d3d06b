package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/videoloop/videoloop-cli/internal/config"
	"github.com/videoloop/videoloop-cli/internal/launcher"
	"github.com/videoloop/videoloop-cli/internal/playlist"
	"github.com/videoloop/videoloop-cli/internal/ui"
)

const configMarker = "--------------------"

func main() {
	args := config.ParseArgs()
	if err := run(args); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func run(args *config.Args) error {
	configPath, err := config.Resolve(args.ConfigPath)
	if err != nil {
		return err
	}
	raw, err := config.Read(configPath)
	if err != nil {
		return err
	}

	queue, err := playlist.Build(config.Parse(raw), args.MediaDir)
	if err != nil {
		return err
	}
	cmd := launcher.BuildCommand(args.Player, queue)

	if args.Debug {
		printDebug(configPath, raw, cmd)
		return nil
	}

	if args.ExportM3U8 != "" {
		if err := queue.ExportM3U8(args.ExportM3U8); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Wrote %s to %s", countVideos(len(queue)), args.ExportM3U8))
		return nil
	}

	totalBytes, err := queue.Validate()
	if err != nil {
		return err
	}
	ui.PrintVideo(fmt.Sprintf("Queued %s (%s), handing off to %s",
		countVideos(len(queue)), humanize.Bytes(uint64(totalBytes)), args.Player))
	return launcher.Launch(cmd)
}

// printDebug shows the raw config framed by marker lines and the
// fully-quoted launch command. Nothing is validated or executed.
func printDebug(configPath string, raw []byte, cmd launcher.Command) {
	ui.PrintHeader("Debug")
	ui.PrintInfo("Files are not validated and nothing is launched")
	ui.PrintKeyValue("Config File", configPath, ui.ColorCyan)
	fmt.Println(configMarker)
	fmt.Print(string(raw))
	if !strings.HasSuffix(string(raw), "\n") {
		fmt.Println()
	}
	fmt.Println(configMarker)
	ui.PrintSection("Launch command")
	fmt.Println(cmd.String())
}

func countVideos(n int) string {
	if n == 1 {
		return "1 video"
	}
	return fmt.Sprintf("%d videos", n)
}
