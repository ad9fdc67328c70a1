// Command facepreview renders the analog clock face to a PNG file, for
// checking the face at a size, roundness and time without the window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"desktop-clock/internal/clockface"
	"desktop-clock/internal/config"
	"desktop-clock/internal/settings"
	"desktop-clock/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag

	Size      string `help:"Face size tier." enum:"small,medium,large" default:"medium"`
	Roundness int    `help:"Corner roundness, 0 (square) to 100 (circle)." default:"100"`
	At        string `help:"Time shown, as HH:MM:SS." default:"10:10:30"`
	Out       string `help:"Output PNG file." type:"path" default:"face.png"`
	Stored    bool   `help:"Use the size and roundness from the stored clock settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("facepreview"),
		kong.Description("Render the analog clock face to a PNG"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := run(); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run() error {
	at, err := time.Parse("15:04:05", CLI.At)
	if err != nil {
		return fmt.Errorf("invalid --at: %w", err)
	}

	c := settings.Defaults()
	c.AnalogSize = settings.Size(CLI.Size)
	c.AnalogRoundness = CLI.Roundness

	if CLI.Stored {
		stored, err := loadStored()
		if err != nil {
			return err
		}
		c.AnalogSize = stored.AnalogSize
		c.AnalogRoundness = stored.AnalogRoundness
	}
	c = c.Normalize()

	frame := clockface.NewFrame(at, clockface.Detect())
	face := clockface.NewAnalog(nil).RenderSettings(c, frame)

	data, err := clockface.EncodePNG(face)
	if err != nil {
		return fmt.Errorf("failed to encode face: %w", err)
	}
	if err := os.WriteFile(CLI.Out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", CLI.Out, err)
	}

	fmt.Printf("%s: %dpx, roundness %d, %s\n", CLI.Out, c.Diameter(), c.AnalogRoundness, at.Format("15:04:05"))
	return nil
}

func loadStored() (settings.ClockSettings, error) {
	cfg, err := config.New()
	if err != nil {
		return settings.ClockSettings{}, err
	}

	store, err := storage.Open(cfg.Get().Storage.Backend, cfg.StorageDir())
	if err != nil {
		return settings.ClockSettings{}, fmt.Errorf("failed to open settings storage: %w", err)
	}
	defer store.Close()

	return settings.New(store).Load(), nil
}
