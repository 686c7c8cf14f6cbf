package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/depeter/scrubbar/internal/app"
	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/mpv"
)

var (
	playTitle string

	demoDuration float64
	demoTitle    string
	demoAutoplay bool
)

var playCmd = &cobra.Command{
	Use:   "play <file|url>",
	Short: "Play a local file or URL",
	Long:  `Open the player window on a local audio file or any URL mpv can stream.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the player on a silent simulated track",
	Long: `Open the player window on a simulated track. No audio is played; the
clock advances with the window's tick rate. Useful to try the seek bar
without libmpv or a server.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	playCmd.Flags().StringVarP(&playTitle, "title", "t", "", "title to show (default: file name)")

	demoCmd.Flags().Float64VarP(&demoDuration, "duration", "d", 215, "track length in seconds")
	demoCmd.Flags().StringVarP(&demoTitle, "title", "t", "Demo Track", "title to show")
	demoCmd.Flags().BoolVar(&demoAutoplay, "autoplay", true, "start playing right away")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
}

// newMPV creates the audio backend from the playback config.
func newMPV(l *loop.Loop) (*mpv.Element, error) {
	return mpv.New(mpv.Options{
		Volume:      cfg.Playback.Volume,
		AudioOutput: cfg.Playback.AudioOutput,
		StartPaused: cfg.Playback.StartPaused,
	}, l)
}

func runPlay(cmd *cobra.Command, args []string) error {
	l := loop.New()
	el, err := newMPV(l)
	if err != nil {
		return err
	}
	defer el.Close()

	g, err := app.NewGame(cfg, el, l)
	if err != nil {
		return err
	}
	if err := el.Load(args[0]); err != nil {
		return err
	}

	title := playTitle
	if title == "" {
		title = filepath.Base(args[0])
	}
	g.SetTitle(title)
	return app.Run(g, title)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !(demoDuration > 0) {
		return fmt.Errorf("duration must be positive, got %v", demoDuration)
	}

	l := loop.New()
	sim := media.NewSim()
	g, err := app.NewGame(cfg, sim, l)
	if err != nil {
		return err
	}
	g.OnTick = func(dt time.Duration) { sim.Advance(dt) }

	sim.Load(demoDuration)
	g.SetTitle(demoTitle)
	if demoAutoplay {
		if err := sim.Play(); err != nil {
			return err
		}
	}
	return app.Run(g, demoTitle)
}
