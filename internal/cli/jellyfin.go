package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/depeter/scrubbar/internal/app"
	"github.com/depeter/scrubbar/internal/cache"
	"github.com/depeter/scrubbar/internal/constants"
	"github.com/depeter/scrubbar/internal/jellyfin"
	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/timefmt"
)

var (
	loginURL      string
	loginUser     string
	loginPassword string

	searchLimit int
)

var jellyfinCmd = &cobra.Command{
	Use:   "jellyfin",
	Short: "Play music from a Jellyfin server",
	Long:  `Commands for signing in to a Jellyfin server, finding tracks and playing them.`,
}

var jellyfinLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the access token",
	Long: `Authenticate against a Jellyfin server and save the server URL, user and
access token to the config file. Values missing from the flags are asked for
on the terminal. The password is not stored.`,
	Args: cobra.NoArgs,
	RunE: runJellyfinLogin,
}

var jellyfinSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for tracks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJellyfinSearch,
}

var jellyfinPlayCmd = &cobra.Command{
	Use:   "play <item-id>",
	Short: "Stream a track",
	Long: `Stream a track by item id, as printed by 'scrubbar jellyfin search'.
Playback start, progress and stop are reported to the server.`,
	Args: cobra.ExactArgs(1),
	RunE: runJellyfinPlay,
}

func init() {
	jellyfinLoginCmd.Flags().StringVar(&loginURL, "url", "", "server URL (default: from config)")
	jellyfinLoginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "user name (default: from config)")
	jellyfinLoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (default: $SCRUBBAR_PASSWORD, else prompt)")

	jellyfinSearchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")

	jellyfinCmd.AddCommand(jellyfinLoginCmd)
	jellyfinCmd.AddCommand(jellyfinSearchCmd)
	jellyfinCmd.AddCommand(jellyfinPlayCmd)
	rootCmd.AddCommand(jellyfinCmd)
}

// jellyfinClient returns a client for the configured server with the stored token.
func jellyfinClient() (*jellyfin.Client, error) {
	if cfg.Server.URL == "" || cfg.Server.Token == "" {
		return nil, errors.New("not signed in. Run 'scrubbar jellyfin login' first")
	}
	client := jellyfin.NewClient(cfg.Server.URL)
	client.SetToken(cfg.Server.Token, cfg.Server.UserID)
	return client, nil
}

func runJellyfinLogin(cmd *cobra.Command, args []string) error {
	url := loginURL
	if url == "" {
		url = cfg.Server.URL
	}
	user := loginUser
	if user == "" {
		user = cfg.Server.Username
	}
	password := loginPassword
	if password == "" {
		password = os.Getenv("SCRUBBAR_PASSWORD")
	}

	if loginURL == "" || loginUser == "" || password == "" {
		p, err := newPrompter()
		if err != nil {
			return err
		}
		url = p.ask("Server URL", url)
		user = p.ask("User", user)
		if password == "" {
			password, err = p.password("Password")
		}
		p.Close()
		if err != nil {
			return err
		}
	}
	if url == "" || user == "" {
		return errors.New("server URL and user are required")
	}

	client := jellyfin.NewClient(url)
	if err := client.Authenticate(user, password); err != nil {
		return err
	}

	cfg.Server.URL = client.ServerURL()
	cfg.Server.Username = user
	cfg.Server.Token = client.Token()
	cfg.Server.UserID = client.UserID()

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Signed in to %s as %s\n", cfg.Server.URL, user)
	return nil
}

func runJellyfinSearch(cmd *cobra.Command, args []string) error {
	client, err := jellyfinClient()
	if err != nil {
		return err
	}
	tracks, err := client.SearchTracks(strings.Join(args, " "), searchLimit)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(tracks)
	}
	if len(tracks) == 0 {
		fmt.Println("No tracks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tALBUM\tLENGTH")
	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title(), t.Album, timefmt.Format(t.Duration()))
	}
	return w.Flush()
}

func runJellyfinPlay(cmd *cobra.Command, args []string) error {
	client, err := jellyfinClient()
	if err != nil {
		return err
	}
	track, err := client.GetTrack(args[0])
	if err != nil {
		return err
	}

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

	sessionID := jellyfin.NewPlaySessionID()
	interval := time.Duration(cfg.Report.IntervalSeconds) * time.Second
	if interval > 0 {
		rep := jellyfin.NewReporter(client, el, track.ID, sessionID, interval, l)
		defer rep.Wait()
		defer rep.Stop()
	}

	if err := el.Load(client.GetAudioStreamURL(track.ID, sessionID)); err != nil {
		return err
	}
	g.SetTitle(track.Title())

	if url, ok := client.GetArtworkURL(track, constants.ArtworkSize); ok {
		images, err := cache.NewImageCache(imageCacheDir(), l)
		if err != nil {
			log.Printf("Artwork disabled: %v", err)
		} else {
			images.LoadAsync(url, g.SetArtwork)
		}
	}

	return app.Run(g, track.Title())
}
