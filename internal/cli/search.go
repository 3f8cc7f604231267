package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Godevs04/tunesnip/internal/catalog"
	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/errors"
	"github.com/Godevs04/tunesnip/internal/wizard"
)

var (
	searchPage int
	searchPick bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the song catalog",
	Long: `Searches the song catalog and lists matching tracks.

With --pick (or no query on a terminal), opens an interactive picker
instead and prints the selected track as JSON.`,
	Args: cobra.MinimumNArgs(0),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page")
	searchCmd.Flags().BoolVar(&searchPick, "pick", false, "pick a track interactively")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client := newCatalogClient()

	if searchPick || wizard.NeedsTrack(args) {
		return runSearchPick(client, args)
	}
	query := strings.Join(args, " ")

	ctx := context.Background()
	result, err := client.Search(ctx, query, searchPage, cfg.Catalog.PageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if len(result.Items) == 0 {
		fmt.Println("No results found")
		return nil
	}

	outputSearchTable(result)
	return nil
}

func outputSearchTable(result *catalog.SearchResult) {
	t := NewTable("ID", "TITLE", "ARTIST", "LENGTH", "AUDIO")
	for _, track := range result.Items {
		audio := "-"
		if track.HasAudio() {
			audio = "yes"
		}
		t.Row(
			track.ID,
			TruncateString(track.Title, 40),
			TruncateString(track.Artist, 30),
			FormatDuration(int(track.Duration.Seconds())),
			audio,
		)
	}
	t.Flush()

	p := result.Pagination
	NormalF("\nPage %d of %d (%s tracks total)",
		p.Page, p.Pages, humanize.Comma(int64(p.Total)))
}

func runSearchPick(client *catalog.Client, args []string) error {
	interactive := wizard.NewInteractive(func(query string) ([]core.Track, error) {
		result, err := client.Search(context.Background(), query, 1, cfg.Catalog.PageSize)
		if err != nil {
			return nil, err
		}
		return result.Items, nil
	})
	if !interactive.CanInteract() {
		if wizard.NeedsTrack(args) {
			return fmt.Errorf("search requires a query when not run from a terminal")
		}
		return fmt.Errorf("--pick requires an interactive terminal")
	}

	track, err := interactive.PromptTrack()
	if err != nil {
		return err
	}
	if track == nil {
		Minimal("null")
		return nil
	}

	out, err := json.MarshalIndent(track, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newCatalogClient() *catalog.Client {
	client := catalog.New(cfg.Catalog.BaseURL)
	if Verbose() {
		client.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	return client
}
