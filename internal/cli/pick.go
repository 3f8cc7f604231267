package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Godevs04/tunesnip/internal/tui"
	"github.com/Godevs04/tunesnip/internal/wizard"
)

var pickRemove bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a music clip interactively",
	Long: `Opens the clip picker: search the catalog, trim a clip on the
timeline, and preview it on loop. On confirm the clip is printed to
stdout as JSON; on cancel or removal "null" is printed instead.`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickRemove, "remove", false, "remove the attached clip instead of picking one")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if pickRemove {
		return runPickRemove()
	}

	if !wizard.IsTerminal() {
		return fmt.Errorf("pick requires an interactive terminal")
	}

	result, err := tui.Run(cfg)
	if err != nil {
		return fmt.Errorf("clip picker failed: %w", err)
	}

	if result.Clip == nil {
		// Cancelled or removed: the caller treats null as "no clip".
		fmt.Println("null")
		return nil
	}

	out, err := json.MarshalIndent(result.Clip, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if Verbose() {
		fmt.Fprintf(os.Stderr, "clip: %s — %s (%.1fs)\n",
			result.Clip.Artist, result.Clip.Title,
			result.Clip.EndSeconds-result.Clip.StartSeconds)
	}
	return nil
}

func runPickRemove() error {
	confirmed := true
	if wizard.IsTerminal() {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Remove music from this post?").
					Affirmative("Remove").
					Negative("Keep").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if !confirmed {
		return fmt.Errorf("removal cancelled")
	}

	fmt.Println("null")
	return nil
}
