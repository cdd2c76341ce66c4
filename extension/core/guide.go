// guide.go implements "wpblock guide". Terminal output is rendered with
// glamour; pipes get raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/guide"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the wpblock usage guide",
		Long: `Outputs the wpblock guide.

  wpblock guide                   # overview
  wpblock guide backends          # snapshot, REST and database backends
  wpblock guide synced-patterns   # creating and updating synced patterns`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Target(name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", "))
			}

			if cmd.Out() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
				// Fall back to raw markdown if rendering fails.
				if rendered, err := glamour.Render(content, "dark"); err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}
			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
