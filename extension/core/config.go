// config.go implements "wpblock config".
//
// Config cascades like git: local (.wpblock/config.yaml) takes precedence
// over global (~/.wpblock/config.yaml). --local forces the local file even
// before it exists.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values. Secrets are shown masked.

  wpblock config                        # show config
  wpblock config site.url               # show one value
  wpblock config site.url https://a.b   # set a value

Configuration locations:
  Global: ~/.wpblock/config.yaml
  Local:  .wpblock/config.yaml (created by init)

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.wpblock/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		// Map order is random; sort for stable output.
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}
		log.Event("core:config", "list").Write(nil)

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Target(args[0]).Write(err)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Target(args[0]).Write(err)
			return err
		}
		saveErr := cfg.Save()
		// value not logged: it may be a password or DSN
		log.Event("core:config", "set").Target(args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return fmt.Errorf("config save: %w", saveErr)
		}
		// Echo the masked form so secrets never reach the terminal history.
		shown, _ := cfg.Get(args[0])
		cmd.Success(fmt.Sprintf("%s = %s (%s)", args[0], shown, scopeName))
	}
	return nil
}
