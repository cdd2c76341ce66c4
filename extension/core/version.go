// version.go implements the version command. It needs no site, so it is
// listed in NoSiteCommands and works in any directory.

package core

import (
	"encoding/json"
	"fmt"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print build tag, build time, git commit, Go version and platform.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, _ := c.Flags().GetString(extension.FlagFormat)
			info := version.Get()
			switch format {
			case "json":
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Out(), string(data))
			case "yaml":
				return yaml.NewEncoder(cmd.Out()).Encode(info)
			case "", "text":
				fmt.Fprint(cmd.Out(), info.String())
			default:
				return fmt.Errorf("invalid format %q (valid: text, json, yaml)", format)
			}
			return nil
		},
	}
	c.Flags().String(extension.FlagFormat, "text", "text, json or yaml")
	return c
}
