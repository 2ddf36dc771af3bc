package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scopeclient/serenity/model"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions [bits]",
	Short: "render a permission bit-vector as named flags",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var perms model.Permissions
		if err := perms.UnmarshalText([]byte(args[0])); err != nil {
			bailf("invalid permission bits: %v", err)
		}
		color.New(color.Bold).Printf("%d (0x%x)\n", perms.Bits(), perms.Bits())
		for _, name := range perms.Names() {
			cmd.Printf("  %s\n", name)
		}
		if perms.Administrator() {
			color.Yellow("administrator bypasses channel permission overwrites")
		}
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}
