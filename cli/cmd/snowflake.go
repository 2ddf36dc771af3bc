package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scopeclient/serenity/model"
)

var snowflakeCmd = &cobra.Command{
	Use:   "snowflake [id]",
	Short: "decode a snowflake identifier",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var id model.GenericID
		if err := id.UnmarshalText([]byte(args[0])); err != nil {
			bailf("invalid snowflake: %v", err)
		}
		value := id.Get()
		color.New(color.Bold).Printf("%d\n", value)
		cmd.Printf("created at: %s\n", id.CreatedAt())
		cmd.Printf("worker:     %d\n", (value&0x3e0000)>>17)
		cmd.Printf("process:    %d\n", (value&0x1f000)>>12)
		cmd.Printf("increment:  %d\n", value&0xfff)
	},
}

func init() {
	rootCmd.AddCommand(snowflakeCmd)
}
