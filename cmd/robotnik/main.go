package main

import (
	"os"

	"github.com/robotnik-ag/robotnik/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewRobotnikCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRobotnikCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "robotnik [flags] [options]",
		Short: "robotnik estimates what weeding robots save on a farm.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalculate())
	cmd.AddCommand(cli.NewCmdProfiles())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
