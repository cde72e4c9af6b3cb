package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "robotnik-api",
	Short: "Serve the RobotNik site, savings calculator API and waitlist.",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
