package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/robotnik-ag/robotnik/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	Output string

	out io.Writer
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print RobotNik version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.out = cmd.OutOrStdout()
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	_, err := fmt.Fprintf(o.out, "RobotNik Version: %s\n", versionInfo.String())
	return err
}
