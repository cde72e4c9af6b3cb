package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/robotnik-ag/robotnik/internal/handlers/v1alpha1/mappers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ProfilesOptions struct {
	GlobalOptions

	Output string
}

func DefaultProfilesOptions() *ProfilesOptions {
	return &ProfilesOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        textFormat,
	}
}

func NewCmdProfiles() *cobra.Command {
	o := DefaultProfilesOptions()
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the calculator profiles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ProfilesOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.ProfileFile, "profile-file", o.ProfileFile, "YAML file with additional profiles")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *ProfilesOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ProfilesOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *ProfilesOptions) Run(ctx context.Context, args []string) error {
	catalog, err := o.Catalog()
	if err != nil {
		return err
	}

	profiles := mappers.ProfilesToAPI(catalog.Profiles(), catalog.Fallback())
	if ok, err := printStructured(o.out, o.Output, profiles); ok {
		return err
	}

	w := tabwriter.NewWriter(o.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tLAND SIZE\tROBOTS\tDESCRIPTION")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%t\t%g\t%d\t%s\n", p.Name, p.Default, p.Defaults.LandSize, p.Defaults.RobotCount, p.Description)
	}
	return w.Flush()
}
