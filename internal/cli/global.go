package cli

import (
	"fmt"
	"io"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GlobalOptions struct {
	Profile     string
	ProfileFile string

	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Profile: estimation.ProfileROI,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Profile, "profile", "p", o.Profile, "Name of the calculator profile")
	fs.StringVar(&o.ProfileFile, "profile-file", o.ProfileFile, "YAML file with additional profiles")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Catalog returns the built-in profiles plus the ones read from ProfileFile. Loaded
// profiles replace built-ins of the same name.
func (o *GlobalOptions) Catalog() (*estimation.Catalog, error) {
	if o.ProfileFile == "" {
		return estimation.DefaultCatalog(), nil
	}

	loaded, err := estimation.LoadProfiles(o.ProfileFile)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}

	profiles := append(estimation.DefaultCatalog().Profiles(), loaded...)
	return estimation.NewCatalog(estimation.ProfileROI, profiles...)
}
