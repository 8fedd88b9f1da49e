// Package app builds cobra-based command line applications with a shared
// option-validation and flag-registration lifecycle.
package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CliOptions abstracts an option group that can register flags and validate
// itself.
type CliOptions interface {
	AddFlags(fs *pflag.FlagSet)
	Validate() []error
}

// RunFunc defines the application's startup callback function.
type RunFunc func(basename string) error

// App is the main structure of a cli application.
type App struct {
	name        string
	basename    string
	description string
	options     CliOptions
	runFunc     RunFunc
	silence     bool
	cmd         *cobra.Command
}

// Option defines optional parameters for initializing the application
// structure.
type Option func(*App)

// WithOptions opens the application's function to read from the command line
// or read parameters from the configuration file.
func WithOptions(opts CliOptions) Option {
	return func(a *App) {
		a.options = opts
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithRunFunc is used to set the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDefaultValidArgs rejects any positional arguments.
func WithDefaultValidArgs() Option {
	return func(a *App) {
		a.cmd.Args = cobra.NoArgs
	}
}

// WithSilence suppresses the startup banner.
func WithSilence() Option {
	return func(a *App) {
		a.silence = true
	}
}

// NewApp creates a new application instance.
func NewApp(name string, basename string, opts ...Option) *App {
	a := &App{
		name:     name,
		basename: basename,
	}
	a.cmd = &cobra.Command{
		Use:           basename,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, o := range opts {
		o(a)
	}

	a.cmd.Short = a.name
	a.cmd.Long = a.description
	a.cmd.RunE = a.runCommand

	if a.options != nil {
		a.options.AddFlags(a.cmd.Flags())
	}

	return a
}

// Command returns the underlying cobra command.
func (a *App) Command() *cobra.Command {
	return a.cmd
}

// Run launches the application.
func (a *App) Run() {
	if err := a.cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if !a.silence {
		fmt.Printf("%s starting %s ...\n", color.GreenString("==>"), a.name)
	}

	if a.options != nil {
		if errs := a.options.Validate(); len(errs) != 0 {
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
			}
			return fmt.Errorf("invalid configuration, %d error(s) found", len(errs))
		}
	}

	if a.runFunc != nil {
		return a.runFunc(a.basename)
	}

	return nil
}
