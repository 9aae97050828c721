// Package cli provides the command-line interface for homesol.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diazbsofia/homesolution/internal/app"
	"github.com/diazbsofia/homesolution/internal/domain"
)

// Command group IDs.
const (
	groupScenario = "scenario"
	groupSetup    = "setup"
)

// envPrefix is prepended to environment overrides, e.g. HOMESOL_LOG_LEVEL.
const envPrefix = "HOMESOL"

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// env carries state shared by every subcommand of one invocation.
type env struct {
	newContainer ContainerFactory
	viper        *viper.Viper
	container    *app.Container
}

// load builds the container from flags and environment and prints config warnings.
func (e *env) load(cmd *cobra.Command) error {
	format := e.viper.GetString("output-format")
	if e.viper.GetBool("json") {
		format = domain.FormatJSON
	}
	c, err := e.newContainer(app.Options{
		ConfigPath: e.viper.GetString("config"),
		LogLevel:   e.viper.GetString("log-level"),
		Format:     format,
	})
	if err != nil {
		return err
	}
	for _, w := range c.AppConfig.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	e.container = c
	return nil
}

// close releases the container built by load, if any.
func (e *env) close() error {
	if e.container == nil {
		return nil
	}
	err := e.container.Close()
	e.container = nil
	return err
}

// releaseAfterRun wraps every RunE under cmd so the container is closed whether or not
// the command fails. Cobra skips post-run hooks after a RunE error.
func (e *env) releaseAfterRun(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() { err = errors.Join(err, e.close()) }()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		e.releaseAfterRun(sub)
	}
}

// NewRootCommand creates the root command for homesol.
// newContainer is called lazily so that flags and environment can shape configuration.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	e := &env{newContainer: newContainer, viper: viper.New()}
	e.viper.SetEnvPrefix(envPrefix)
	e.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.viper.AutomaticEnv()

	root := &cobra.Command{
		Use:   "homesol",
		Short: "Home repair project costing CLI",
		Long: `homesol tracks home repair projects: employees, tasks, delays and costs.

A scenario file registers employees and projects and then applies assignments,
delays and closures in order. The report shows each project's state and cost.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return e.load(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to the local config file (default ./homesol.toml)")
	root.PersistentFlags().Bool("json", false, "Output JSON")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	_ = e.viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = e.viper.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = e.viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = e.viper.BindEnv("output-format", envPrefix+"_OUTPUT_FORMAT")

	root.AddGroup(
		&cobra.Group{ID: groupScenario, Title: "Scenario Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(e)
	runCmd.GroupID = groupScenario

	showCmd := newShowCommand(e)
	showCmd.GroupID = groupScenario

	delaysCmd := newDelaysCommand(e)
	delaysCmd.GroupID = groupScenario

	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	versionCmd := newVersionCommand(version)
	versionCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		showCmd,
		delaysCmd,
		configCmd,
		versionCmd,
	)
	e.releaseAfterRun(root)

	return root
}

// newVersionCommand creates the version command.
func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "homesol %s\n", version)
			return err
		},
	}
}
