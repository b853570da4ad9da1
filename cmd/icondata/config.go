// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luoxiaozero/icondata/internal/config"
)

// newConfigCommand creates the `icondata config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage icondata configuration",
		Long: `Manage icondata configuration.

Configuration is read from --config, otherwise from config.cue in:
  - Linux: $XDG_CONFIG_HOME/icondata (~/.config/icondata)
  - macOS: ~/Library/Application Support/icondata
  - Windows: %APPDATA%\icondata
and finally from config.cue in the working directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, app, root)
		},
	})

	var (
		initDir   string
		initForce bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig(initDir, initForce)
			if err != nil {
				return app.fail(cmd, err, root.verbose, "", ExitFailure)
			}
			fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&initDir, "dir", "", "directory to create config.cue in (default is the config directory)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config.cue")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfigPath(cmd, app, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.loadConfig(cmd.Context(), root)
			if err != nil {
				return app.fail(cmd, err, root.verbose, "", ExitFailure)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func (a *App) loadConfig(ctx context.Context, root *rootFlags) (*config.Config, string, error) {
	return a.Config.LoadWithPath(ctx, config.LoadOptions{ConfigFilePath: root.configPath})
}

func showConfig(cmd *cobra.Command, app *App, root *rootFlags) error {
	cfg, path, err := app.loadConfig(cmd.Context(), root)
	if err != nil {
		return app.fail(cmd, err, root.verbose, "", ExitFailure)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("packages"))
	if len(cfg.Packages) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, entry := range cfg.Packages {
		details := []string{"type " + valueStyle.Render(entry.Type.String())}
		if entry.ShortName != "" {
			details = append(details, "short_name "+valueStyle.Render(entry.ShortName))
		}
		if entry.DefaultSize != "" {
			details = append(details, "default_size "+valueStyle.Render(entry.DefaultSize))
		}
		fmt.Fprintf(w, "  - %s (%s)\n", valueStyle.Render(entry.Path), strings.Join(details, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("concurrency"), valueStyle.Render(fmt.Sprint(cfg.Concurrency)))

	manifest := cfg.Output.Manifest
	if manifest == "" {
		manifest = "(disabled)"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  manifest: %s\n", valueStyle.Render(manifest))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("watch"))
	fmt.Fprintf(w, "  debounce: %s\n", valueStyle.Render(cfg.Watch.Debounce.String()))
	fmt.Fprintf(w, "  ignore: %s\n", valueStyle.Render(strings.Join(cfg.Watch.Ignore, ", ")))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprint(cfg.UI.Verbose)))

	return nil
}

func showConfigPath(cmd *cobra.Command, app *App, root *rootFlags) error {
	_, path, err := app.loadConfig(cmd.Context(), root)
	if err != nil {
		return app.fail(cmd, err, root.verbose, "", ExitFailure)
	}
	if path != "" {
		fmt.Fprintf(app.stdout, "Config file: %s\n", path)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return app.fail(cmd, err, root.verbose, "", ExitFailure)
	}
	fmt.Fprintf(app.stdout, "Config file: %s %s\n",
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt),
		SubtitleStyle.Render("(not created)"))
	return nil
}
