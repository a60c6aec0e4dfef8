package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winfit/internal/config"
)

func newConfigCmd(e *env, global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and its includes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, _, err := global.load(e)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "config: ok (%d file(s), %d profile(s))\n", len(res.Files), len(res.Config.Profiles))
			return nil
		},
	})

	var defaults bool
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			if !defaults {
				res, _, err := global.load(e)
				if err != nil {
					return err
				}
				cfg = res.Config
				for _, f := range res.Files {
					fmt.Fprintf(e.stdout, "# source: %s\n", f)
				}
			}
			data, err := yaml.Marshal(cfg.ToRaw())
			if err != nil {
				return err
			}
			_, err = e.stdout.Write(data)
			return err
		},
	}
	printCmd.Flags().BoolVar(&defaults, "defaults", false, "Print built-in defaults (no files)")
	cmd.AddCommand(printCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(e.stdout, path)
			return nil
		},
	})

	return cmd
}
