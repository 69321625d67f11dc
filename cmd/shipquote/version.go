package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"shipquote/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			switch output {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), info.Text())
			case "short":
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
			case outputJSON:
				s, err := info.JSON()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), s)
			case outputYAML:
				b, err := yaml.Marshal(info)
				if err != nil {
					return fmt.Errorf("yaml.Marshal: %w", err)
				}

				fmt.Fprint(cmd.OutOrStdout(), string(b))
			default:
				return fmt.Errorf("unknown output format %q", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, short, json, yaml)")

	return cmd
}
