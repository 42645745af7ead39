package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doge0420/qrgo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the qrgo defaults file",
}

var configInitCmd = &cobra.Command{
	Use:   "init PATH",
	Short: "Write a defaults YAML file at PATH",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := config.Save(path, config.Defaults()); err != nil {
		return fmt.Errorf("writing defaults: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote defaults to %s\n", path)
	return nil
}
