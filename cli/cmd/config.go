/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configKeys = []string{ownerTokenKey, grpcServerAddressKey}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [key [value]]",
	Short: "Gets or sets client configuration.",
	Long: `Manages configuration for the pyxl client.
Without arguments, prints every known key. With a key, prints its value.
With a key and a value, stores the value in the config file.`,
	Args: cobra.MaximumNArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return configKeys, cobra.ShellCompDirectiveNoFileComp
	},
	// no server connection needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		switch len(args) {
		case 0:
			for _, k := range configKeys {
				fmt.Printf("%s: %s\n", k, viper.GetString(k))
			}
		case 1:
			fmt.Println(viper.GetString(args[0]))
		default:
			if err := setConfig(args[0], args[1]); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
				return
			}
			fmt.Printf("%s set\n", args[0])
		}
	},
}

func setConfig(key, value string) error {
	known := false
	for _, k := range configKeys {
		known = known || k == key
	}
	if !known {
		return fmt.Errorf("unknown key '%s'", key)
	}
	viper.Set(key, value)
	switch key {
	case ownerTokenKey:
		ownerToken = value
	case grpcServerAddressKey:
		grpcServerAddress = value
	}

	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(home, ".pyxl.yaml"))
}

func init() {
	rootCmd.AddCommand(configCmd)
}
