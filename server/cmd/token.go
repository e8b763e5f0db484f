/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/ponyo877/pyxl/server/auth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <actor_id>",
	Short: "Issues a bearer token for an actor.",
	Long: `Signs a bearer token whose subject is the given actor id with the
configured jwt_secret. Clients send it as "Authorization: Bearer <token>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := auth.NewAuthenticator(viper.GetString(jwtSecretKey), viper.GetDuration(tokenTTLKey))
		if err != nil {
			return err
		}
		token, err := a.Issue(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
