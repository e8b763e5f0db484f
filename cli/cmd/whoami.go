/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Prints the actor id carried by the owner token.",
	Long: `Prints the subject of the configured owner token. The token is decoded
locally; its signature is checked by the server on every write.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if ownerToken == "" {
			fmt.Println("anonymous (no owner_token configured)")
			return
		}
		claims := jwt.RegisteredClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(ownerToken, &claims); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding owner_token: %v\n", err)
			return
		}
		fmt.Println(claims.Subject)
		if claims.ExpiresAt != nil {
			exp := claims.ExpiresAt.Time
			state := "valid until"
			if time.Now().After(exp) {
				state = "expired at"
			}
			fmt.Printf("token %s %s\n", state, exp.Local().Format(time.DateTime))
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
