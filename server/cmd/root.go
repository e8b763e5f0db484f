/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	logLevelKey  = "log_level"
	logFormatKey = "log_format"
	jwtSecretKey = "jwt_secret"
	tokenTTLKey  = "token_ttl"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pyxl",
	Short: "Shared persistent pixel canvas server.",
	Long: `pyxl stores pixels placed in rooms and broadcasts every placement to
the clients watching that room over gRPC and WebSocket.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(viper.GetString(logLevelKey), viper.GetString(logFormatKey))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pyxl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().String("jwt-secret", "", "HS256 secret used to sign and verify bearer tokens")
	rootCmd.PersistentFlags().Duration("token-ttl", 24*time.Hour, "Lifetime of issued tokens (0 for no expiry)")

	viper.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(logFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag(jwtSecretKey, rootCmd.PersistentFlags().Lookup("jwt-secret"))
	viper.BindPFlag(tokenTTLKey, rootCmd.PersistentFlags().Lookup("token-ttl"))
}

// initConfig reads in .env, config file and ENV variables if set.
func initConfig() {
	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("pyxl")
	}

	viper.SetEnvPrefix("PYXL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // PYXL_JWT_SECRET, PYXL_DB_PATH, ...

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func setupLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	logrus.SetLevel(lvl)
	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format '%s'", format)
	}
	return nil
}
