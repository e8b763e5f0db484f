/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	pb "github.com/ponyo877/pyxl/grpc"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var (
	cfgFile           string
	ownerToken        string
	grpcServerAddress string
	canvasClient      pb.CanvasServiceClient
	grpcConn          *grpc.ClientConn
	interactive       bool
)

const (
	ownerTokenKey        = "owner_token"
	grpcServerAddressKey = "grpc_server_address"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pyxl-cli",
	Short: "Client for the pyxl shared pixel canvas.",
	Long: `pyxl-cli talks to a pyxl server over gRPC. It creates and removes rooms,
places pixels and follows a room live.

Run without arguments to enter interactive mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return dial()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if interactive || grpcConn == nil {
			return nil
		}
		err := grpcConn.Close()
		grpcConn = nil
		return err
	},
}

func dial() error {
	if grpcConn != nil {
		return nil
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("did not connect to gRPC server: %w", err)
	}
	grpcConn = conn
	canvasClient = pb.NewCanvasServiceClient(conn)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// one‑shot
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	// REPL
	interactive = true
	initConfig()
	if err := dial(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer grpcConn.Close()

	fmt.Println("entering interactive mode, type 'exit' to quit")
	p := prompt.New(
		executeLine,
		completeLine,
		prompt.OptionPrefix("❯❯❯ "),
		prompt.OptionTitle("pyxl-cli"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			in = strings.TrimSpace(in)
			return breakline && (in == "exit" || in == "quit")
		}),
	)
	p.Run()
}

func executeLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || line == "exit" || line == "quit" {
		return
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing input:", err)
		return
	}
	rootCmd.SetArgs(args)
	// errors are already printed by cobra; the REPL keeps going
	_ = rootCmd.Execute()
}

// completeLine suggests subcommands for the first word and delegates to the
// command's ValidArgsFunction afterwards.
func completeLine(d prompt.Document) []prompt.Suggest {
	args, err := shellwords.Parse(d.TextBeforeCursor())
	if err != nil {
		return nil
	}
	word := d.GetWordBeforeCursor()
	if len(args) == 0 || (len(args) == 1 && word != "") {
		var s []prompt.Suggest
		for _, c := range rootCmd.Commands() {
			if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
				continue
			}
			s = append(s, prompt.Suggest{Text: c.Name(), Description: c.Short})
		}
		return prompt.FilterHasPrefix(s, word, true)
	}

	sub, rest, err := rootCmd.Find(args)
	if err != nil || sub == rootCmd || sub.ValidArgsFunction == nil {
		return nil
	}
	if word != "" && len(rest) > 0 {
		rest = rest[:len(rest)-1]
	}
	names, _ := sub.ValidArgsFunction(sub, rest, word)
	s := make([]prompt.Suggest, 0, len(names))
	for _, n := range names {
		text, desc, _ := strings.Cut(n, "\t")
		s = append(s, prompt.Suggest{Text: text, Description: desc})
	}
	return prompt.FilterHasPrefix(s, word, true)
}

// authContext attaches the owner token as a bearer credential.
func authContext(ctx context.Context) context.Context {
	if ownerToken == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+ownerToken)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pyxl.yaml)")
	rootCmd.PersistentFlags().String("owner-token", "", "Bearer token for authentication with the pyxl server")
	rootCmd.PersistentFlags().String("grpc-server", "localhost:50051", "Address of the gRPC pyxl server (e.g., localhost:50051)")

	viper.BindPFlag(ownerTokenKey, rootCmd.PersistentFlags().Lookup("owner-token"))
	viper.BindPFlag(grpcServerAddressKey, rootCmd.PersistentFlags().Lookup("grpc-server"))
	viper.SetDefault(grpcServerAddressKey, "localhost:50051")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pyxl") // This will look for .pyxl.yaml
	}

	viper.SetEnvPrefix("PYXL")
	viper.AutomaticEnv() // PYXL_OWNER_TOKEN, PYXL_GRPC_SERVER_ADDRESS

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}

	ownerToken = viper.GetString(ownerTokenKey)
	grpcServerAddress = viper.GetString(grpcServerAddressKey)
}
