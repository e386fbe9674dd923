package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/streamsight/twitchdata"
)

var (
	keyFlag string
	client  *twitchdata.Client
	rootCmd = &cobra.Command{
		Use:   "twitchdata",
		Short: "CLI client for the twitch-api8 RapidAPI service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if keyFlag != "" {
				client, err = twitchdata.New(keyFlag)
			} else {
				client, err = twitchdata.NewFromEnv()
			}
			if err != nil {
				return fmt.Errorf("set RAPIDAPI_KEY or pass --key: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				_ = client.Close()
			}
		},
	}
)

func main() {
	// Best-effort .env loading, same as the server-side tools.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "", "RapidAPI key (defaults to RAPIDAPI_KEY env var)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON pretty-prints a decoded payload to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
