// Package main is the entry point for the cipher-stream-cli application.
// It initializes the root command and registers the cipher, digest and
// capability sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "cipher_stream_service/cmd/cipher-stream-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cipher-stream-cli",
		Short: "Streaming symmetric cipher CLI tool",
		Long: `cipher-stream-cli is a command-line tool for symmetric cryptographic operations.
Supports AES, Camellia and TripleDES across the CBC, CTR, ECB, OFB and CFB
modes of operation, incremental digest algorithms, and capability queries
against the running engine build.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitDigestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	if err := commands.InitAlgorithmCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize algorithm commands: %w", err)
	}

	return nil
}
