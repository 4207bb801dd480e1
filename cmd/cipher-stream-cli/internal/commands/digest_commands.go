package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"cipher_stream_service/internal/app"
	"cipher_stream_service/internal/domain/hashes"
	"cipher_stream_service/internal/infrastructure/cryptography"
	"cipher_stream_service/internal/infrastructure/engine"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DigestCommandHandler encapsulates logic for handling digest operations via
// CLI.
type DigestCommandHandler struct {
	digestService *app.DigestService
	logger        logger.Logger
}

// NewDigestCommandHandler initializes and returns a DigestCommandHandler
// instance with configured logger, engine and backend.
func NewDigestCommandHandler() (*DigestCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	backend, err := cryptography.NewDigestBackend(engine.New(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest backend: %w", err)
	}
	digestService, err := app.NewDigestService(backend, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest service: %w", err)
	}

	return &DigestCommandHandler{
		digestService: digestService,
		logger:        loggerInstance,
	}, nil
}

// DigestCmd hashes a file with the selected digest algorithm
func (commandHandler *DigestCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag", "error", err)
		return
	}
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag", "error", err)
		return
	}

	var algorithm hashes.Algorithm
	found := false
	for _, alg := range commandHandler.digestService.SupportedDigests() {
		if alg.Name == algorithmName {
			algorithm = alg
			found = true
			break
		}
	}
	if !found {
		commandHandler.logger.Error("unsupported digest algorithm", "algorithm", algorithmName)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("failed to read input file", "path", inputFilePath, "error", err)
		return
	}

	sum, err := commandHandler.digestService.Digest(cmd.Context(), algorithm, data)
	if err != nil {
		commandHandler.logger.Error("digest failed", "algorithm", algorithmName, "error", err)
		return
	}
	fmt.Printf("%s  %s\n", hex.EncodeToString(sum), inputFilePath)
}

// InitDigestCommands registers the digest command with the root command.
func InitDigestCommands(rootCmd *cobra.Command) error {
	handler, err := NewDigestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	digestCmd := &cobra.Command{
		Use:   "digest",
		Short: "Hash a file with a digest algorithm",
		Run:   handler.DigestCmd,
	}
	digestCmd.Flags().String("algorithm", "sha256", "Digest algorithm, e.g. sha256, sha3-256, blake2b-512")
	digestCmd.Flags().String("input-file", "", "Path to input file")

	rootCmd.AddCommand(digestCmd)
	return nil
}
