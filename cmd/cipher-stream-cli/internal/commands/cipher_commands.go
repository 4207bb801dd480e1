package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"cipher_stream_service/internal/app"
	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/infrastructure/cryptography"
	"cipher_stream_service/internal/infrastructure/engine"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for handling encrypt/decrypt
// operations via CLI.
type CipherCommandHandler struct {
	cipherService *app.CipherService
	logger        logger.Logger
}

// NewCipherCommandHandler initializes and returns a CipherCommandHandler
// instance with configured logger, engine and backend.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	backend, err := cryptography.NewCipherBackend(engine.New(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher backend: %w", err)
	}
	cipherService, err := app.NewCipherService(backend, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &CipherCommandHandler{
		cipherService: cipherService,
		logger:        loggerInstance,
	}, nil
}

func (commandHandler *CipherCommandHandler) readDescriptors(cmd *cobra.Command) (ciphers.AlgorithmDescriptor, ciphers.ModeDescriptor, error) {
	var zero ciphers.AlgorithmDescriptor
	var zeroMode ciphers.ModeDescriptor

	cipherName, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return zero, zeroMode, fmt.Errorf("invalid cipher flag: %w", err)
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		return zero, zeroMode, fmt.Errorf("invalid mode flag: %w", err)
	}
	keyHex, err := cmd.Flags().GetString("key")
	if err != nil {
		return zero, zeroMode, fmt.Errorf("invalid key flag: %w", err)
	}
	ivHex, err := cmd.Flags().GetString("iv")
	if err != nil {
		return zero, zeroMode, fmt.Errorf("invalid iv flag: %w", err)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return zero, zeroMode, fmt.Errorf("key is not valid hex: %w", err)
	}
	ivOrNonce, err := hex.DecodeString(ivHex)
	if err != nil {
		return zero, zeroMode, fmt.Errorf("iv is not valid hex: %w", err)
	}

	cipher, err := ciphers.NewCipherByName(cipherName, key)
	if err != nil {
		return zero, zeroMode, err
	}
	mode, err := ciphers.NewModeByName(modeName, ivOrNonce)
	if err != nil {
		return zero, zeroMode, err
	}
	return cipher, mode, nil
}

// EncryptCmd encrypts a file with the selected cipher and mode
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runPass(cmd, true)
}

// DecryptCmd decrypts a file with the selected cipher and mode
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runPass(cmd, false)
}

func (commandHandler *CipherCommandHandler) runPass(cmd *cobra.Command, encrypt bool) {
	cipher, mode, err := commandHandler.readDescriptors(cmd)
	if err != nil {
		commandHandler.logger.Error("invalid cipher selection", "error", err)
		return
	}

	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag", "error", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag", "error", err)
		return
	}

	input, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("failed to read input file", "path", inputFilePath, "error", err)
		return
	}

	var output []byte
	if encrypt {
		output, err = commandHandler.cipherService.Encrypt(cmd.Context(), cipher, mode, input)
	} else {
		output, err = commandHandler.cipherService.Decrypt(cmd.Context(), cipher, mode, input)
	}
	if err != nil {
		commandHandler.logger.Error("cipher pass failed", "error", err)
		return
	}

	if err := os.WriteFile(outputFilePath, output, 0600); err != nil {
		commandHandler.logger.Error("failed to write output file", "path", outputFilePath, "error", err)
		return
	}
	commandHandler.logger.Info("wrote output file", "bytes", len(output), "path", outputFilePath)
}

// InitCipherCommands registers the encrypt and decrypt commands with the
// root command.
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a block cipher",
		Run:   handler.EncryptCmd,
	}
	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a block cipher",
		Run:   handler.DecryptCmd,
	}

	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().String("cipher", "AES", "Cipher family: AES, Camellia or TripleDES")
		cmd.Flags().String("mode", "CBC", "Mode of operation: CBC, CTR, ECB, OFB or CFB")
		cmd.Flags().String("key", "", "Key as hex")
		cmd.Flags().String("iv", "", "IV or nonce as hex (omit for ECB)")
		cmd.Flags().String("input-file", "", "Path to input file")
		cmd.Flags().String("output-file", "", "Path to output file")
	}

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	return nil
}
