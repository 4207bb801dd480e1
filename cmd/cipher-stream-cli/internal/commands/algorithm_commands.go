package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AlgorithmsCmd lists the usable cipher/mode combinations and digest
// algorithms on this engine build.
func AlgorithmsCmd(cmd *cobra.Command, _ []string) {
	cipherHandler, err := NewCipherCommandHandler()
	if err != nil {
		fmt.Println(err)
		return
	}
	digestHandler, err := NewDigestCommandHandler()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Ciphers:")
	for _, c := range cipherHandler.cipherService.SupportedCombinations() {
		fmt.Printf("  %s-%d %s\n", c.Cipher, c.KeySize, c.Mode)
	}
	fmt.Println("Digests:")
	for _, alg := range digestHandler.digestService.SupportedDigests() {
		fmt.Printf("  %s\n", alg.Name)
	}
}

// InitAlgorithmCommands registers the algorithms command with the root
// command.
func InitAlgorithmCommands(rootCmd *cobra.Command) error {
	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List supported ciphers, modes and digests",
		Run:   AlgorithmsCmd,
	}
	rootCmd.AddCommand(algorithmsCmd)
	return nil
}
