package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/galoiskit/galois/pkg/crypto/aes"
	"github.com/galoiskit/galois/pkg/secure"
	"github.com/spf13/cobra"
)

type ExpandResult struct {
	KeyBits   int      `json:"key_bits"`
	Rounds    int      `json:"rounds"`
	RoundKeys []string `json:"round_keys"`
}

func NewExpandCommand() *cobra.Command {
	var (
		keyHex      string
		mnemonicStr string
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Print the AES key schedule for a key",
		Long: `Run AES key expansion and print every round key.

The schedule holds rounds+1 round keys of 16 bytes: 11 for AES-128,
13 for AES-192 and 15 for AES-256.`,
		Example: `  # FIPS-197 Appendix A.1 key
  galois expand --key 2b7e151628aed2a6abf7158809cf4f3c

  # As JSON
  galois expand --key 2b7e151628aed2a6abf7158809cf4f3c --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readKey(cmd, keyHex, mnemonicStr)
			if err != nil {
				return err
			}
			defer secure.Zero(key)

			expanded, err := aes.ExpandKey(key)
			if err != nil {
				return fmt.Errorf("failed to expand key: %w", err)
			}
			defer expanded.Zero()

			result := ExpandResult{
				KeyBits:   len(key) * 8,
				Rounds:    expanded.Rounds(),
				RoundKeys: make([]string, expanded.Rounds()+1),
			}
			for r := range result.RoundKeys {
				result.RoundKeys[r] = hex.EncodeToString(expanded.RoundKey(r))
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			headerColor.Fprintf(out, "AES-%d key schedule (%d rounds)\n", result.KeyBits, result.Rounds)
			for r, rk := range result.RoundKeys {
				labelColor.Fprintf(out, "round %2d: ", r)
				fmt.Fprintln(out, rk)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyHex, "key", "k", "", "Cipher key as hex (16, 24 or 32 bytes)")
	cmd.Flags().StringVar(&mnemonicStr, "mnemonic", "", "Cipher key as a BIP-39 phrase")

	return cmd
}
