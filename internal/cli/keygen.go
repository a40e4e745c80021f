package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/galoiskit/galois/internal/validation"
	"github.com/galoiskit/galois/pkg/secure"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

type KeygenResult struct {
	Bits     int    `json:"bits"`
	Key      string `json:"key"`
	Mnemonic string `json:"mnemonic"`
}

func NewKeygenCommand() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random AES key",
		Long: `Generate a random 128, 192 or 256-bit AES key from crypto/rand.

The key is printed as hex and as a BIP-39 phrase (12, 18 or 24 words)
whose entropy is the key itself, so either form can be passed back with
--key or --mnemonic.`,
		Example: `  # 256-bit key (default from config)
  galois keygen

  # 128-bit key as JSON
  galois keygen --bits 128 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				bits = cfg.Defaults.KeyBits
			}
			if err := validation.ValidateKeyBits(bits); err != nil {
				return err
			}

			key, err := secure.Random(bits / 8)
			if err != nil {
				return err
			}
			defer secure.Zero(key)

			words, err := bip39.NewMnemonic(key)
			if err != nil {
				return fmt.Errorf("failed to encode key as mnemonic: %w", err)
			}

			result := KeygenResult{
				Bits:     bits,
				Key:      hex.EncodeToString(key),
				Mnemonic: words,
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			headerColor.Fprintf(out, "AES-%d key\n", bits)
			labelColor.Fprint(out, "hex:      ")
			fmt.Fprintln(out, result.Key)
			labelColor.Fprint(out, "mnemonic: ")
			fmt.Fprintln(out, result.Mnemonic)

			list := strings.Fields(words)
			for i := 0; i < len(list); i += 6 {
				end := min(i+6, len(list))
				fmt.Fprintf(out, "  %2d. %s\n", i+1, strings.Join(list[i:end], " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&bits, "bits", "b", 256, "Key size in bits: 128, 192 or 256")

	return cmd
}
