package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the galois command tree. level is raised to
// debug when --verbose is given.
func NewRootCommand(version string, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "AES block cipher and CRC-32 built on finite field arithmetic",
		Long: `Galois implements AES-128/192/256 single-block encryption and the IEEE
CRC-32 checksum directly from GF(2^8) and GF(2^32) polynomial arithmetic.

Features:
- Single-block AES encrypt/decrypt (FIPS-197), no modes or padding
- Key schedule inspection and lookup table dumps
- Random key generation with BIP-39 phrase encoding
- CRC-32 over chunks hashed concurrently and combined
- Known-answer self test`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level != nil {
				level.Set(slog.LevelDebug)
			}

			noColor, _ := cmd.Flags().GetBool("no-color")
			if noColor {
				color.NoColor = true
				return nil
			}

			if cfg, err := loadConfig(cmd); err == nil && !cfg.UI.UseColor {
				color.NoColor = true
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewExpandCommand(),
		NewKeygenCommand(),
		NewCRC32Command(),
		NewTablesCommand(),
		NewSelfTestCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $GALOIS_CONFIG or ~/.config/galois/config.json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}
