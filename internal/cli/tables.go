package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/galoiskit/galois/pkg/crypto/aes"
	"github.com/spf13/cobra"
)

func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "tables [sbox|inv-sbox|rcon|mul02|mul03|mul09|mul0b|mul0d|mul0e]",
		Short:     "Print the lookup tables derived from GF(2^8)",
		Long:      `Print the S-box, inverse S-box, round constants or MixColumns tables computed at startup.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"sbox", "inv-sbox", "rcon", "mul02", "mul03", "mul09", "mul0b", "mul0d", "mul0e"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "sbox"
			if len(args) == 1 {
				name = args[0]
			}

			t := aes.DefaultTables()
			if name == "rcon" {
				return printRcon(cmd, t)
			}

			table := map[string]*[256]byte{
				"sbox":     &t.SBox,
				"inv-sbox": &t.InvSBox,
				"mul02":    &t.Mul02,
				"mul03":    &t.Mul03,
				"mul09":    &t.Mul09,
				"mul0b":    &t.Mul0B,
				"mul0d":    &t.Mul0D,
				"mul0e":    &t.Mul0E,
			}[name]

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"table": name,
					"hex":   hex.EncodeToString(table[:]),
				})
			}

			printGrid(cmd.OutOrStdout(), name, table)
			return nil
		},
	}

	return cmd
}

func printRcon(cmd *cobra.Command, t *aes.Tables) error {
	words := make([]string, len(t.Rcon))
	for i, w := range t.Rcon {
		words[i] = hex.EncodeToString(w[:])
	}

	if jsonOutput(cmd) {
		return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
			"table": "rcon",
			"words": words,
		})
	}

	out := cmd.OutOrStdout()
	headerColor.Fprintln(out, "rcon")
	for i, w := range words {
		labelColor.Fprintf(out, "%2d: ", i+1)
		fmt.Fprintln(out, w)
	}
	return nil
}

func printGrid(out io.Writer, name string, table *[256]byte) {
	headerColor.Fprintln(out, name)
	labelColor.Fprint(out, "    ")
	for col := 0; col < 16; col++ {
		labelColor.Fprintf(out, " %x ", col)
	}
	fmt.Fprintln(out)

	for row := 0; row < 16; row++ {
		labelColor.Fprintf(out, " %x_ ", row)
		for col := 0; col < 16; col++ {
			fmt.Fprintf(out, "%02x ", table[row*16+col])
		}
		fmt.Fprintln(out)
	}
}
