package cli

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/galoiskit/galois/internal/validation"
	"github.com/galoiskit/galois/pkg/config"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/term"
)

// configManager opens the file named by --config, or the default one.
func configManager(cmd *cobra.Command) (*config.ConfigManager, error) {
	var (
		cm  *config.ConfigManager
		err error
	)

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cm, err = config.NewConfigManagerAt(path)
	} else {
		cm, err = config.NewConfigManager()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cm, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cm, err := configManager(cmd)
	if err != nil {
		return nil, err
	}
	return cm.GetConfig(), nil
}

// jsonOutput reports whether the persistent --json flag is set.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func encodeBytes(b []byte, format string) string {
	if format == "base64" {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

// keyFromMnemonic returns the entropy of a BIP-39 phrase as an AES key.
func keyFromMnemonic(words string) ([]byte, error) {
	words = strings.Join(strings.Fields(words), " ")
	if !bip39.IsMnemonicValid(words) {
		return nil, fmt.Errorf("invalid mnemonic phrase")
	}

	key, err := bip39.EntropyFromMnemonic(words)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mnemonic: %w", err)
	}

	if err := validation.ValidateKeySize(len(key)); err != nil {
		return nil, fmt.Errorf("mnemonic must have 12, 18 or 24 words: %w", err)
	}

	return key, nil
}

// readKey resolves the cipher key from --key, --mnemonic or, when neither
// is given, from the terminal without echo.
func readKey(cmd *cobra.Command, keyHex, mnemonicStr string) ([]byte, error) {
	switch {
	case keyHex != "" && mnemonicStr != "":
		return nil, fmt.Errorf("use either --key or --mnemonic, not both")
	case keyHex != "":
		return validation.ParseKey(keyHex)
	case mnemonicStr != "":
		return keyFromMnemonic(mnemonicStr)
	}

	input, err := readSecretLine(cmd, "Enter key (hex or mnemonic): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}

	if len(strings.Fields(input)) > 1 {
		return keyFromMnemonic(input)
	}
	return validation.ParseKey(input)
}

// readSecretLine reads one line, hiding the input when stdin is a terminal
func readSecretLine(cmd *cobra.Command, prompt string) (string, error) {
	if isStdinTerminal() {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	// Fallback for non-terminal
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no key provided")
	}
	return line, nil
}

func formatFlag(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Defaults.OutputFormat
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

var (
	headerColor = color.New(color.FgYellow, color.Bold)
	okColor     = color.New(color.FgGreen, color.Bold)
	failColor   = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgCyan)
)

func isStdinTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}
