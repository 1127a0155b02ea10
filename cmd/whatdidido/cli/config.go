package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whatdidido/whatdidido/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the stored configuration with secrets redacted",
	Long: `Config prints the configuration file line by line. Values of keys that
look sensitive (API_KEY, TOKEN, PASSWORD) are anonymized; everything
else, including comments and unknown keys, is shown as stored.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	store := openStore()

	data, err := os.ReadFile(store.Path())
	if os.IsNotExist(err) {
		ui.Warnf("No configuration file found. Run 'whatdidido connect' first.")
		return nil
	}
	if err != nil {
		return err
	}

	ui.Printf("Configuration file: %s\n\n", store.Path())
	if len(data) == 0 {
		ui.Printf("Configuration file is empty.\n")
		return nil
	}

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		key, value, found := strings.Cut(line, "=")
		if found && isSensitiveKey(strings.TrimSpace(key)) {
			ui.Printf("%s=%s\n", strings.TrimSpace(key), redactValue(strings.TrimSpace(value)))
			continue
		}
		ui.Printf("%s\n", line)
	}
	return nil
}
