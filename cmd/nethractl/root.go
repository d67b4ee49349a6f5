package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nethra_backend/internal/platform/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nethractl",
		Short: "Operator tool for the Nethra agriculture backend",
		Long:  "nethractl seeds reference data and runs the soil classifier\nand yield simulator locally without starting the API server.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = godotenv.Load(".env")
			cfg := logging.LoadConfig()
			// 標準出力はJSON結果専用
			slog.SetDefault(logging.New(cfg, cmd.ErrOrStderr()))
		},
	}
	root.Version = version

	root.AddCommand(newSeedCmd())
	root.AddCommand(newSoilCmd())
	root.AddCommand(newYieldCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON は結果をインデント付きJSONで出力します。
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
