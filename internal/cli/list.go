package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verifykit/stringver/internal/config"
	"github.com/verifykit/stringver/internal/scan"
)

var listCmd = &cobra.Command{
	Use:   "list [packages...]",
	Short: "List Stringer types discovered in packages",
	Long: `Scan the given package directories (default ".") and list the struct
types with a String() string method that a generated scaffold would cover.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		pkgs, err := scan.Dirs(dirs, cfg.MaxParallel)
		if err != nil {
			return err
		}

		for _, pkg := range pkgs {
			if pkg.Name == "" || len(pkg.Types) == 0 {
				printSkip(cmd.OutOrStdout(), fmt.Sprintf("%s: no Stringer struct types", pkg.Dir))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (package %s):\n", pkg.Dir, pkg.Name)
			for _, t := range pkg.Types {
				receiver := t.Name
				if t.PointerReceiver {
					receiver = "*" + t.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (String on %s)\n", t.Name, receiver)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
