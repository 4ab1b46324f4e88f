package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verifykit/stringver/internal/config"
	"github.com/verifykit/stringver/internal/gen"
	"github.com/verifykit/stringver/internal/scan"
)

var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate verification test scaffolds for packages with Stringer types",
	Long: `Scan the given package directories (default ".") for struct types with a
String() string method and write a test scaffold into each package that
verifies those types with the stringver library.

Examples:
  # Scaffold the current package
  stringver gen

  # Scaffold several packages with a custom output name
  stringver gen ./model ./api --out stringcheck_test.go

  # Preview without writing files
  stringver gen ./model --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		out, _ := cmd.Flags().GetString("out")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if out != "" {
			cfg.Output = out
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		pkgs, err := scan.Dirs(dirs, cfg.MaxParallel)
		if err != nil {
			return err
		}

		wrote := 0
		for _, pkg := range pkgs {
			if pkg.Name == "" || !hasExported(pkg) {
				printSkip(cmd.OutOrStdout(), fmt.Sprintf("skipping %s: no exported Stringer struct types", pkg.Dir))
				continue
			}
			scaffold, err := gen.ForPackage(pkg, cfg.OptionCalls())
			if err != nil {
				return fmt.Errorf("generating scaffold for %s: %w", pkg.Dir, err)
			}

			target := filepath.Join(pkg.Dir, cfg.Output)
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s", target, scaffold)
				continue
			}
			if err := os.WriteFile(target, scaffold, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", target, err)
			}
			printSuccess(cmd.OutOrStdout(), "wrote", target)
			wrote++
		}

		if !dryRun && wrote == 0 {
			printWarning(cmd.OutOrStdout(), "no scaffolds written")
		}
		return nil
	},
}

func hasExported(pkg scan.Package) bool {
	for _, t := range pkg.Types {
		if t.Exported() {
			return true
		}
	}
	return false
}

func init() {
	genCmd.Flags().String("out", "", "scaffold file name (default from config)")
	genCmd.Flags().Bool("dry-run", false, "print scaffolds instead of writing them")
	rootCmd.AddCommand(genCmd)
}
