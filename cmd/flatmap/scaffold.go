package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flatmap/internal/analyze"
	"flatmap/internal/keyfile"
	"flatmap/internal/scaffold"
)

var (
	scaffoldPkg      string
	scaffoldType     string
	scaffoldOut      string
	scaffoldPkgName  string
	scaffoldIntoPath string
	scaffoldKeys     string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate mapping declarations for an existing struct",
	Long: `Generate Configure functions for a struct and every struct it reaches.

Field names become keys unless a flat:"Key,mandatory" tag or an entry of
the --keys file says otherwise.

Example:
  flatmap scaffold -p flatmap/store -t Order -o ./flatkeys
  flatmap scaffold -p flatmap/store -t Order --keys keys.yaml`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldPkg, "package", "p", "", "import path of the package declaring the type")
	scaffoldCmd.Flags().StringVarP(&scaffoldType, "type", "t", "", "name of the root struct")
	scaffoldCmd.Flags().StringVarP(&scaffoldOut, "out", "o", "", "output directory; stdout when empty")
	scaffoldCmd.Flags().StringVar(&scaffoldPkgName, "name", scaffold.DefaultConfig().PackageName, "package name of the generated file")
	scaffoldCmd.Flags().StringVar(&scaffoldKeys, "keys", "", "YAML file pinning keys, mandatory and ignored fields")
	scaffoldCmd.Flags().StringVar(&scaffoldIntoPath, "into", "", "import path of the output package, if it declares the types")

	_ = scaffoldCmd.MarkFlagRequired("package")
	_ = scaffoldCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, _ []string) error {
	logger.Debug().Str("package", scaffoldPkg).Str("type", scaffoldType).Msg("loading package")

	a := analyze.NewAnalyzer()
	if _, err := a.LoadPackages(scaffoldPkg); err != nil {
		return err
	}

	cfg := scaffold.Config{PackageName: scaffoldPkgName, PackagePath: scaffoldIntoPath}

	if scaffoldKeys != "" {
		set, err := loadKeyFile(scaffoldKeys, a.Graph())
		if err != nil {
			return err
		}

		cfg.Overrides = set
	}

	file, err := scaffold.NewGenerator(cfg, a.Graph()).Generate(analyze.TypeID{PkgPath: scaffoldPkg, Name: scaffoldType})
	if err != nil {
		return err
	}

	if scaffoldOut == "" {
		_, err = cmd.OutOrStdout().Write(file.Content)
		return err
	}

	path, err := scaffold.WriteFile(file, scaffoldOut)
	if err != nil {
		return err
	}

	logger.Info().Str("file", path).Msg("scaffold written")
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

func loadKeyFile(path string, graph *analyze.TypeGraph) (keyfile.Set, error) {
	f, err := keyfile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	set, diags := keyfile.Compile(f, graph)
	if diags.HasWarnings() {
		logger.Warn().Str("file", path).Int("count", len(diags.Warnings)).Msg("key file has warnings")
	}

	for _, w := range diags.Warnings {
		logger.Warn().Str("code", w.Code).Str("type", w.Owner).Str("field", w.Key).Msg(w.Message)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}

	return set, nil
}
