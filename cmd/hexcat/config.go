package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigOut   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or save the effective board config",
	Long: `Print the board config after applying --config, --difficulty and the
built-in defaults, as YAML.

With --write the config is saved to the per-user location
(~/.hexcat/configs/hexcat.yaml) or to --out, where later runs pick it up.

Examples:
  hexcat config
  hexcat config --difficulty hard --write
  hexcat config --out ./configs/hexcat.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig("")
		if err != nil {
			return err
		}

		if !flagConfigWrite && flagConfigOut == "" {
			return cfg.Encode(os.Stdout)
		}

		path := flagConfigOut
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			return fmt.Errorf("cannot determine home directory, use --out")
		}
		if err := cfg.WriteYAML(path); err != nil {
			return err
		}
		logger.Info("config saved", "path", path)
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Save to ~/.hexcat/configs/hexcat.yaml")
	configCmd.Flags().StringVar(&flagConfigOut, "out", "", "Save to this path instead")
}
