package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yml"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "horas-api",
		Short:        "API de gerenciamento de funcionários, cargos e usuários",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().String("config", defaultConfigPath, "Path to the YAML configuration file")

	root.AddCommand(
		ServeCmd(),
		BootstrapCmd(),
	)

	return root
}
