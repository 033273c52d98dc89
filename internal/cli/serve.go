package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bsteg/internal/server"
	"bsteg/pkg/config"
)

func ServeAppCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "bsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(config.ServerConfig{Port: viper.GetString("port")})
		},
	}

	command.Flags().String("port", config.DefaultPort, "Port on which to start the server")

	// The port can also come from BSTEG_PORT, with the flag taking
	// precedence.
	viper.SetEnvPrefix("bsteg")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("port", command.Flags().Lookup("port")); err != nil {
		panic(err)
	}

	return command
}
