package cmds

import (
	"os"
	"path/filepath"

	"wowcpe/internal/app/config"
	"wowcpe/internal/pkg/logging"
	"wowcpe/internal/pkg/util"

	"github.com/spf13/cobra"
)

var (
	cfgFile string

	conf *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)
}

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wowcpe",
		Short:         "Show what is playing on WCPE - theclassicalstation.org",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewPlayingCLI())
	rootCmd.AddCommand(NewServeCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path of the YAML config file.")

	return rootCmd
}

// initConfig loads the config file and installs the global logger.
func initConfig() {
	var err error
	var fPath string

	if cfgFile != "" {
		// Use the config file named on the command line.
		fPath = cfgFile
	} else {
		cfgHome, err := util.GetCurrentAbPathByExecutable()
		cobra.CheckErr(err)

		fPath = filepath.Join(cfgHome, "config.yml")

		// Write the default config file.
		if _, err = os.Stat(fPath); os.IsNotExist(err) {
			err = config.CreateDefaultCfg(fPath)
			cobra.CheckErr(err)
		}
	}

	// Read the config file.
	conf, err = config.Load(fPath)
	cobra.CheckErr(err)

	// The logger comes up before anything can want to log.
	lCfg, err := conf.LogConfig()
	cobra.CheckErr(err)
	cobra.CheckErr(logging.InitLogger(lCfg))
}
