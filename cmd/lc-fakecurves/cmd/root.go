package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/raintank/lctank/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lc-fakecurves",
	Short: "Generates fake lightcurve datasets",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		formatter := &logger.TextFormatter{}
		formatter.TimestampFormat = "2006-01-02 15:04:05.000"
		formatter.ToolName = "lc-fakecurves"
		log.SetFormatter(formatter)

		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			log.Fatalf("failed to parse log-level, %s", err.Error())
		}
		log.SetLevel(lvl)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	// config params used by >1 subcommands are listed here
	// config params specific to only 1 command, go in the file for that command
	cfgFile  string
	logLevel string
	seed     int64
	outDir   string
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lc-fakecurves.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level. panic|fatal|error|warning|info|debug")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed. 0 means seed from the clock")
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", ".", "directory to write generated files into")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lc-fakecurves" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lc-fakecurves")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
