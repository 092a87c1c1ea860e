// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pkgmerger",
	Short: "Pkgmerger reconciles package drops into version-control changelists",
	Long: `Pkgmerger compares a version-controlled source directory against a target
directory containing an externally produced package update, computes the set
of additions, modifications and deletions needed to bring the source in line
with the target, and stages those differences as a submittable changelist.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	addLogLevel(rootCmd)
	addConcurrencyFactorFlag(rootCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if os.Getenv("PKGMERGER_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("PKGMERGER_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pkgmerger")
		viper.AddConfigPath("/etc/pkgmerger")
		viper.SetConfigName("pkgmerger")
	}

	viper.SetEnvPrefix("pkgmerger")
	viper.AutomaticEnv() // read in environment variables that match
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setMergerParams(&mergerFlags)
}
