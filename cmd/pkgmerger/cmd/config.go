// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration persisted between runs.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Source  string   `json:"source" yaml:"source"`   // Default source directory
	Target  string   `json:"target" yaml:"target"`   // Default target directory
	Staging string   `json:"staging" yaml:"staging"` // Default staging area
	Name    string   `json:"name" yaml:"name"`       // Changelist author name
	Email   string   `json:"email" yaml:"email"`     // Changelist author email
	Skip    []string `json:"skip" yaml:"skip"`       // Scan skip patterns
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setMergerParams(flags *flagsT) {
	if flags.merge.SourcePath == "" {
		flags.merge.SourcePath = c.Source
	}
	if flags.merge.TargetPath == "" {
		flags.merge.TargetPath = c.Target
	}
	if flags.merge.StagingPath == "" || flags.merge.StagingPath == defaultStagingPath {
		if c.Staging != "" {
			flags.merge.StagingPath = c.Staging
		}
	}
	if flags.author.Name == "" {
		flags.author.Name = c.Name
	}
	if flags.author.Email == "" {
		flags.author.Email = c.Email
	}
	if len(flags.merge.SkipPatterns) == 0 {
		flags.merge.SkipPatterns = c.Skip
	}
}

// configFileLocation resolves the file written by "config generate" and
// "config set": the PKGMERGER_CONFIG override when set, else
// $HOME/.pkgmerger/pkgmerger.yaml.
func configFileLocation() (string, error) {
	if pth := os.Getenv("PKGMERGER_CONFIG"); pth != "" {
		return pth, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pkgmerger", "pkgmerger.yaml"), nil
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the pkgmerger config",
	Long: `Commands to manage the pkgmerger CLI config.

Configuration for pkgmerger is the common set of flags that are needed for most commands
and do not change across runs: default directories, author identity and skip patterns.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
