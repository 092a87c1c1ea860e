// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update keys in the config file",
	Long: `Update individual keys in the config file with the supplied flags.
Keys without a corresponding flag on the command line are left untouched.
The config file is created when absent.`,
	Example: `% pkgmerger config set --target /mnt/drops/widgets-1.2`,
	Run: func(cmd *cobra.Command, args []string) {
		pth, err := configFileLocation()
		if err != nil {
			wrapFatalln("locate config file", err)
			return
		}

		var c CLIConfig
		if b, err := os.ReadFile(pth); err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				wrapFatalln("parse config file", err)
				return
			}
		} else if !os.IsNotExist(err) {
			wrapFatalln("read config file", err)
			return
		}

		if cmd.Flags().Changed("source") {
			c.Source = mergerFlags.merge.SourcePath
		}
		if cmd.Flags().Changed("target") {
			c.Target = mergerFlags.merge.TargetPath
		}
		if cmd.Flags().Changed("staging") {
			c.Staging = mergerFlags.merge.StagingPath
		}
		if cmd.Flags().Changed("name") {
			c.Name = mergerFlags.author.Name
		}
		if cmd.Flags().Changed("email") {
			c.Email = mergerFlags.author.Email
		}
		if cmd.Flags().Changed("skip") {
			c.Skip = mergerFlags.merge.SkipPatterns
		}

		b, err := yaml.Marshal(c)
		if err != nil {
			wrapFatalln("serialize config", err)
			return
		}
		if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		if err := os.WriteFile(pth, b, 0600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("updated config in", pth)
	},
}

func init() {
	addSourceFlag(configSetCmd)
	addTargetFlag(configSetCmd)
	addStagingFlag(configSetCmd)
	addAuthorNameFlag(configSetCmd)
	addAuthorEmailFlag(configSetCmd)
	addSkipPatternsFlag(configSetCmd)

	configCmd.AddCommand(configSetCmd)
}
