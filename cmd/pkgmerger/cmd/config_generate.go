// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a config file from the supplied flags",
	Long: `Generate a config file from scratch with the supplied flags, so
subsequent runs pick up the same directories and author identity. The file
goes under $HOME/.pkgmerger, or to the PKGMERGER_CONFIG location when that
variable is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		pth, err := configFileLocation()
		if err != nil {
			wrapFatalln("locate config file", err)
			return
		}

		c := CLIConfig{
			Source:  mergerFlags.merge.SourcePath,
			Target:  mergerFlags.merge.TargetPath,
			Staging: mergerFlags.merge.StagingPath,
			Name:    mergerFlags.author.Name,
			Email:   mergerFlags.author.Email,
			Skip:    mergerFlags.merge.SkipPatterns,
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
		infoLogger.Println("wrote config to", pth)
	},
}

func init() {
	addSourceFlag(configGenerateCmd)
	addTargetFlag(configGenerateCmd)
	addStagingFlag(configGenerateCmd)
	addAuthorNameFlag(configGenerateCmd)
	addAuthorEmailFlag(configGenerateCmd)
	addSkipPatternsFlag(configGenerateCmd)

	configCmd.AddCommand(configGenerateCmd)
}
