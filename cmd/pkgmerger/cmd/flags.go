// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel string
	}
	merge struct {
		SourcePath        string
		TargetPath        string
		StagingPath       string
		Message           string
		SkipPatterns      []string
		ConcurrencyFactor int
		Template          string
		DryRun            bool
		NoSubmit          bool
	}
	author struct {
		Name  string
		Email string
	}
}

var mergerFlags flagsT

func addSourceFlag(cmd *cobra.Command) string {
	source := "source"
	cmd.Flags().StringVar(&mergerFlags.merge.SourcePath, source, "",
		"The path to the version-controlled source directory to merge into")
	return source
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&mergerFlags.merge.TargetPath, target, "",
		"The path to the target directory containing the package update")
	return target
}

func addStagingFlag(cmd *cobra.Command) string {
	staging := "staging"
	cmd.Flags().StringVar(&mergerFlags.merge.StagingPath, staging, defaultStagingPath,
		"The path to the local staging area")
	return staging
}

func addMessageFlag(cmd *cobra.Command) string {
	message := "message"
	cmd.Flags().StringVar(&mergerFlags.merge.Message, message, "",
		"The message describing this changelist")
	return message
}

func addSkipPatternsFlag(cmd *cobra.Command) string {
	skip := "skip"
	cmd.Flags().StringSliceVar(&mergerFlags.merge.SkipPatterns, skip, nil,
		"Base name patterns to skip while scanning (default \"*.pyc\")")
	return skip
}

func addTemplateFlag(cmd *cobra.Command) string {
	template := "template"
	cmd.Flags().StringVar(&mergerFlags.merge.Template, template, "",
		"Pretty-print changes with a custom go template")
	return template
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&mergerFlags.merge.DryRun, dryRun, false,
		"Report what would be submitted without touching the version-control backend")
	return dryRun
}

func addNoSubmitFlag(cmd *cobra.Command) string {
	noSubmit := "no-submit"
	cmd.Flags().BoolVar(&mergerFlags.merge.NoSubmit, noSubmit, false,
		"Apply the changeset to the source directory but skip changelist submission")
	return noSubmit
}

func addAuthorNameFlag(cmd *cobra.Command) string {
	name := "name"
	cmd.Flags().StringVar(&mergerFlags.author.Name, name, "", "The changelist author name")
	return name
}

func addAuthorEmailFlag(cmd *cobra.Command) string {
	email := "email"
	cmd.Flags().StringVar(&mergerFlags.author.Email, email, "", "The changelist author email")
	return email
}

func addConcurrencyFactorFlag(cmd *cobra.Command) string {
	concurrencyFactor := "concurrency-factor"
	cmd.PersistentFlags().IntVar(&mergerFlags.merge.ConcurrencyFactor, concurrencyFactor, 0,
		"Heuristic on the amount of concurrency used while fingerprinting, 0 for automatic")
	return concurrencyFactor
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&mergerFlags.root.logLevel, loglevel, "info",
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
