// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oneconcern/pkgmerger/pkg/core"
	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/vcs"
	"github.com/oneconcern/pkgmerger/pkg/vcs/gitsubmit"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the target package drop into the source directory and submit",
	Long: `Reconcile the source directory against the target directory, apply the
resulting changeset to the source directory, then submit the changelist to
the version-control repository containing the source directory.

With --dry-run the source directory is left untouched and the submission is
only reported. With --no-submit the changeset is applied but not submitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := mustLogger()

		source, err := localStore(mergerFlags.merge.SourcePath)
		if err != nil {
			wrapFatalln("open source", err)
			return
		}
		target, err := localStore(mergerFlags.merge.TargetPath)
		if err != nil {
			wrapFatalln("open target", err)
			return
		}

		cs, err := core.Reconcile(ctx, source, target, coreOpts(logger)...)
		if err != nil {
			wrapFatalln("reconcile", err)
			return
		}
		if cs.IsEmpty() {
			infoLogger.Println("nothing to merge: trees are identical")
			return
		}

		desc := model.NewChangelistDescriptor(mergerFlags.merge.Message, changelistAuthor(), cs)

		if mergerFlags.merge.DryRun {
			if _, err := vcs.NewDryRun(logger).Submit(ctx, desc); err != nil {
				wrapFatalln("dry run", err)
			}
			return
		}

		if err := core.Apply(ctx, cs, source, target, coreOpts(logger)...); err != nil {
			wrapFatalln("apply changeset", err)
			return
		}
		infoLogger.Println("applied:", cs.String())

		if mergerFlags.merge.NoSubmit {
			return
		}

		submitter, err := gitsubmit.Open(mergerFlags.merge.SourcePath, gitsubmit.Logger(logger))
		if err != nil {
			wrapFatalln("open version-control backend", err)
			return
		}
		id, err := submitter.Submit(ctx, desc)
		if err != nil {
			wrapFatalln("submit changelist", err)
			return
		}
		infoLogger.Println("submitted changelist", id)
	},
}

func init() {
	addSourceFlag(mergeCmd)
	addTargetFlag(mergeCmd)
	requireFlags(mergeCmd,
		addMessageFlag(mergeCmd),
	)
	addSkipPatternsFlag(mergeCmd)
	addAuthorNameFlag(mergeCmd)
	addAuthorEmailFlag(mergeCmd)
	addDryRunFlag(mergeCmd)
	addNoSubmitFlag(mergeCmd)

	rootCmd.AddCommand(mergeCmd)
}
