// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oneconcern/pkgmerger/pkg/core"
	"github.com/oneconcern/pkgmerger/pkg/model"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Reconcile and stage the changelist locally",
	Long: `Reconcile the source directory against the target directory and persist the
resulting changelist into the local staging area: a YAML manifest plus one
content object per added or modified file, keyed by fingerprint. A staged
changelist can be reviewed with "pkgmerger show" before merging.`,
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
		staging, err := stagingStore(mergerFlags.merge.StagingPath)
		if err != nil {
			wrapFatalln("open staging area", err)
			return
		}

		cs, err := core.Reconcile(ctx, source, target, coreOpts(logger)...)
		if err != nil {
			wrapFatalln("reconcile", err)
			return
		}
		if cs.IsEmpty() {
			infoLogger.Println("nothing to stage: trees are identical")
			return
		}

		desc := model.NewChangelistDescriptor(mergerFlags.merge.Message, changelistAuthor(), cs)
		if err := core.Stage(ctx, desc, target, staging, coreOpts(logger)...); err != nil {
			wrapFatalln("stage changelist", err)
			return
		}
		infoLogger.Println("staged:", cs.String())
	},
}

func init() {
	addSourceFlag(stageCmd)
	addTargetFlag(stageCmd)
	requireFlags(stageCmd,
		addMessageFlag(stageCmd),
	)
	addStagingFlag(stageCmd)
	addSkipPatternsFlag(stageCmd)
	addAuthorNameFlag(stageCmd)
	addAuthorEmailFlag(stageCmd)

	rootCmd.AddCommand(stageCmd)
}
