// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
	"context"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/oneconcern/pkgmerger/pkg/core"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the staged changelist",
	Long:  "Show the changelist manifest currently persisted in the staging area.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		staging, err := stagingStore(mergerFlags.merge.StagingPath)
		if err != nil {
			wrapFatalln("open staging area", err)
			return
		}

		desc, err := core.ReadChangelist(ctx, staging)
		if err != nil {
			wrapFatalln("read staged changelist", err)
			return
		}

		const headerTemplateString = `Message: {{.Message}}
Author: {{.Author.String}}
Date: {{.Timestamp}}
Changes: {{len .Changes}}`
		headerTemplate := template.Must(template.New("changelist header").Parse(headerTemplateString))
		var buf bytes.Buffer
		if err := headerTemplate.Execute(&buf, desc); err != nil {
			wrapFatalln("executing template:", err)
			return
		}
		infoLogger.Println(buf.String())

		for _, change := range desc.Changes {
			var line bytes.Buffer
			if err := diffTemplate(mergerFlags).Execute(&line, change); err != nil {
				wrapFatalln("executing template:", err)
				return
			}
			logStdOut("%s\n", changeColors[change.Type].Sprint(line.String()))
		}
	},
}

func init() {
	addStagingFlag(showCmd)
	addTemplateFlag(showCmd)

	rootCmd.AddCommand(showCmd)
}
