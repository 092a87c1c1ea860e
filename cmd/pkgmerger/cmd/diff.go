// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
	"context"
	"text/template"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oneconcern/pkgmerger/pkg/core"
	"github.com/oneconcern/pkgmerger/pkg/model"
)

var diffTemplate func(flagsT) *template.Template

func init() {
	diffTemplate = func(opts flagsT) *template.Template {
		if opts.merge.Template != "" {
			t, err := template.New("list line").Parse(opts.merge.Template)
			if err != nil {
				wrapFatalln("invalid template", err)
			}
			return t
		}
		const listLineTemplateString = `{{.Type}} , {{.Path}} , {{with .Additional}}{{.Size}} , {{.Hash}}{{end}} , {{with .Existing}}{{.Size}} , {{.Hash}}{{end}}`
		return template.Must(template.New("list line").Parse(listLineTemplateString))
	}
}

var changeColors = map[model.ChangeType]*color.Color{
	model.ChangeTypeAdd:    color.New(color.FgGreen),
	model.ChangeTypeModify: color.New(color.FgYellow),
	model.ChangeTypeDelete: color.New(color.FgRed),
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff the source directory against a target package drop",
	Long: "Diff the version-controlled source directory against the target directory " +
		"containing the package update. Prints one line per difference and nothing for " +
		"identical trees.",
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
			infoLogger.Println("empty diff")
			return
		}
		for _, change := range cs.Changes() {
			var buf bytes.Buffer
			if err := diffTemplate(mergerFlags).Execute(&buf, change); err != nil {
				wrapFatalln("executing template:", err)
				return
			}
			logStdOut("%s\n", changeColors[change.Type].Sprint(buf.String()))
		}
		// like the ordinary diff command, differences yield a non-zero exit code
		wrapFatalWithCodef(1, "%s", cs.String())
	},
}

func init() {
	// source and target may come from the config file, so they are
	// validated at run time rather than marked required
	addSourceFlag(diffCmd)
	addTargetFlag(diffCmd)
	addSkipPatternsFlag(diffCmd)
	addTemplateFlag(diffCmd)

	rootCmd.AddCommand(diffCmd)
}
