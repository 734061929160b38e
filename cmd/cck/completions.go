package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/hooks"
)

// completeSkillNames provides skill name completion for the current project.
func completeSkillNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()

	var names []string
	for _, e := range hooks.Skills(ctx, projectDir(ctx)) {
		if strings.HasPrefix(e.Name, toComplete) {
			names = append(names, e.Name+"\t"+e.Description)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
