package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routefs-dev/routefs/pkg/router"
)

func checkCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a routes tree without mounting it",
		Long: `Scan the routes directory and report every problem a server mount
would hit: directory paths the pattern grammar cannot express and
distinct files that compile to the same method and pattern.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := resolveRoot(root)

			scanner := router.NewScanner(dir)
			files, err := scanner.Scan()
			if err != nil {
				return err
			}

			problems := 0
			seen := map[string]string{}
			for _, file := range files {
				pattern, err := router.Compile(file)
				if err != nil {
					errorMsg("%v", err)
					problems++
					continue
				}

				key := file.Verb.Method() + " " + pattern.String()
				if first, dup := seen[key]; dup {
					errorMsg("%s declared by both %s and %s", key, first, file.Path)
					problems++
					continue
				}
				seen[key] = file.Path
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) in %s", problems, dir)
			}
			success("%d route(s) in %s, no problems", len(files), dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "Routes directory (default from routefs.json, else ./routes)")

	return cmd
}
