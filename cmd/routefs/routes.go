package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/routefs-dev/routefs/internal/config"
	"github.com/routefs-dev/routefs/pkg/router"
)

func routesCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes a tree would register",
		Long: `Scan the routes directory, compile every verb file into its URL
pattern, and print the resulting table in registration order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := resolveRoot(root)

			scanner := router.NewScanner(dir)
			files, err := scanner.Scan()
			if err != nil {
				return err
			}
			if len(files) == 0 {
				warn("no route files found in %s", dir)
				return nil
			}

			for _, file := range files {
				pattern, err := router.Compile(file)
				if err != nil {
					return err
				}
				info("%s", router.FormatRoute(router.RouteDefinition{
					Verb:    file.Verb,
					Pattern: pattern,
					Source:  file.Path,
				}))
			}

			success("%d route(s) in %s", len(files), dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "Routes directory (default from routefs.json, else ./routes)")

	return cmd
}

// resolveRoot picks the routes directory: the explicit flag wins, then
// the nearest routefs.json, then the built-in default.
func resolveRoot(flag string) string {
	if flag != "" {
		return flag
	}
	if wd, err := os.Getwd(); err == nil {
		if projectRoot, err := config.FindProjectRoot(wd); err == nil {
			if cfg, err := config.Load(projectRoot); err == nil {
				return cfg.RoutesPath()
			}
		}
	}
	return router.DefaultRoot
}
