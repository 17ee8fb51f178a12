// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rewrite is a thin demonstration CLI over the recipe execution
// core: it reads a recipe activation YAML, parses a directory of
// Markdown/plaintext/go.mod files, runs the scheduler to a fixed point,
// and prints a summary of what changed. File discovery, config loading,
// and I/O are all outside the core's scope; this binary is the
// "external collaborator" that wires them together, the way golang-tools'
// cmd/ subpackages wire up go/analysis.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghale/rewrite/lang/gomod"
	"github.com/ghale/rewrite/lang/markdown"
	"github.com/ghale/rewrite/lang/plaintext"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	_ "github.com/ghale/rewrite/recipes"
	"github.com/ghale/rewrite/recipeconfig"
	"github.com/ghale/rewrite/rerrors"
	"github.com/ghale/rewrite/result"
	"github.com/ghale/rewrite/scheduler"
	"github.com/ghale/rewrite/telemetry"
	"github.com/ghale/rewrite/tree"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rewrite",
		Short: "Apply a recipe activation to a directory of source files",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var configPath, dir, recipeName string
	var maxCycles, minCycles int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Parse dir, apply the named recipe from configPath, print a diff summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(configPath)
			if err != nil {
				return err
			}
			defer f.Close()
			decls, err := recipeconfig.Load(f)
			if err != nil {
				return err
			}

			var root recipe.Recipe
			for _, d := range decls {
				if d.Name != recipeName {
					continue
				}
				root, err = recipeconfig.Build(d)
				if err != nil {
					return err
				}
			}
			if root == nil {
				return fmt.Errorf("no recipe named %q in %s", recipeName, configPath)
			}

			ctx := rctx.New(
				rctx.WithOnError(func(err error) { fmt.Fprintln(os.Stderr, "error:", err) }),
				rctx.WithOnTimeout(func(err error) { fmt.Fprintln(os.Stderr, "timeout:", err) }),
				rctx.WithRunTimeout(func(int) time.Duration { return 30 * time.Second }),
				rctx.WithSink(telemetry.NewWriter(os.Stderr)),
			)

			files, err := parseDir(dir, ctx)
			if err != nil {
				return err
			}

			results, err := scheduler.New().Run(root, files, ctx, maxCycles, minCycles)
			if err != nil {
				return err
			}
			printSummary(results)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "rewrite.yml", "recipe activation YAML")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to parse")
	cmd.Flags().StringVar(&recipeName, "recipe", "", "name of the recipe declaration to run")
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 10, "maximum scheduler cycles")
	cmd.Flags().IntVar(&minCycles, "min-cycles", 1, "minimum scheduler cycles")
	cmd.MarkFlagRequired("recipe")
	return cmd
}

// newValidateCmd loads a recipe activation without running it, walking the
// built recipe tree and reporting Validate's outcome for the root and every
// child: a quick check of recipe configuration (e.g. a missing required
// option) that doesn't require a directory of files to parse first.
func newValidateCmd() *cobra.Command {
	var configPath, recipeName string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the named recipe from configPath and report whether it validates",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(configPath)
			if err != nil {
				return err
			}
			defer f.Close()
			decls, err := recipeconfig.Load(f)
			if err != nil {
				return err
			}

			var root recipe.Recipe
			for _, d := range decls {
				if d.Name != recipeName {
					continue
				}
				root, err = recipeconfig.Build(d)
				if err != nil {
					return err
				}
			}
			if root == nil {
				return fmt.Errorf("no recipe named %q in %s", recipeName, configPath)
			}

			ctx := rctx.New(
				rctx.WithOnError(func(err error) { fmt.Fprintln(os.Stderr, "error:", err) }),
			)
			ok := printValidation(ctx, root, 0)
			if !ok {
				return fmt.Errorf("%s: validation failed", recipeName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "rewrite.yml", "recipe activation YAML")
	cmd.Flags().StringVar(&recipeName, "recipe", "", "name of the recipe declaration to validate")
	cmd.MarkFlagRequired("recipe")
	return cmd
}

// printValidation reports r's own Validate result indented by depth, then
// recurses into its children, returning whether r and all its descendants
// validated.
func printValidation(ctx rctx.ExecutionContext, r recipe.Recipe, depth int) bool {
	indent := strings.Repeat("  ", depth)
	v := r.Validate(ctx)
	if v.Valid {
		fmt.Printf("%sOK   %s\n", indent, r.DisplayName())
	} else {
		fmt.Printf("%sFAIL %s\n", indent, r.DisplayName())
		for _, e := range v.Errors {
			fmt.Printf("%s     %s\n", indent, e)
		}
	}
	ok := v.Valid
	for _, child := range r.Children() {
		if !printValidation(ctx, child, depth+1) {
			ok = false
		}
	}
	return ok
}

func parseDir(dir string, ctx rctx.ExecutionContext) ([]tree.SourceFile, error) {
	var files []tree.SourceFile
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		data, err := os.ReadFile(path)
		if err != nil {
			ctx.OnError(&rerrors.ParseError{Path: rel, Err: err})
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".md"):
			f, err := markdown.Parse(rel, data)
			if err != nil {
				ctx.OnError(&rerrors.ParseError{Path: rel, Err: err})
				return nil
			}
			files = append(files, f)
		case filepath.Base(path) == "go.mod":
			f, err := gomod.Parse(rel, data)
			if err != nil {
				ctx.OnError(&rerrors.ParseError{Path: rel, Err: err})
				return nil
			}
			files = append(files, f)
		case strings.HasSuffix(path, ".txt"):
			files = append(files, plaintext.Parse(rel, string(data)))
		}
		return nil
	})
	return files, err
}

func printSummary(results []result.Result) {
	for _, r := range results {
		switch {
		case r.Before == nil:
			fmt.Printf("A %s\n", r.After.SourcePath())
		case r.After == nil:
			fmt.Printf("D %s\n", r.Before.SourcePath())
		default:
			fmt.Printf("M %s\n", r.After.SourcePath())
		}
		for _, stack := range r.RecipesThatChanged {
			fmt.Printf("    %s\n", stack.String())
		}
	}
	fmt.Printf("%d file(s) changed\n", len(results))
}
