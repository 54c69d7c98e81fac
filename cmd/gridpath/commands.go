package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) renderCmd() *cobra.Command {
	var transpose, diagonal bool
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the grid, optionally transposed or rotated by 45°",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], a.stdin)
			if err != nil {
				return err
			}
			if transpose {
				g.Transpose()
			}
			if diagonal {
				g.ToDiagonal()
			}
			w, h := g.Size()
			a.log.Debug("grid loaded", "cells", g.Len(), "width", w, "height", h)
			_, err = fmt.Fprintln(a.stdout, render(g, a.cfg, a.showLegend(), nil))
			return err
		},
	}
	cmd.Flags().BoolVar(&transpose, "transpose", false, "swap rows and columns")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "rotate 45° clockwise")
	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Find a route from the start marker to the end marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], a.stdin)
			if err != nil {
				return err
			}
			out, err := solve(g, a.cfg, mode)
			if err != nil {
				return err
			}
			a.log.Info("search finished",
				"mode", out.Mode, "found", out.Found, "path_len", len(out.Path),
				"cost", out.Cost, "visited", out.Visited, "elapsed", out.Elapsed)
			if !out.Found {
				return fmt.Errorf("%w with %s", ErrNoPath, mode)
			}
			if _, err := fmt.Fprintln(a.stdout, render(g, a.cfg, a.showLegend(), out.Path)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, out.summary())
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", modeBFS, "search mode: bfs, dfs or dijkstra")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE",
		Short: "Run every search mode concurrently and report each result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], a.stdin)
			if err != nil {
				return err
			}
			results, err := compareModes(cmd.Context(), g, a.cfg)
			if err != nil {
				return err
			}
			for _, out := range results {
				a.log.Info("search finished", "mode", out.Mode, "found", out.Found, "elapsed", out.Elapsed)
				if _, err := fmt.Fprintln(a.stdout, out.summary()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// compareModes runs every mode on its own clone of g. Results keep the order
// of allModes.
func compareModes(ctx context.Context, g *gridRunes, cfg Config) ([]outcome, error) {
	results := make([]outcome, len(allModes))
	eg, ctx := errgroup.WithContext(ctx)
	for i, mode := range allModes {
		clone := g.Clone()
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := solve(clone, cfg, mode)
			if err != nil {
				return fmt.Errorf("%s: %w", mode, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
