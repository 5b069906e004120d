package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/chunkpos"
	"github.com/npillmayer/chunkpos/chunk"
	"github.com/npillmayer/chunkpos/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

func loadChunks(cfg *Config, name string) ([]chunk.Chunk, error) {
	chunks, err := textfile.Load(name, cfg.FragmentSize)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	gtrace.CoreTracer.Infof("loaded %d chunks from %s", len(chunks), name)
	return chunks, nil
}

func linesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE",
		Short: "Print the line index of every chunk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := loadChunks(cfg, args[0])
			if err != nil {
				return err
			}
			p := newPalette(cfg.Color)
			w := cmd.OutOrStdout()
			for i, c := range chunks {
				p.headerf(w, "chunk %d", i)
				fmt.Fprintf(w, " starts=%v", c.LineStarts())
				if c.EndsWithTerminator() {
					p.term.Fprint(w, " terminated")
				}
				fmt.Fprintln(w)
				for j := 0; j < c.LineCount(); j++ {
					fmt.Fprintf(w, "  %3d %q\n", j, c.Line(j))
				}
				if i+1 < len(chunks) {
					if lc, ok := chunk.Straddle(c, chunks[i+1]); ok {
						fmt.Fprintf(w, "  ... %q\n", lc.Join())
					}
				}
			}
			return nil
		},
	}
}

func positionsCmd(cfg *Config) *cobra.Command {
	var backward bool
	var row, col uint64
	cmd := &cobra.Command{
		Use:   "positions FILE",
		Short: "Print the position reached after every chunk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := loadChunks(cfg, args[0])
			if err != nil {
				return err
			}
			var positions []chunkpos.Position
			if backward {
				positions, err = chunkpos.BackwardPositions(cmd.Context(), chunks)
			} else {
				start := chunkpos.Position{Row: row, Column: col}
				positions, err = chunkpos.EndPositions(cmd.Context(), start, chunks)
			}
			if err != nil {
				return err
			}
			p := newPalette(cfg.Color)
			w := cmd.OutOrStdout()
			for i, pos := range positions {
				p.headerf(w, "chunk %d", i)
				fmt.Fprint(w, " ")
				p.pos.Fprintln(w, pos.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&backward, "backward", false, "compose chunks tail to head")
	cmd.Flags().Uint64Var(&row, "row", 0, "start row for forward composition")
	cmd.Flags().Uint64Var(&col, "column", 0, "start column for forward composition")
	return cmd
}

func locateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE OFFSET...",
		Short: "Print row:column of byte offsets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := loadChunks(cfg, args[0])
			if err != nil {
				return err
			}
			p := newPalette(cfg.Color)
			w := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				offset, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid offset %q: %w", arg, err)
				}
				pos, err := chunkpos.Locate(chunks, offset)
				if err != nil {
					return fmt.Errorf("offset %d: %w", offset, err)
				}
				fmt.Fprintf(w, "%d ", offset)
				p.pos.Fprintln(w, pos.String())
			}
			return nil
		},
	}
}
