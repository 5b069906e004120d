package chunkpos

import (
	"context"
	"runtime"

	"github.com/npillmayer/chunkpos/chunk"
	"golang.org/x/sync/errgroup"
)

// Position is re-exported for clients which do not work with chunks directly.
type Position = chunk.Position

// ForwardDeltas computes the forward delta of every chunk concurrently.
// Chunks are immutable, so workers need no synchronization beyond the result
// slot each one owns.
func ForwardDeltas(ctx context.Context, chunks []chunk.Chunk) ([]chunk.Delta, error) {
	return deltas(ctx, chunks, chunk.Chunk.ForwardDelta)
}

// BackwardDeltas computes the backward delta of every chunk concurrently.
func BackwardDeltas(ctx context.Context, chunks []chunk.Chunk) ([]chunk.Delta, error) {
	return deltas(ctx, chunks, chunk.Chunk.BackwardDelta)
}

func deltas(ctx context.Context, chunks []chunk.Chunk, delta func(chunk.Chunk) chunk.Delta) ([]chunk.Delta, error) {
	out := make([]chunk.Delta, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = delta(chunks[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("computing deltas of %d chunks: %v", len(chunks), err)
		return nil, err
	}
	return out, nil
}

// EndPositions returns, for every chunk i, the position reached after
// chunks[0..i] have been appended at start.
func EndPositions(ctx context.Context, start Position, chunks []chunk.Chunk) ([]Position, error) {
	ds, err := ForwardDeltas(ctx, chunks)
	if err != nil {
		return nil, err
	}
	out := make([]Position, len(ds))
	pos := start
	for i, d := range ds {
		pos = d.Apply(pos)
		out[i] = pos
	}
	tracer().Debugf("%d chunks end at %v", len(chunks), pos)
	return out, nil
}

// EndPosition returns the position reached after all chunks have been
// appended at start.
func EndPosition(ctx context.Context, start Position, chunks []chunk.Chunk) (Position, error) {
	ds, err := ForwardDeltas(ctx, chunks)
	if err != nil {
		return start, err
	}
	var m chunk.Monoid
	sum := m.Zero()
	for _, d := range ds {
		sum = m.Add(sum, d)
	}
	return sum.Apply(start), nil
}

// BackwardPositions composes chunks tail to head. The running position is
// seeded with the BackwardStart of the last chunk; result i holds the
// position after chunks[i:] have been composed.
func BackwardPositions(ctx context.Context, chunks []chunk.Chunk) ([]Position, error) {
	if len(chunks) == 0 {
		return nil, nil
	}
	ds, err := BackwardDeltas(ctx, chunks)
	if err != nil {
		return nil, err
	}
	out := make([]Position, len(ds))
	pos := chunks[len(chunks)-1].BackwardStart()
	for i := len(ds) - 1; i >= 0; i-- {
		pos = ds[i].Apply(pos)
		out[i] = pos
	}
	return out, nil
}
