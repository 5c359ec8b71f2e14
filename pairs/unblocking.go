package pairs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lcskit/alphabet"
	"github.com/katalvlaran/lcskit/ragged"
)

// chunksPerWorker splits the ID range finer than the worker count so that
// uneven row costs even out.
const chunksPerWorker = 4

// Unblocking builds the unblocking matrix of pairs: row p lists the IDs
// found in both sourceIndex rows [p.Source+1, end) and targetIndex rows
// [p.Target+1, end), in sourceIndex order.
// Rows are computed by up to workers goroutines, each writing only its own
// slots; the matrix is assembled in ID order afterwards.
//
// Errors:
//   - ctx.Err() when ctx is done before every row is built.
//
// Complexity: O(P²/workers) time, O(P²) memory worst case.
func Unblocking(ctx context.Context, pairs []Pair, sourceIndex, targetIndex *ragged.Matrix[ID], workers int) (*ragged.Matrix[ID], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	workers = max(1, workers)
	rows := make([][]ID, len(pairs))
	chunk := max(1, (len(pairs)+workers*chunksPerWorker-1)/(workers*chunksPerWorker))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		g.Go(func() error {
			marker := alphabet.NewMarker[ID](len(pairs))
			for id := lo; id < hi; id++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := pairs[id]
				rows[id] = unblockingRow(marker,
					sourceIndex.SpanFrom(p.Source+1),
					targetIndex.SpanFrom(p.Target+1))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ragged.FromRows(rows), nil
}

// unblockingRow keeps the IDs of after that also occur in below.
// The marker is left clean for the next row.
func unblockingRow(marker *alphabet.Marker[ID], after, below []ID) []ID {
	if len(after) == 0 || len(below) == 0 {
		return []ID{}
	}
	marker.Mark(below)
	row := marker.Filter(make([]ID, 0, min(len(after), len(below))), after)
	marker.Unmark(below)

	return row
}
