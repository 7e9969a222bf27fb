package rank

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunkSuperblocks is the smallest unit of work handed to one goroutine
// (64 superblocks = 4 KiB of words).
const minChunkSuperblocks = 64

// Acquirer hands out worker slots. resource.Controller satisfies it; a nil
// Acquirer means no external limit.
type Acquirer interface {
	AcquireBackground(ctx context.Context) error
	ReleaseBackground()
}

// BuildParallel recomputes both tables using up to workers goroutines.
// Superblocks are counted independently, then a sequential prefix pass turns
// the totals into running sums. On error the index stays stale.
func (x *Index) BuildParallel(ctx context.Context, words []uint64, workers int, slots Acquirer) error {
	nsuper := SuperblocksFor(len(words))
	if workers <= 1 || nsuper <= minChunkSuperblocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		x.Build(words)
		return nil
	}

	x.valid.Store(false)

	chunk := max((nsuper+workers-1)/workers, minChunkSuperblocks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < nsuper; start += chunk {
		end := min(start+chunk, nsuper)
		g.Go(func() error {
			if slots != nil {
				if err := slots.AcquireBackground(gctx); err != nil {
					return err
				}
				defer slots.ReleaseBackground()
			}
			for s := start; s < end; s++ {
				if s%minChunkSuperblocks == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				x.Super[s] = uint64(x.countSuperblock(words, s))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	x.prefixSuper(nsuper)
	x.valid.Store(true)
	return nil
}
