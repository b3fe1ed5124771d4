package structs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStructs(t *testing.T) {
	t.Run("SyncPool/Get&Put", func(t *testing.T) {
		var created int
		pool := NewSyncPool(func() []uint32 {
			created++
			return make([]uint32, 16)
		})
		buf := pool.Get()
		require.Len(t, buf, 16)
		pool.Put(buf)
		require.GreaterOrEqual(t, created, 1)
	})

	t.Run("SyncPool/Concurrent", func(t *testing.T) {
		pool := NewSyncPool(func() *[]uint32 {
			s := make([]uint32, 64)
			return &s
		})
		var g errgroup.Group
		for w := 0; w < 8; w++ {
			w := w
			g.Go(func() error {
				for i := 0; i < 100; i++ {
					buf := pool.Get()
					for j := range *buf {
						(*buf)[j] = uint32(w)
					}
					for j := range *buf {
						if (*buf)[j] != uint32(w) {
							t.Errorf("buffer shared between goroutines")
						}
						(*buf)[j] = 0
					}
					pool.Put(buf)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	})

	t.Run("RecyclingPool/Put", func(t *testing.T) {
		var inner BufferPool[*[]uint32] = NewSyncPool(func() *[]uint32 {
			s := make([]uint32, 8)
			return &s
		})
		pool := NewRecyclingPool(inner, func(s *[]uint32) {
			for i := range *s {
				(*s)[i] = 0
			}
		})
		buf := pool.Get()
		(*buf)[3] = 7
		pool.Put(buf)
		require.True(t, cmp.Equal(make([]uint32, 8), *buf))
	})
}
