package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

const batchSize = 1_500_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func newTestDatabase(t *testing.T) database.Database {
	require := require.New(t)
	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	return db
}

func TestDatabaseReadWrite(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)

	key := []byte("counter")
	value := []byte{1, 2, 3}

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	got, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, got)

	require.NoError(db.Delete(key))
	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Close())
	require.ErrorIs(db.Put(key, value), database.ErrClosed)
	require.ErrorIs(db.Close(), database.ErrClosed)
}

func TestDatabaseHealthCheck(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)

	_, err := db.HealthCheck(context.Background())
	require.NoError(err)

	require.NoError(db.Close())
	_, err = db.HealthCheck(context.Background())
	require.ErrorIs(err, database.ErrClosed)
}

func TestDatabaseBatch(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)
	defer func() {
		require.NoError(db.Close())
	}()

	require.NoError(db.Put([]byte("stale"), []byte("x")))

	b := db.NewBatch()
	require.NoError(b.Put([]byte("a"), []byte{1}))
	require.NoError(b.Put([]byte("b"), []byte{2}))
	require.NoError(b.Delete([]byte("stale")))
	require.NotZero(b.Size())

	// nothing lands until Write
	has, err := db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)

	require.NoError(b.Write())

	got, err := db.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, got)
	got, err = db.Get([]byte("b"))
	require.NoError(err)
	require.Equal([]byte{2}, got)
	_, err = db.Get([]byte("stale"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestBatchReplay(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)
	defer func() {
		require.NoError(db.Close())
	}()

	b := db.NewBatch()
	require.NoError(b.Put([]byte("a"), []byte{1}))
	require.NoError(b.Delete([]byte("b")))

	// replaying applies the buffered operations directly
	require.NoError(b.Replay(db))

	got, err := db.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, got)

	b.Reset()
	require.Zero(b.Size())
}

func TestDatabaseIterator(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)

	require.NoError(db.Put([]byte{0x00, 0x01}, []byte("a")))
	require.NoError(db.Put([]byte{0x00, 0x02}, []byte("b")))
	require.NoError(db.Put([]byte{0x01, 0x01}, []byte("c")))

	iter := db.NewIteratorWithPrefix([]byte{0x00})
	var keys [][]byte
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	require.NoError(iter.Error())
	iter.Release()
	require.Equal([][]byte{{0x00, 0x01}, {0x00, 0x02}}, keys)

	iter = db.NewIteratorWithStart([]byte{0x00, 0x02})
	var values [][]byte
	for iter.Next() {
		values = append(values, iter.Value())
	}
	require.NoError(iter.Error())
	iter.Release()
	require.Equal([][]byte{[]byte("b"), []byte("c")}, values)

	require.NoError(db.Close())

	iter = db.NewIterator()
	require.False(iter.Next())
	require.ErrorIs(iter.Error(), database.ErrClosed)
	iter.Release()
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			tdir := b.TempDir()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(tdir, cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup keys
			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
			if err := os.RemoveAll(tdir); err != nil {
				b.Fatal(err)
			}
		})
	}
}
