package trie

import (
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedOpsMatchModel -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzRandomizedOps -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzRandomizedOps/<id>'

func randomKey(r *rand.Rand) string {
	n := r.Intn(5) + 1
	b := make([]byte, n)
	for i := range b {
		// a narrow alphabet provokes shared prefixes and duplicates
		b[i] = byte('a' + r.Intn(4))
	}
	return string(b)
}

func applyRandomOps(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	trie := New[byte, int]()
	model := make(map[string]int)

	for step := 0; step < steps; step++ {
		k := randomKey(r)
		switch op := r.Intn(10); {
		case op < 5: // insert
			_, err := trie.Insert([]byte(k), step)
			if _, dup := model[k]; dup {
				require.ErrorIs(t, err, ErrDuplicateKey, "insert of stored key %q", k)
			} else {
				require.NoError(t, err, "insert of new key %q", k)
				model[k] = step
			}
		case op < 8: // erase
			c := trie.Find([]byte(k))
			if _, stored := model[k]; stored {
				require.NotEqual(t, trie.End(), c, "stored key %q must be findable", k)
				require.NoError(t, trie.Erase(c), "erase of %q", k)
				delete(model, k)
			} else {
				require.Equal(t, trie.End(), c, "unknown key %q must not be findable", k)
			}
		case op < 9: // lookup
			v, ok := trie.Value([]byte(k))
			mv, stored := model[k]
			require.Equal(t, stored, ok, "lookup of %q", k)
			if stored {
				require.Equal(t, mv, v, "value of %q", k)
			}
		default: // clear, rarely
			if r.Intn(20) == 0 {
				trie.Clear()
				clear(model)
			}
		}
		require.NoError(t, trie.Check(), "invariants after step %d", step)
		require.Equal(t, len(model), trie.Len(), "size after step %d", step)
	}

	var got []string
	for k := range trie.Keys() {
		got = append(got, string(k))
	}
	want := slices.Sorted(maps.Keys(model))
	require.Equal(t, want, got, "traversal must visit the model keys in sorted order")
	for _, k := range want {
		v, ok := trie.Value([]byte(k))
		require.True(t, ok)
		require.Equal(t, model[k], v)
	}
}

func TestRandomizedOpsMatchModel(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 20211209} {
		applyRandomOps(t, seed, 400)
	}
}

func TestRandomizedCloneStaysDetached(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	trie := New[byte, int]()
	for i := 0; i < 50; i++ {
		trie.Insert([]byte(randomKey(r)), i)
	}
	snapshot := slices.Collect(trie.Keys())

	clone := trie.Clone()
	for i := 0; i < 50; i++ {
		k := []byte(randomKey(r))
		if c := clone.Find(k); c != clone.End() {
			require.NoError(t, clone.Erase(c))
		} else {
			clone.Insert(k, -i)
		}
	}
	require.NoError(t, clone.Check())
	require.NoError(t, trie.Check())
	require.Equal(t, snapshot, slices.Collect(trie.Keys()),
		"mutating the clone must not change the original")
}

func FuzzRandomizedOps(f *testing.F) {
	f.Add(int64(1), uint16(50))
	f.Add(int64(42), uint16(200))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		if steps > 500 {
			steps = 500
		}
		applyRandomOps(t, seed, int(steps))
	})
}
