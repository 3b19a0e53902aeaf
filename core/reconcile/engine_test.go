package reconcile

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdapter is a simple test adapter whose items are plain strings.
type mockAdapter struct {
	name           string
	builtIndex     map[string]Item
	publishedIndex map[string]Item
	builtErr       error
	publishedErr   error
	loads          atomic.Int32
}

func (m *mockAdapter) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockAdapter) LoadBuiltIndex(ctx context.Context, location string) (map[string]Item, error) {
	m.loads.Add(1)
	return m.builtIndex, m.builtErr
}

func (m *mockAdapter) LoadPublishedIndex(ctx context.Context, location string) (map[string]Item, error) {
	return m.publishedIndex, m.publishedErr
}

func (m *mockAdapter) ResolveName(built, published Item) string {
	if built != nil {
		return "built:" + built.(string)
	}
	return "published:" + published.(string)
}

func (m *mockAdapter) CompareFields(built, published Item) []string {
	if built.(string) != published.(string) {
		return []string{fmt.Sprintf("value: built=%s published=%s", built, published)}
	}
	return []string{}
}

func newMockAdapter() *mockAdapter {
	return &mockAdapter{
		builtIndex: map[string]Item{
			"a": "1",
			"b": "2",
			"c": "3",
		},
		publishedIndex: map[string]Item{
			"b": "2",
			"c": "4",
			"d": "5",
		},
	}
}

func TestBuildCache_ErrorHandling(t *testing.T) {
	tests := []struct {
		name         string
		builtErr     error
		publishedErr error
		expectErr    string
	}{
		{name: "Built load error", builtErr: fmt.Errorf("built error"), expectErr: "built error"},
		{name: "Published load error", publishedErr: fmt.Errorf("published error"), expectErr: "published error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newMockAdapter()
			adapter.builtErr = tt.builtErr
			adapter.publishedErr = tt.publishedErr

			_, err := BuildCache(context.Background(), &Spec{Adapter: adapter})
			assert.ErrorContains(t, err, tt.expectErr)
		})
	}
}

func TestReconcileAll(t *testing.T) {
	results, err := ReconcileAll(context.Background(), &Spec{Adapter: newMockAdapter()})
	require.NoError(t, err)
	require.Len(t, results, 4)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids, "results are sorted by id")

	byID := make(map[string]ReconcileResult)
	for _, r := range results {
		byID[r.ID] = r
	}

	assert.True(t, byID["a"].BuiltPresent)
	assert.False(t, byID["a"].PublishedPresent)
	assert.Equal(t, "built:1", byID["a"].Name)
	assert.Equal(t, StatusAdded, byID["a"].Status())

	assert.Empty(t, byID["b"].Mismatch)
	assert.Equal(t, StatusUnchanged, byID["b"].Status())

	assert.Equal(t, []string{"value: built=3 published=4"}, byID["c"].Mismatch)
	assert.Equal(t, StatusChanged, byID["c"].Status())

	assert.False(t, byID["d"].BuiltPresent)
	assert.Equal(t, "published:5", byID["d"].Name)
	assert.Equal(t, StatusRemoved, byID["d"].Status())
}

func TestReconcileOne(t *testing.T) {
	spec := &Spec{Adapter: newMockAdapter()}

	result, err := ReconcileOne(context.Background(), spec, "c")
	require.NoError(t, err)
	assert.True(t, result.BuiltPresent)
	assert.True(t, result.PublishedPresent)
	assert.Len(t, result.Mismatch, 1)

	missing, err := ReconcileOne(context.Background(), spec, "zzz")
	require.NoError(t, err)
	assert.False(t, missing.BuiltPresent)
	assert.False(t, missing.PublishedPresent)
	assert.Empty(t, missing.Name)
}

func TestGetOrBuildCache_ReusesFreshCache(t *testing.T) {
	adapter := newMockAdapter()
	adapter.name = "cache-reuse"
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
	t.Cleanup(func() { InvalidateCache(spec) })

	first, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	second, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), adapter.loads.Load())

	InvalidateCache(spec)
	_, err = GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, int32(2), adapter.loads.Load())
}

func TestReconcileCache_IsExpired(t *testing.T) {
	assert.True(t, (&ReconcileCache{Built: time.Now()}).IsExpired(), "zero TTL disables caching")
	assert.False(t, (&ReconcileCache{Built: time.Now(), TTL: time.Minute}).IsExpired())
	assert.True(t, (&ReconcileCache{Built: time.Now().Add(-2 * time.Minute), TTL: time.Minute}).IsExpired())
}
