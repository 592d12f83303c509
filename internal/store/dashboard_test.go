package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Alpha", Category: "A", Price: 10, UnitsSold: 1, InStock: 5, Date: "2024-01-01"},
		{ID: 2, Name: "Beta", Category: "A", Price: 20, UnitsSold: 2, InStock: 50, Date: "2024-01-02"},
		{ID: 3, Name: "Gamma", Category: "B", Price: 30, UnitsSold: 3, InStock: 20, Date: "2024-01-03"},
	}
}

func newDashboard(t *testing.T, opts Options) *Dashboard {
	t.Helper()
	r := repo.NewInMemoryProductRepository()
	require.NoError(t, r.Replace(fixture()))
	d := NewDashboard(r, opts, nil)
	t.Cleanup(d.Close)
	return d
}

func viewIDs(v DerivedView) []int {
	out := make([]int, len(v.Products))
	for i, p := range v.Products {
		out[i] = p.ID
	}
	return out
}

func TestNewDashboard_InitialView(t *testing.T) {
	d := newDashboard(t, Options{})

	v := d.View()

	assert.Equal(t, []int{1, 2, 3}, viewIDs(v))
	assert.Equal(t, []string{"A", "B"}, v.Categories)
	assert.Equal(t, 1, v.Page.Page)
	assert.Equal(t, view.DefaultPageSize, v.Page.PageSize)
	assert.Equal(t, 140.0, v.Summary.Overall.Revenue)
	assert.Equal(t, "B", v.Summary.Overall.BestCategory)
	assert.Len(t, v.Summary.PerCategory, 2)
}

func TestSetPage_ClampsToLastPage(t *testing.T) {
	d := newDashboard(t, Options{PageSize: 1})

	page := d.SetPage(5)

	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].ID)
}

func TestFilterShrinkReclampsPage(t *testing.T) {
	d := newDashboard(t, Options{PageSize: 1})
	d.SetPage(3)

	_, err := d.UpdateCriteria(view.CriteriaPatch{Price: &view.Range[float64]{Min: 0, Max: 15}})
	require.NoError(t, err)

	v := d.View()
	assert.Equal(t, 1, v.Page.Page)
	assert.Equal(t, 1, v.Page.TotalPages)
}

func TestSearchAndPageSizeResetPage(t *testing.T) {
	d := newDashboard(t, Options{PageSize: 1})

	d.SetPage(2)
	d.SetSearch("a")
	assert.Equal(t, 1, d.View().Page.Page)

	d.SetPage(2)
	require.NoError(t, d.SetPageSize(2))
	assert.Equal(t, 1, d.View().Page.Page)
	assert.Equal(t, 2, d.View().Page.PageSize)

	assert.ErrorIs(t, d.SetPageSize(0), ErrInvalidPageSize)
}

func TestProductMutationsRecomputeView(t *testing.T) {
	d := newDashboard(t, Options{})

	p, err := d.AddProduct(models.ProductFields{
		Name: ptr("Delta"), Category: ptr("B"), Price: ptr(15.0), UnitsSold: ptr(2), InStock: ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
	assert.Equal(t, 4, d.View().Page.TotalCount)

	_, found, err := d.UpdateProduct(4, models.ProductFields{Name: ptr("Aardvark")})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{4, 1, 2, 3}, viewIDs(d.View()))

	assert.True(t, d.RemoveProduct(4))
	assert.Equal(t, 2, d.RemoveProducts([]int{1, 2, 99}))
	assert.Equal(t, []int{3}, viewIDs(d.View()))
}

func TestAddProduct_InvalidLeavesViewUntouched(t *testing.T) {
	d := newDashboard(t, Options{})
	before := d.View()

	_, err := d.AddProduct(models.ProductFields{Name: ptr("Broken"), Category: ptr("A"), Price: ptr(0.0)})

	assert.True(t, repo.IsValidationError(err))
	assert.Equal(t, before, d.View())
}

func TestUnknownIDsAreSilentNoOps(t *testing.T) {
	d := newDashboard(t, Options{})

	_, found, err := d.UpdateProduct(42, models.ProductFields{Price: ptr(1.0)})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.False(t, d.RemoveProduct(42))
	assert.Zero(t, d.RemoveProducts([]int{42, 43}))
	assert.Len(t, d.View().Products, 3)
}

func TestImportProducts(t *testing.T) {
	d := newDashboard(t, Options{})

	added, failed := d.ImportProducts([]models.ProductFields{
		{Name: ptr("Delta"), Category: ptr("A"), Price: ptr(12.0), UnitsSold: ptr(1), InStock: ptr(6)},
		{Name: ptr(""), Category: ptr("A"), Price: ptr(12.0)},
	})

	require.Len(t, added, 1)
	assert.Equal(t, 4, added[0].ID)
	require.Contains(t, failed, 1)
	assert.True(t, repo.IsValidationError(failed[1]))
	assert.Equal(t, 4, d.View().Page.TotalCount)
}

func TestUpdateCriteria_RejectsInvalidRange(t *testing.T) {
	d := newDashboard(t, Options{})
	before := d.Criteria()

	_, err := d.UpdateCriteria(view.CriteriaPatch{InStock: &view.Range[int]{Min: 10, Max: 1}})

	assert.ErrorIs(t, err, view.ErrInvalidRange)
	assert.Equal(t, before, d.Criteria())
}

func TestUpdateCriteria_CategorySelection(t *testing.T) {
	d := newDashboard(t, Options{})

	_, err := d.UpdateCriteria(view.CriteriaPatch{Categories: &[]string{"B"}})
	require.NoError(t, err)

	v := d.View()
	assert.Equal(t, []int{3}, viewIDs(v))
	require.Len(t, v.Summary.PerCategory, 1)
	assert.Equal(t, "B", v.Summary.PerCategory[0].Category)
	assert.Equal(t, []string{"A", "B"}, v.Categories)
}

func TestApplyStockPreset(t *testing.T) {
	d := newDashboard(t, Options{})

	c, err := d.ApplyStockPreset(view.PresetCritical)
	require.NoError(t, err)
	assert.True(t, c.LowStockOnly)
	assert.Equal(t, []int{1}, viewIDs(d.View()))

	_, err = d.ApplyStockPreset("bogus")
	assert.True(t, errors.Is(err, view.ErrUnknownPreset))
	assert.Equal(t, c, d.Criteria())
}

func TestResetCriteria_ClearsSearchAndFilters(t *testing.T) {
	d := newDashboard(t, Options{SearchDebounce: time.Hour})
	d.SetSearch("gam")
	_, _ = d.ApplyStockPreset(view.PresetCritical)
	d.TypeSearch("be")

	c := d.ResetCriteria()

	assert.Empty(t, c.Search)
	assert.False(t, c.LowStockOnly)
	assert.False(t, d.SearchPending())
	assert.Equal(t, []int{1, 2, 3}, viewIDs(d.View()))
}

func TestTypeSearch_AppliesLastTermAfterQuietPeriod(t *testing.T) {
	d := newDashboard(t, Options{SearchDebounce: 20 * time.Millisecond})

	d.TypeSearch("al")
	d.TypeSearch("gam")
	assert.Equal(t, "", d.Criteria().Search, "search applies only after the quiet period")

	require.Eventually(t, func() bool { return d.Criteria().Search == "gam" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{3}, viewIDs(d.View()))
}

func TestFlushSearch(t *testing.T) {
	d := newDashboard(t, Options{SearchDebounce: time.Hour})

	d.TypeSearch("BET")
	require.True(t, d.SearchPending())

	assert.True(t, d.FlushSearch())
	assert.Equal(t, []int{2}, viewIDs(d.View()))
	assert.False(t, d.FlushSearch())
}

func TestTypeSearch_ExplicitChangeWinsOverStaleKeystroke(t *testing.T) {
	d := newDashboard(t, Options{SearchDebounce: time.Hour})

	d.TypeSearch("alp")
	// Grab the callback as if its timer had already fired and was waiting for d.mu.
	d.search.mu.Lock()
	stale := d.search.pending
	d.search.mu.Unlock()
	require.NotNil(t, stale)

	d.SetSearch("gam")
	stale()

	assert.Equal(t, "gam", d.Criteria().Search)
	assert.Equal(t, []int{3}, viewIDs(d.View()))

	d.TypeSearch("bet")
	require.True(t, d.FlushSearch())
	assert.Equal(t, "bet", d.Criteria().Search, "keystrokes after the explicit change still apply")
}

type staticSeed struct {
	products []models.Product
	err      error
	loads    atomic.Int32
	// block, when set, holds Load for the subject until it is closed.
	block   map[string]chan struct{}
	started chan string
}

type subjectKey struct{}

func (s *staticSeed) Load(ctx context.Context) ([]models.Product, error) {
	s.loads.Add(1)
	if subject, ok := ctx.Value(subjectKey{}).(string); ok {
		if s.started != nil {
			s.started <- subject
		}
		if ch, ok := s.block[subject]; ok {
			<-ch
		}
	}
	return s.products, s.err
}

func TestSessions_OnePerSubject(t *testing.T) {
	seed := &staticSeed{products: fixture()}
	s := NewSessions(seed, Options{}, nil)
	t.Cleanup(s.Close)
	ctx := context.Background()

	alice, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	again, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	bob, err := s.Get(ctx, "bob")
	require.NoError(t, err)

	assert.Same(t, alice, again)
	assert.NotSame(t, alice, bob)
	assert.EqualValues(t, 2, seed.loads.Load())

	alice.RemoveProduct(1)
	assert.Len(t, bob.View().Products, 3, "sessions must not share repositories")

	s.Drop("alice")
	assert.Equal(t, 1, s.Len())
}

func TestSessions_SeedError(t *testing.T) {
	s := NewSessions(&staticSeed{err: errors.New("boom")}, Options{}, nil)

	_, err := s.Get(context.Background(), "alice")

	assert.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestSessions_SlowSeedDoesNotBlockOtherSubjects(t *testing.T) {
	release := make(chan struct{})
	seed := &staticSeed{
		products: fixture(),
		block:    map[string]chan struct{}{"alice": release},
		started:  make(chan string, 4),
	}
	s := NewSessions(seed, Options{}, nil)
	t.Cleanup(s.Close)

	aliceDone := make(chan error, 1)
	go func() {
		_, err := s.Get(context.WithValue(context.Background(), subjectKey{}, "alice"), "alice")
		aliceDone <- err
	}()
	require.Equal(t, "alice", <-seed.started)

	bobDone := make(chan error, 1)
	go func() {
		_, err := s.Get(context.WithValue(context.Background(), subjectKey{}, "bob"), "bob")
		bobDone <- err
	}()

	select {
	case err := <-bobDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bob's session waited for alice's seed")
	}
	assert.Equal(t, 1, s.Len())

	close(release)
	require.NoError(t, <-aliceDone)
	assert.Equal(t, 2, s.Len())
}

func TestSessions_ConcurrentFirstRequestsSeedOnce(t *testing.T) {
	release := make(chan struct{})
	seed := &staticSeed{
		products: fixture(),
		block:    map[string]chan struct{}{"alice": release},
		started:  make(chan string, 8),
	}
	s := NewSessions(seed, Options{}, nil)
	t.Cleanup(s.Close)
	ctx := context.WithValue(context.Background(), subjectKey{}, "alice")

	const callers = 5
	got := make([]*Dashboard, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := s.Get(ctx, "alice")
			assert.NoError(t, err)
			got[i] = d
		}()
	}

	<-seed.started
	// Give the other callers time to join the in-flight seed before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, seed.loads.Load())
	for _, d := range got {
		assert.Same(t, got[0], d)
	}
}
