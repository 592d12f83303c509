// Package store keeps the per-user dashboard sessions: a product repository, the
// current criteria and page, and the derived view recomputed after every change.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
	"go.uber.org/zap"
)

const (
	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultTopProducts    = 5
)

var ErrInvalidPageSize = errors.New("page size must be positive")

type Options struct {
	PageSize          int
	LowStockThreshold int
	SearchDebounce    time.Duration
	TopProducts       int
}

func (o Options) withDefaults() Options {
	if o.PageSize < 1 {
		o.PageSize = view.DefaultPageSize
	}
	if o.LowStockThreshold <= 0 {
		o.LowStockThreshold = view.DefaultLowStockThreshold
	}
	if o.SearchDebounce <= 0 {
		o.SearchDebounce = DefaultSearchDebounce
	}
	if o.TopProducts <= 0 {
		o.TopProducts = DefaultTopProducts
	}
	return o
}

// DerivedView is everything the dashboard panels render, computed in one pass from
// the repository and criteria.
type DerivedView struct {
	Criteria   view.Criteria
	Products   []models.Product
	Page       view.Page[models.Product]
	Pages      []int
	Summary    view.Summary
	Top        []models.Product
	Points     []view.ProductPoint
	Categories []string
}

// Dashboard is one user's session. Its methods are safe for concurrent use.
type Dashboard struct {
	mu       sync.Mutex
	repo     repo.ProductRepository
	opts     Options
	criteria view.Criteria
	page     int
	pageSize int
	current  DerivedView

	search *Debouncer
	// searchGen counts explicit search changes. A debounced term typed before the
	// latest one is discarded.
	searchGen uint64
	log       *zap.Logger
}

func NewDashboard(r repo.ProductRepository, opts Options, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	opts = opts.withDefaults()
	d := &Dashboard{
		repo:     r,
		opts:     opts,
		criteria: view.DefaultCriteria(r.All(), opts.LowStockThreshold),
		page:     1,
		pageSize: opts.PageSize,
		search:   NewDebouncer(opts.SearchDebounce),
		log:      log,
	}
	d.recompute()
	return d
}

// recompute rebuilds the derived view from scratch. Callers hold d.mu.
func (d *Dashboard) recompute() {
	products := d.repo.All()
	all := view.AllCategories(products)
	d.criteria.SyncRepository(products)

	seq := view.ComputeView(products, d.criteria)

	rows := d.criteria.Categories
	if len(rows) == 0 {
		rows = all
	}

	page := view.Paginate(seq, d.pageSize, d.page)
	d.page = page.Page

	d.current = DerivedView{
		Criteria:   d.criteria.Clone(),
		Products:   seq,
		Page:       page,
		Pages:      view.PageWindow(page.Page, page.TotalPages, 5),
		Summary:    view.Aggregate(seq, rows, d.criteria.LowStockThreshold),
		Top:        view.TopProducts(seq, d.opts.TopProducts),
		Points:     view.Points(seq),
		Categories: all,
	}
	d.log.Debug("view recomputed",
		zap.Int("products", len(products)),
		zap.Int("matched", len(seq)),
		zap.Int("page", page.Page))
}

// View returns the latest derived view.
func (d *Dashboard) View() DerivedView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

func (d *Dashboard) Criteria() view.Criteria {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.criteria.Clone()
}

func (d *Dashboard) Categories() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current.Categories
}

func (d *Dashboard) Product(id int) (models.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.repo.GetByID(id)
}

func (d *Dashboard) AddProduct(fields models.ProductFields) (models.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, err := d.repo.Add(fields)
	if err != nil {
		return models.Product{}, err
	}
	d.recompute()
	return p, nil
}

// UpdateProduct reports found=false without error when id is unknown.
func (d *Dashboard) UpdateProduct(id int, fields models.ProductFields) (models.Product, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, found, err := d.repo.Update(id, fields)
	if err != nil || !found {
		return p, found, err
	}
	d.recompute()
	return p, true, nil
}

func (d *Dashboard) RemoveProduct(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.repo.Remove(id) {
		return false
	}
	d.recompute()
	return true
}

func (d *Dashboard) RemoveProducts(ids []int) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.repo.RemoveMany(ids)
	if n > 0 {
		d.recompute()
	}
	return n
}

// ImportProducts adds every row that passes validation and returns the errors of the
// others, indexed like rows.
func (d *Dashboard) ImportProducts(rows []models.ProductFields) ([]models.Product, map[int]error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	added := make([]models.Product, 0, len(rows))
	failed := map[int]error{}
	for i, fields := range rows {
		p, err := d.repo.Add(fields)
		if err != nil {
			failed[i] = err
			continue
		}
		added = append(added, p)
	}
	if len(added) > 0 {
		d.recompute()
	}
	return added, failed
}

// UpdateCriteria applies patch after validating the result. A changed search term
// resets the page to 1 and drops any pending debounced search.
func (d *Dashboard) UpdateCriteria(patch view.CriteriaPatch) (view.Criteria, error) {
	if patch.Search != nil {
		d.search.Cancel()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	next := patch.Apply(d.criteria)
	if err := next.Validate(); err != nil {
		return d.criteria.Clone(), err
	}
	if patch.Search != nil {
		d.searchGen++
	}
	if next.Search != d.criteria.Search {
		d.page = 1
	}
	d.criteria = next
	d.recompute()
	return d.criteria.Clone(), nil
}

// SetSearch applies term immediately.
func (d *Dashboard) SetSearch(term string) {
	d.search.Cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.searchGen++
	d.applySearch(term)
}

func (d *Dashboard) applySearch(term string) {
	if term == d.criteria.Search {
		return
	}
	d.criteria.Search = term
	d.page = 1
	d.recompute()
}

// TypeSearch records a keystroke. The term is applied once no other keystroke
// arrives for the configured debounce delay.
func (d *Dashboard) TypeSearch(term string) {
	d.mu.Lock()
	gen := d.searchGen
	d.mu.Unlock()

	d.search.Schedule(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if gen != d.searchGen {
			return
		}
		d.applySearch(term)
	})
}

// FlushSearch applies a pending search term now and reports whether there was one.
func (d *Dashboard) FlushSearch() bool {
	return d.search.Flush()
}

func (d *Dashboard) SearchPending() bool {
	return d.search.Pending()
}

func (d *Dashboard) ApplyStockPreset(tier view.StockPreset) (view.Criteria, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.criteria.Clone()
	if err := next.ApplyStockPreset(tier, d.repo.All()); err != nil {
		return d.criteria.Clone(), err
	}
	d.criteria = next
	d.recompute()
	return d.criteria.Clone(), nil
}

// ResetCriteria restores the defaults for the current repository, search term included.
func (d *Dashboard) ResetCriteria() view.Criteria {
	d.search.Cancel()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.criteria = view.DefaultCriteria(d.repo.All(), d.opts.LowStockThreshold)
	d.searchGen++
	d.page = 1
	d.recompute()
	return d.criteria.Clone()
}

// SetPage moves to page, clamped into the valid range.
func (d *Dashboard) SetPage(page int) view.Page[models.Product] {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.page = page
	d.recompute()
	return d.current.Page
}

// SetPageSize changes the page size and goes back to the first page.
func (d *Dashboard) SetPageSize(size int) error {
	if size < 1 {
		return ErrInvalidPageSize
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if size == d.pageSize {
		return nil
	}
	d.pageSize = size
	d.page = 1
	d.recompute()
	return nil
}

// Close drops any pending search.
func (d *Dashboard) Close() {
	d.search.Cancel()
}
