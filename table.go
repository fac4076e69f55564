package gridkit

import "fmt"

// Table is a virtualized, selectable table widget core. It owns the
// selection model, the item and column stores, the layout caches and
// the input state machines, and paints itself into a DrawList.
//
// All methods must be called from the single thread that owns the
// widget. Population and paint callbacks run synchronously inline and
// may dispose the table; every call site re-checks liveness afterward.
type Table struct {
	style    Style
	font     Font
	renderer Renderer

	rows    *rowStore
	columns columnStore
	sel     *SelectionModel

	bounds  Rect
	hscroll float32

	headerVisible bool
	linesVisible  bool
	checkStyle    bool
	virtual       bool
	cellCaching   bool
	focused       bool
	disposed      bool

	headerBg      uint32
	headerFg      uint32
	sortColumn    int // Creation index, -1 = none
	sortDirection SortDirection

	hoverRow int
	cursor   Cursor
	resize   resizeState
	reorder  reorderState

	prefSize  Vec2
	prefValid bool

	onPopulate     PopulateFunc
	onMeasure      MeasureFunc
	onErase        EraseFunc
	onPaint        PaintFunc
	onSelect       SelectionFunc
	onActivate     SelectionFunc
	onColumnSelect ColumnFunc
}

// Option configures a Table at construction.
type Option func(*Table)

// WithStyle sets the table's visual style.
func WithStyle(s Style) Option {
	return func(t *Table) { t.style = s }
}

// WithFont injects the font used for measurement and drawing.
func WithFont(f Font) Option {
	return func(t *Table) { t.font = f }
}

// WithRenderer swaps the default renderer for a custom implementation.
func WithRenderer(r Renderer) Option {
	return func(t *Table) { t.renderer = r }
}

// WithMultiSelection enables multi-row selection.
func WithMultiSelection() Option {
	return func(t *Table) { t.sel = NewSelectionModel(false) }
}

// WithVirtual puts the table in virtual mode: items materialize lazily
// and populate fills their content on first access.
func WithVirtual(populate PopulateFunc) Option {
	return func(t *Table) {
		t.virtual = true
		t.onPopulate = populate
	}
}

// WithCheckBoxes gives every row a leading checkbox.
func WithCheckBoxes() Option {
	return func(t *Table) { t.checkStyle = true }
}

// WithCellCaching controls memoization of measured cell sizes.
// Enabled by default; disable to force re-measurement on every use.
func WithCellCaching(enabled bool) Option {
	return func(t *Table) { t.cellCaching = enabled }
}

// New creates a table. By default it is dense, single-selection, with
// a visible header, cell caching and the built-in renderer and font.
func New(opts ...Option) *Table {
	t := &Table{
		renderer:      DefaultRenderer{},
		sel:           NewSelectionModel(true),
		headerVisible: true,
		cellCaching:   true,
		sortColumn:    -1,
		hoverRow:      -1,
	}
	t.style = DefaultStyle()
	t.resize.Reset()
	t.reorder.Reset()

	for _, opt := range opts {
		opt(t)
	}

	if t.font == nil {
		t.font = NewFixedFont(t.style.CharWidth, t.style.CharHeight)
	}
	t.rows = newRowStore(t.virtual)
	return t
}

// checkLive fails with ErrDisposed on a disposed table.
func (t *Table) checkLive() error {
	if t.disposed {
		return ErrDisposed
	}
	return nil
}

// Disposed reports whether the table has been disposed.
func (t *Table) Disposed() bool {
	return t.disposed
}

// Dispose releases every item and column and clears all caches.
// The table is unusable afterwards; all operations fail with
// ErrDisposed.
func (t *Table) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true

	for _, it := range t.rows.releaseAll() {
		it.release()
	}
	for _, col := range t.columns.cols {
		col.disposed = true
		col.table = nil
	}
	t.columns = columnStore{}
	t.sel.SetCount(0)
	t.prefValid = false
	t.onPopulate = nil
	t.onMeasure = nil
	t.onErase = nil
	t.onPaint = nil
	t.onSelect = nil
	t.onActivate = nil
	t.onColumnSelect = nil
}

// Bounds returns the table's client area.
func (t *Table) Bounds() Rect {
	return t.bounds
}

// SetBounds positions the table's client area in window coordinates.
func (t *Table) SetBounds(r Rect) {
	t.bounds = r
}

// Focused reports whether the table has keyboard focus.
func (t *Table) Focused() bool {
	return t.focused
}

// SetFocused tells the table whether it has keyboard focus. The focus
// row indicator only draws while focused.
func (t *Table) SetFocused(focused bool) {
	t.focused = focused
}

// Style returns the current style for inspection.
func (t *Table) Style() Style {
	return t.style
}

// SetFont replaces the font and drops all cached geometry.
func (t *Table) SetFont(f Font) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: font", ErrNilArgument)
	}
	t.font = f
	t.invalidateLayout()
	return nil
}

// Virtual reports whether the table is in virtual mode.
func (t *Table) Virtual() bool {
	return t.virtual
}

// --- Items ---

// ItemCount returns the total row count.
func (t *Table) ItemCount() int {
	return t.rows.count()
}

// SetItemCount resizes the table. Dense tables create and destroy
// items eagerly; virtual tables only adjust the authoritative count,
// evicting materialized items at or beyond the new count. Growing a
// virtual table never populates eagerly.
func (t *Table) SetItemCount(n int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	evicted := t.rows.setCount(n, func() *Item { return newItem(t) })
	for _, it := range evicted {
		it.release()
	}
	t.sel.SetCount(n)
	t.invalidateLayout()
	return nil
}

// NewItem appends a row and returns its item.
func (t *Table) NewItem() (*Item, error) {
	return t.InsertItem(t.rows.count())
}

// InsertItem creates a row at index, shifting subsequent rows down.
func (t *Table) InsertItem(index int) (*Item, error) {
	if err := t.checkLive(); err != nil {
		return nil, err
	}
	it := newItem(t)
	if err := t.rows.insert(it, index); err != nil {
		return nil, err
	}
	it.populated = true // Explicitly created items never re-populate.
	if err := t.sel.Add(index); err != nil {
		// The stores just disagreed on the valid range.
		panic(fmt.Sprintf("gridkit: selection desync on insert: %v", err))
	}
	t.contentSizeChanged()
	return it, nil
}

// Item returns the row at index, materializing and populating it in
// virtual mode.
func (t *Table) Item(index int) (*Item, error) {
	if err := t.checkLive(); err != nil {
		return nil, err
	}
	return t.itemFor(index)
}

// PeekItem returns the row at index only if it is materialized.
// It never triggers population.
func (t *Table) PeekItem(index int) *Item {
	return t.rows.peek(index)
}

// itemFor fetches a row, creating and populating virtual items on
// first access. The population callback may dispose the table or the
// item; callers must re-check both afterward.
func (t *Table) itemFor(index int) (*Item, error) {
	it, err := t.rows.get(index, func() *Item { return newItem(t) })
	if err != nil {
		return nil, err
	}
	if !t.virtual || it.populated {
		return it, nil
	}

	// The flag is set before the callback so a re-entrant access to
	// the same index does not recurse.
	it.populated = true
	if t.onPopulate != nil {
		t.onPopulate(it, index)
		if t.disposed || it.disposed {
			return nil, ErrDisposed
		}
	}
	t.contentSizeChanged()
	return it, nil
}

// Remove deletes the row at index, shifting subsequent rows up and
// updating selection bookkeeping.
func (t *Table) Remove(index int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	removed, err := t.rows.remove(index)
	if err != nil {
		return err
	}
	if err := t.sel.Remove(index); err != nil {
		panic(fmt.Sprintf("gridkit: selection desync on remove: %v", err))
	}
	if removed != nil {
		removed.release()
	}
	switch {
	case t.hoverRow == index:
		t.hoverRow = -1
	case t.hoverRow > index:
		t.hoverRow--
	}
	t.contentSizeChanged()
	return nil
}

// RemoveAll deletes every row.
func (t *Table) RemoveAll() error {
	if err := t.checkLive(); err != nil {
		return err
	}
	for _, it := range t.rows.releaseAll() {
		it.release()
	}
	if t.virtual {
		t.rows.virtualCount = 0
	}
	t.sel.SetCount(0)
	t.hoverRow = -1
	t.invalidateLayout()
	return nil
}

// Clear resets the row at index to its unpopulated state without
// changing identity or count. Virtual rows re-populate on next access.
func (t *Table) Clear(index int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if index < 0 || index >= t.rows.count() {
		return errOutOfRange(index, t.rows.count())
	}
	if it := t.rows.peek(index); it != nil {
		it.clear()
		t.contentSizeChanged()
	}
	return nil
}

// ClearAll resets every materialized row to its unpopulated state.
func (t *Table) ClearAll() error {
	if err := t.checkLive(); err != nil {
		return err
	}
	t.rows.each(func(_ int, it *Item) { it.clear() })
	t.contentSizeChanged()
	return nil
}

// --- Columns ---

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return t.columns.count()
}

// Column returns the column at the given creation index.
func (t *Table) Column(index int) (*Column, error) {
	if err := t.checkLive(); err != nil {
		return nil, err
	}
	return t.columns.at(index)
}

// NewColumn appends a column with the given header text and width.
func (t *Table) NewColumn(text string, width float32) (*Column, error) {
	return t.InsertColumn(t.columns.count(), text, width)
}

// InsertColumn creates a column at the given creation index. Later
// columns keep their identity; the display order is patched so every
// existing column keeps its visual position.
func (t *Table) InsertColumn(index int, text string, width float32) (*Column, error) {
	if err := t.checkLive(); err != nil {
		return nil, err
	}
	col := &Column{
		table:     t,
		text:      text,
		width:     width,
		resizable: true,
		moveable:  true,
	}
	if err := t.columns.insert(col, index); err != nil {
		return nil, err
	}
	if t.sortColumn >= index {
		t.sortColumn++
	}
	t.invalidateLayout()
	return col, nil
}

// removeColumn is called from Column.Dispose.
func (t *Table) removeColumn(col *Column) {
	index := t.columns.indexOf(col)
	if index < 0 {
		return
	}
	_ = t.columns.remove(index)
	switch {
	case t.sortColumn == index:
		t.sortColumn = -1
		t.sortDirection = SortNone
	case t.sortColumn > index:
		t.sortColumn--
	}
	t.invalidateLayout()
}

// ColumnOrder returns a copy of the display-order permutation: entry i
// is the creation index of the i-th column from the left.
func (t *Table) ColumnOrder() []int {
	return t.columns.displayOrder()
}

// SetColumnOrder replaces the display order. The argument must be a
// bijection over [0, ColumnCount); otherwise the call fails and the
// prior order is left unchanged.
func (t *Table) SetColumnOrder(order []int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if err := t.columns.setOrder(order); err != nil {
		return err
	}
	t.columnGeometryChanged()
	return nil
}

// --- Header, lines, sort ---

// HeaderVisible reports whether the header strip is shown.
func (t *Table) HeaderVisible() bool {
	return t.headerVisible
}

// SetHeaderVisible toggles the header strip and drops cached geometry.
func (t *Table) SetHeaderVisible(visible bool) {
	if t.disposed || t.headerVisible == visible {
		return
	}
	t.headerVisible = visible
	t.invalidateLayout()
}

// LinesVisible reports whether grid lines are drawn.
func (t *Table) LinesVisible() bool {
	return t.linesVisible
}

// SetLinesVisible toggles grid lines, which contribute to row pitch.
func (t *Table) SetLinesVisible(visible bool) {
	if t.disposed || t.linesVisible == visible {
		return
	}
	t.linesVisible = visible
	t.invalidateLayout()
}

// SetHeaderBackground overrides the header background color.
// 0 restores the style default.
func (t *Table) SetHeaderBackground(color uint32) {
	t.headerBg = color
}

// SetHeaderForeground overrides the header text color. 0 restores the
// style default.
func (t *Table) SetHeaderForeground(color uint32) {
	t.headerFg = color
}

// SortColumn returns the column carrying the sort indicator, or nil.
func (t *Table) SortColumn() *Column {
	if t.sortColumn < 0 || t.sortColumn >= t.columns.count() {
		return nil
	}
	return t.columns.cols[t.sortColumn]
}

// SetSortColumn moves the sort indicator to the column. Sorting the
// data itself is the caller's responsibility. Pass nil to clear.
func (t *Table) SetSortColumn(col *Column) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if col == nil {
		t.sortColumn = -1
		return nil
	}
	index := t.columns.indexOf(col)
	if index < 0 {
		return fmt.Errorf("%w: column not in table", ErrInvalidArgument)
	}
	t.sortColumn = index
	return nil
}

// SortDirection returns the sort indicator direction.
func (t *Table) SortDirection() SortDirection {
	return t.sortDirection
}

// SetSortDirection sets the sort indicator direction.
func (t *Table) SetSortDirection(dir SortDirection) {
	if t.disposed {
		return
	}
	t.sortDirection = dir
}

// --- Selection (delegated to the SelectionModel) ---

// SelectionCount returns the number of selected rows.
func (t *Table) SelectionCount() int {
	return t.sel.SelectionCount()
}

// SelectionIndices returns the selected row indices in ascending order.
func (t *Table) SelectionIndices() []int {
	return t.sel.SelectionIndices()
}

// SelectionIndex returns the lowest selected index, or -1.
func (t *Table) SelectionIndex() int {
	return t.sel.SelectionIndex()
}

// IsSelected reports whether the row at index is selected.
func (t *Table) IsSelected(index int) bool {
	return t.sel.IsSelected(index)
}

// Select adds the given indices to the selection. Out-of-range entries
// are skipped; in single-selection mode more than one index is a no-op.
func (t *Table) Select(indices []int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	_, err := t.sel.Select(indices)
	return err
}

// SelectRange selects every row in [start, end], clamped to the valid
// range. A multi-selection convenience; in single mode it is a no-op
// unless the range holds exactly one row.
func (t *Table) SelectRange(start, end int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	count := t.rows.count()
	if count == 0 || start > end || end < 0 || start >= count {
		return nil
	}
	start = clampi(start, 0, count-1)
	end = clampi(end, 0, count-1)
	indices := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		indices = append(indices, i)
	}
	_, err := t.sel.Select(indices)
	return err
}

// Deselect removes the given indices from the selection.
func (t *Table) Deselect(indices []int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	_, err := t.sel.Deselect(indices)
	return err
}

// DeselectAll empties the selection.
func (t *Table) DeselectAll() error {
	if err := t.checkLive(); err != nil {
		return err
	}
	t.sel.ClearSelection()
	return nil
}

// SelectAll selects every row in multi-selection mode.
func (t *Table) SelectAll() error {
	if err := t.checkLive(); err != nil {
		return err
	}
	t.sel.SelectAll()
	return nil
}

// SetSelection replaces the selection with the given indices, moves
// focus to the first and scrolls it into view.
func (t *Table) SetSelection(indices []int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if indices == nil {
		return fmt.Errorf("%w: indices", ErrNilArgument)
	}
	t.sel.ClearSelection()
	if _, err := t.sel.Select(indices); err != nil {
		return err
	}
	if len(indices) > 0 && indices[0] >= 0 && indices[0] < t.rows.count() {
		_ = t.sel.SetCurrent(indices[0])
		t.scrollIntoView(indices[0])
	}
	return nil
}

// SetSelectionIndex selects exactly one row, setting anchor and focus.
func (t *Table) SetSelectionIndex(index int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if err := t.sel.SetSelection(index); err != nil {
		return err
	}
	t.scrollIntoView(index)
	return nil
}

// FocusIndex returns the keyboard focus row, or -1.
func (t *Table) FocusIndex() int {
	return t.sel.Current()
}

// TopIndex returns the first visible row index.
func (t *Table) TopIndex() int {
	return t.sel.TopIndex()
}

// SetTopIndex scrolls the given row to the top of the view.
func (t *Table) SetTopIndex(index int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	return t.sel.SetTopIndex(index)
}

// --- Callbacks ---

// OnMeasure registers the measure callback, invoked before each cell
// is drawn. The callback may enlarge the cell's bounds.
func (t *Table) OnMeasure(f MeasureFunc) { t.onMeasure = f }

// OnErase registers the erase callback, which negotiates the default
// drawing for each cell via the event's Detail bits and Doit flag.
func (t *Table) OnErase(f EraseFunc) { t.onErase = f }

// OnPaint registers the paint callback, invoked after default drawing
// for every cell regardless of what erase negotiated.
func (t *Table) OnPaint(f PaintFunc) { t.onPaint = f }

// OnSelect registers the selection callback, fired on click- and
// keyboard-driven selection changes and on checkbox toggles.
func (t *Table) OnSelect(f SelectionFunc) { t.onSelect = f }

// OnActivate registers the activation callback, fired on row double
// click.
func (t *Table) OnActivate(f SelectionFunc) { t.onActivate = f }

// OnColumnSelect registers the header click callback, fired on a plain
// (non-drag) header click.
func (t *Table) OnColumnSelect(f ColumnFunc) { t.onColumnSelect = f }

// --- Geometry queries for collaborators ---

// HeaderHeight returns the header strip height in pixels.
func (t *Table) HeaderHeight() float32 {
	return t.headerHeight()
}

// ItemHeight returns the row height of the given row.
func (t *Table) ItemHeight(index int) float32 {
	return t.itemHeight(index)
}

// VisibleRange returns the inclusive row index range currently in
// view, or (0, -1) when the table is empty.
func (t *Table) VisibleRange() (first, last int) {
	return t.visibleRange()
}

// PreferredSize returns the aggregate content size used to size
// scrollbars.
func (t *Table) PreferredSize() Vec2 {
	return t.preferredSize()
}

// ItemBounds returns the full row bounds for index.
func (t *Table) ItemBounds(index int) Rect {
	return t.itemBounds(index)
}

// CellBounds returns the bounds of one cell.
func (t *Table) CellBounds(index, column int) Rect {
	return t.cellBounds(index, column)
}
