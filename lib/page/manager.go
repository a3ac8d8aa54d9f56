package page

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pagecraft/pages-go/lib/db"
	"github.com/pagecraft/pages-go/lib/exception"
	page2 "github.com/pagecraft/pages-go/lib/models/page"
	"github.com/pagecraft/pages-go/lib/table"
)

var pageIdRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// ErrFormulaCell is returned when direct text entry targets a formula-derived
// cell; its displayed value is always computed, never user-edited.
var ErrFormulaCell = errors.New("cell is formula-derived, edit the formula instead")

type pageCache struct {
	pages map[string]*page2.Page
}

func (c *pageCache) Get(pageID string) *page2.Page {
	return c.pages[pageID]
}

func (c *pageCache) Set(pageID string, p *page2.Page) {
	c.pages[pageID] = p
}

func (c *pageCache) Delete(pageID string) {
	delete(c.pages, pageID)
}

// Manager loads and saves pages and drives table recalculation on every
// committing edit.
type Manager struct {
	store        db.DataStore
	cache        *pageCache
	defaultTitle string
	logger       *zap.SugaredLogger
}

func NewManager(store db.DataStore, defaultTitle string, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store:        store,
		cache:        &pageCache{pages: make(map[string]*page2.Page)},
		defaultTitle: defaultTitle,
		logger:       logger,
	}
}

func (m *Manager) IsValidPageId(pageID string) bool {
	return pageIdRegex.MatchString(pageID)
}

func (m *Manager) DoesPageExist(pageID string) bool {
	if m.cache.Get(pageID) != nil {
		return true
	}
	return m.store.DoesPageExist(pageID)
}

// CreatePage makes a new page with a fresh id and persists it.
func (m *Manager) CreatePage(title string, blocks []page2.Block) (*page2.Page, error) {
	if title == "" {
		title = m.defaultTitle
	}

	now := time.Now().UnixMilli()
	newPage := &page2.Page{
		Id:        uuid.NewString(),
		Title:     title,
		Blocks:    blocks,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.SavePage(newPage); err != nil {
		return nil, err
	}
	return newPage, nil
}

func (m *Manager) GetPage(pageID string) (*page2.Page, error) {
	if !m.IsValidPageId(pageID) {
		return nil, exception.NewPageNotFoundError(pageID)
	}

	if cachedPage := m.cache.Get(pageID); cachedPage != nil {
		return cachedPage, nil
	}

	dbPage, err := m.store.GetPage(pageID)
	if err != nil {
		return nil, err
	}

	loadedPage := mapDBPageToModel(dbPage)
	m.cache.Set(pageID, loadedPage)
	return loadedPage, nil
}

// SavePage recalculates every table on the page and persists it.
func (m *Manager) SavePage(p *page2.Page) error {
	m.RecalculatePage(p)
	p.UpdatedAt = time.Now().UnixMilli()

	if err := m.store.SavePage(mapModelToDBPage(p)); err != nil {
		return err
	}
	m.cache.Set(p.Id, p)
	return nil
}

func (m *Manager) RemovePage(pageID string) error {
	if err := m.store.RemovePage(pageID); err != nil {
		return err
	}
	m.cache.Delete(pageID)
	return nil
}

func (m *Manager) GetPageIds() []string {
	return m.store.GetPageIds()
}

// RecalculatePage recomputes every formula cell of every table on the page.
// Tables are independent scopes; a failure inside one never blocks another.
func (m *Manager) RecalculatePage(p *page2.Page) []table.CellUpdate {
	var updates []table.CellUpdate
	for blockIndex, tbl := range p.Tables() {
		grid := table.NewGrid(tablePos(p.Id, blockIndex), tbl)
		updates = append(updates, table.Recalculate(grid, m.logger)...)
	}
	return updates
}

// RecalculateTable recomputes the formula cells of one table.
func (m *Manager) RecalculateTable(p *page2.Page, blockIndex int) ([]table.CellUpdate, error) {
	grid, err := m.gridFor(p, blockIndex)
	if err != nil {
		return nil, err
	}
	return table.Recalculate(grid, m.logger), nil
}

// CommitCellValue sets a raw value on a non-formula cell, then recalculates
// the table and persists the page.
func (m *Manager) CommitCellValue(p *page2.Page, blockIndex, col, row int, value string) ([]table.CellUpdate, error) {
	grid, err := m.gridFor(p, blockIndex)
	if err != nil {
		return nil, err
	}

	cell, ok := grid.GetCell(col, row)
	if !ok {
		return nil, exception.NewTableNotFoundError(p.Id, blockIndex)
	}
	if cell.Formula != "" {
		return nil, ErrFormulaCell
	}

	grid.SetCellDisplayValue(col, row, value)
	updates := table.Recalculate(grid, m.logger)

	if err := m.persist(p); err != nil {
		return nil, err
	}
	return updates, nil
}

// CommitCellFormula stores a formula on a cell (empty formula clears), then
// recalculates the table and persists the page. The formula is cleaned with
// the forgiving commit rules of the authoring flow.
func (m *Manager) CommitCellFormula(p *page2.Page, blockIndex, col, row int, formulaText string) ([]table.CellUpdate, error) {
	grid, err := m.gridFor(p, blockIndex)
	if err != nil {
		return nil, err
	}
	if _, ok := grid.GetCell(col, row); !ok {
		return nil, exception.NewTableNotFoundError(p.Id, blockIndex)
	}

	mode := table.NewMode()
	mode.Start(grid.Position(), col, row, formulaText, "")
	comp, action := mode.Commit()

	switch action {
	case table.CommitSet:
		grid.SetCellFormula(col, row, comp.Formula)
	case table.CommitClear:
		grid.SetCellFormula(col, row, "")
		grid.SetCellDisplayValue(col, row, "")
	}

	updates := table.Recalculate(grid, m.logger)

	if err := m.persist(p); err != nil {
		return nil, err
	}
	return updates, nil
}

func (m *Manager) gridFor(p *page2.Page, blockIndex int) (*table.Grid, error) {
	tbl, ok := p.TableAt(blockIndex)
	if !ok {
		return nil, exception.NewTableNotFoundError(p.Id, blockIndex)
	}
	return table.NewGrid(tablePos(p.Id, blockIndex), tbl), nil
}

func (m *Manager) persist(p *page2.Page) error {
	p.UpdatedAt = time.Now().UnixMilli()
	if err := m.store.SavePage(mapModelToDBPage(p)); err != nil {
		return err
	}
	m.cache.Set(p.Id, p)
	return nil
}

func tablePos(pageID string, blockIndex int) string {
	return pageID + "#" + strconv.Itoa(blockIndex)
}
