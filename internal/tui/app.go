// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/wfcatalog/internal/catalog"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

// viewState selects which interaction mode the browser is in.
type viewState int

const (
	viewList viewState = iota
	viewSearch
	viewFacets
	viewDetail
)

// facetDim is one selectable facet dimension in the facet picker.
type facetDim struct {
	name     string
	values   []string
	selected *[]string
}

// App is the browser model. Filtering re-runs on every keystroke or
// selection change; the engine is cheap enough that no debouncing is
// needed for collections of this size.
type App struct {
	cat   *catalog.Catalog
	state types.FilterState

	mode     viewState
	input    textinput.Model
	filtered []types.Paper
	cursor   int

	dims      []facetDim
	dimCursor int
	valCursor int

	message string
	width   int
	height  int
}

// NewApp builds the browser over an opened catalog.
func NewApp(cat *catalog.Catalog) *App {
	input := textinput.New()
	input.Placeholder = "标题 / 作者 / 特征 / 模型 关键词"

	a := &App{
		cat:   cat,
		state: types.NewFilterState(),
		input: input,
	}
	a.rebuildDims()
	a.refilter()
	return a
}

// rebuildDims rebinds the facet picker to the current facet index. Called
// on startup and after a dataset reload, when the value lists may have
// changed.
func (a *App) rebuildDims() {
	a.dims = []facetDim{
		{name: "venue", values: a.cat.Facets.Venues, selected: &a.state.Venues},
		{name: "subfields", values: a.cat.Facets.Subfields, selected: &a.state.Subfields},
		{name: "tasks", values: a.cat.Facets.Tasks, selected: &a.state.Tasks},
		{name: "features", values: a.cat.Facets.Features, selected: &a.state.Features},
		{name: "models", values: a.cat.Facets.Models, selected: &a.state.Models},
		{name: "tags", values: a.cat.Facets.Tags, selected: &a.state.Tags},
	}
	a.valCursor = 0
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// refilter recomputes the visible result set from the current state.
func (a *App) refilter() {
	a.filtered = a.cat.Filter(a.state)
	if a.cursor >= len(a.filtered) {
		a.cursor = len(a.filtered) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case viewSearch:
			return a.updateSearch(msg)
		case viewFacets:
			return a.updateFacets(msg)
		case viewDetail:
			return a.updateDetail(msg)
		default:
			return a.updateList(msg)
		}
	}

	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, keys.Down):
		if a.cursor < len(a.filtered)-1 {
			a.cursor++
		}

	case key.Matches(msg, keys.Search):
		a.mode = viewSearch
		a.input.SetValue(a.state.Query)
		a.input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, keys.Facets):
		a.mode = viewFacets

	case key.Matches(msg, keys.Bookmark):
		if p, ok := a.current(); ok {
			if err := a.cat.Bookmarks.Toggle(p.ID); err != nil {
				a.message = err.Error()
			}
			a.refilter()
		}

	case key.Matches(msg, keys.BookmarksOnly):
		a.state.BookmarksOnly = !a.state.BookmarksOnly
		a.refilter()

	case key.Matches(msg, keys.Sort):
		a.state.Sort = nextSort(a.state.Sort)
		a.refilter()

	case key.Matches(msg, keys.Refresh):
		if err := a.cat.Reload(context.Background()); err != nil {
			a.message = err.Error()
		} else {
			a.message = fmt.Sprintf("已重新加载 %d 篇", len(a.cat.Papers))
			a.rebuildDims()
		}
		a.refilter()

	case key.Matches(msg, keys.Detail):
		if _, ok := a.current(); ok {
			a.mode = viewDetail
		}
	}

	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		a.mode = viewList
		a.input.Blur()
		return a, nil

	case key.Matches(msg, keys.Detail):
		a.mode = viewList
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.state.Query = a.input.Value()
	a.refilter()
	return a, cmd
}

func (a *App) updateFacets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dim := &a.dims[a.dimCursor]

	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Facets):
		a.mode = viewList

	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.NextDim):
		a.dimCursor = (a.dimCursor + 1) % len(a.dims)
		a.valCursor = 0

	case key.Matches(msg, keys.Up):
		if a.valCursor > 0 {
			a.valCursor--
		}

	case key.Matches(msg, keys.Down):
		if a.valCursor < len(dim.values)-1 {
			a.valCursor++
		}

	case key.Matches(msg, keys.Toggle):
		if a.valCursor < len(dim.values) {
			*dim.selected = toggleValue(*dim.selected, dim.values[a.valCursor])
			a.refilter()
		}
	}

	return a, nil
}

func (a *App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Detail):
		a.mode = viewList

	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Bookmark):
		if p, ok := a.current(); ok {
			if err := a.cat.Bookmarks.Toggle(p.ID); err != nil {
				a.message = err.Error()
			}
		}
	}

	return a, nil
}

func (a *App) current() (types.Paper, bool) {
	if a.cursor < 0 || a.cursor >= len(a.filtered) {
		return types.Paper{}, false
	}
	return a.filtered[a.cursor], true
}

// nextSort cycles year-desc → year-asc → title.
func nextSort(s types.SortOption) types.SortOption {
	switch s {
	case types.SortYearDesc:
		return types.SortYearAsc
	case types.SortYearAsc:
		return types.SortTitle
	default:
		return types.SortYearDesc
	}
}

// toggleValue flips membership of v in the selection slice.
func toggleValue(selected []string, v string) []string {
	for i, s := range selected {
		if s == v {
			return append(selected[:i], selected[i+1:]...)
		}
	}
	return append(selected, v)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.mode == viewDetail {
		return styleApp.Render(a.detailView())
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render("论文库"))
	b.WriteString("  ")
	b.WriteString(styleCounts.Render(fmt.Sprintf("%d / %d 篇", len(a.filtered), len(a.cat.Papers))))
	b.WriteString("\n\n")

	if a.mode == viewSearch || a.state.Query != "" {
		b.WriteString(a.input.View())
		b.WriteString("\n\n")
	}

	if a.mode == viewFacets {
		b.WriteString(a.facetView())
		b.WriteString("\n")
	}

	b.WriteString(a.listView())

	if a.message != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(a.message))
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render(a.helpLine()))

	return styleApp.Render(b.String())
}

func (a *App) listView() string {
	if len(a.filtered) == 0 {
		return styleCounts.Render("暂无匹配结果")
	}

	visible := a.pageSize()
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(a.filtered) {
		end = len(a.filtered)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		p := a.filtered[i]

		marker := "  "
		if a.cat.Bookmarks.Has(p.ID) {
			marker = styleBookmark.Render("★ ")
		}

		line := fmt.Sprintf("%s%d  %s  %s", marker, p.Year, p.Title, styleVenue.Render(p.Venue))
		if len(p.Subfields) > 0 {
			line += "  " + styleTag.Render(strings.Join(p.Subfields, " · "))
		}

		if i == a.cursor {
			line = styleSelected.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) facetView() string {
	dim := a.dims[a.dimCursor]
	selected := make(map[string]bool, len(*dim.selected))
	for _, s := range *dim.selected {
		selected[s] = true
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(dim.name))
	b.WriteString("\n")

	if len(dim.values) == 0 {
		b.WriteString(styleCounts.Render("(无可选值)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, v := range dim.values {
		mark := "[ ] "
		if selected[v] {
			mark = styleFacetOn.Render("[x] ")
		}
		line := mark + v
		if i == a.valCursor {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) detailView() string {
	p, ok := a.current()
	if !ok {
		return styleCounts.Render("暂无匹配结果")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d · %s\n", p.Year, styleVenue.Render(p.Venue)))
	if len(p.Authors) > 0 {
		b.WriteString(strings.Join(p.Authors, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.Summary)
	b.WriteString("\n")

	sections := []struct {
		label string
		text  string
	}{
		{"结论", p.Findings},
		{"局限", p.Limitations},
		{"展望", p.FutureWork},
	}
	for _, sec := range sections {
		if sec.text == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(styleTitle.Render(sec.label))
		b.WriteString("\n")
		b.WriteString(sec.text)
		b.WriteString("\n")
	}

	links := []struct {
		label string
		url   string
	}{
		{"pdf", p.Links.PDF},
		{"code", p.Links.Code},
		{"dataset", p.Links.Dataset},
		{"project", p.Links.Project},
	}
	var shown []string
	for _, l := range links {
		if l.url != "" {
			shown = append(shown, l.label+": "+l.url)
		}
	}
	if len(shown) > 0 {
		b.WriteString("\n")
		b.WriteString(styleTag.Render(strings.Join(shown, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render("esc 返回 · b 收藏 · q 退出"))
	return b.String()
}

func (a *App) helpLine() string {
	sortLabel := string(a.state.Sort)
	mode := ""
	if a.state.BookmarksOnly {
		mode = " · 仅看收藏"
	}
	return fmt.Sprintf("/ 搜索 · f 筛选 · b 收藏 · o 仅收藏 · s 排序(%s) · r 刷新%s · enter 详情 · q 退出", sortLabel, mode)
}

func (a *App) pageSize() int {
	// Leave room for the header, input, and help line.
	size := a.height - 8
	if size < 5 {
		size = 15
	}
	return size
}
