package ui

import (
	"fmt"

	"github.com/five82/roster/internal/roster"
)

// renderHeader renders the status bar: feed health, counts, rebuild activity.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("roster", styles.Logo)}
	parts = append(parts, m.feedStatus(styles, bg)...)

	if m.snapshot.HasData {
		counts := m.coord.Counts()
		parts = append(parts,
			bg.Render("Friends:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", counts.All), styles.Text),
			bg.Render("Online:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", counts.Online), styles.SuccessText),
		)
	}

	if m.coord.Loading() {
		parts = append(parts, m.spinner.View()+bg.Space()+bg.Render("rebuilding", styles.AccentText))
	}

	if !compact {
		if !m.snapshot.LastUpdated.IsZero() {
			parts = append(parts, bg.Render("updated "+m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
		}
		parts = append(parts, bg.Render(truncateMiddle(m.source, 40), styles.FaintText))
	}

	if m.width >= LayoutWideWidth {
		st := m.coord.Stats()
		parts = append(parts, bg.Render(fmt.Sprintf("builds %d · cancelled %d · panels %d",
			st.Installed, st.Cancelled, m.factory.Live()), styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(bg.Join(parts, "  "))
}

// feedStatus describes the connection to the friends feed.
func (m Model) feedStatus(styles Styles, bg BgStyle) []string {
	snap := m.snapshot
	switch {
	case !snap.HasData && snap.LastError != nil:
		return []string{
			bg.Render("FEED "+classifyConnectionError(snap.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		}
	case !snap.HasData:
		return []string{bg.Render("Connecting to feed...", styles.WarningText.Bold(true))}
	case snap.IsOffline():
		return []string{bg.Render("● STALE "+classifyConnectionError(snap.LastError), styles.DangerText)}
	default:
		return []string{bg.Render("● LIVE", styles.SuccessText)}
	}
}

// renderToolbar renders group tabs with counts, sort and style selectors, and the search box.
func (m Model) renderToolbar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	counts := m.coord.Counts()
	active := m.controls.Group.Get()

	var tabs []string
	for _, g := range []roster.Group{roster.GroupAll, roster.GroupOnline, roster.GroupOffline} {
		label := fmt.Sprintf("%s %d", g, counts.Of(g))
		if g == active {
			tabs = append(tabs, styles.ActiveTab.Render(label))
			continue
		}
		tabs = append(tabs, styles.Tab.Render(label))
	}

	parts := []string{
		bg.Join(tabs, ""),
		bg.Render("Sort", styles.MutedText) + bg.Space() + bg.Render(m.controls.Sort.Get().String(), styles.AccentText),
		bg.Render("Style", styles.MutedText) + bg.Space() + bg.Render(m.controls.Style.Get().String(), styles.AccentText),
	}

	switch {
	case m.searching || m.search.Value() != "":
		parts = append(parts, m.search.View())
	default:
		parts = append(parts, bg.Render("/ search", styles.FaintText))
	}

	return bg.FillLine(bg.Join(parts, "   "), m.width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.theme.Surface)
	return bg.FillLine(" "+m.help.View(m.keys), m.width)
}
