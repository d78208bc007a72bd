package ui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/display"
	"github.com/five82/roster/internal/roster"
)

// Rank tiers used to pick badge colors.
const (
	tierTop100   = "top100"
	tierTop1K    = "top1k"
	tierTop10K   = "top10k"
	tierRanked   = "ranked"
	tierUnranked = "unranked"
)

func rankTier(e roster.Entity) string {
	if !e.HasRank() {
		return tierUnranked
	}
	switch r := e.Rank(); {
	case r <= 100:
		return tierTop100
	case r <= 1000:
		return tierTop1K
	case r <= 10000:
		return tierTop10K
	default:
		return tierRanked
	}
}

// renderContext is shared by every panel a factory builds. Panels keep a
// pointer and read it only while rendering, which happens on the Update loop,
// so swapping the theme never races with a build running in a tea.Cmd.
type renderContext struct {
	theme     Theme
	styles    Styles
	cardWidth int
	now       func() time.Time
}

func newRenderContext(theme Theme, cardWidth int) *renderContext {
	return &renderContext{
		theme:     theme,
		styles:    theme.Styles(),
		cardWidth: cardWidth,
		now:       time.Now,
	}
}

func (rc *renderContext) setTheme(theme Theme) {
	rc.theme = theme
	rc.styles = theme.Styles()
}

// panelFactory builds lipgloss panels. It counts live panels so leaks show up
// in the header and in tests.
type panelFactory struct {
	rc   *renderContext
	live atomic.Int64
}

var _ display.PanelFactory = (*panelFactory)(nil)

func newPanelFactory(rc *renderContext) *panelFactory {
	return &panelFactory{rc: rc}
}

// NewPanel implements display.PanelFactory.
func (f *panelFactory) NewPanel(entity roster.Entity, style roster.Style) (display.Panel, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	base := panelBase{entity: entity, rc: f.rc, factory: f, visible: true}
	var p display.Panel
	switch style {
	case roster.StyleCard:
		p = &cardPanel{panelBase: base}
	case roster.StyleList:
		p = &listPanel{panelBase: base}
	case roster.StyleBrick:
		p = &brickPanel{panelBase: base}
	default:
		return nil, fmt.Errorf("unknown display style %d", style)
	}
	f.live.Add(1)
	return p, nil
}

// Live returns how many panels have been built and not yet released.
func (f *panelFactory) Live() int64 {
	return f.live.Load()
}

type cacheKey struct {
	width int
	theme string
	seen  string
}

type panelBase struct {
	entity   roster.Entity
	rc       *renderContext
	factory  *panelFactory
	visible  bool
	released bool

	key   cacheKey
	cache string
}

func (p *panelBase) Entity() roster.Entity { return p.entity }

func (p *panelBase) SetVisible(visible bool) { p.visible = visible }

func (p *panelBase) Visible() bool { return p.visible }

// Release drops the render cache and returns the panel to the factory count.
func (p *panelBase) Release() {
	if p.released {
		return
	}
	p.released = true
	p.cache = ""
	p.factory.live.Add(-1)
}

func (p *panelBase) cached(width int, render func(seen string) string) string {
	seen := lastSeen(p.entity, p.rc.now())
	key := cacheKey{width: width, theme: p.rc.theme.Name, seen: seen}
	if p.cache != "" && p.key == key {
		return p.cache
	}
	p.key = key
	p.cache = render(seen)
	return p.cache
}

func (p *panelBase) presenceDot(s Styles) string {
	if p.entity.Online {
		return s.SuccessText.Render("●")
	}
	return s.FaintText.Render("○")
}

func (p *panelBase) rankBadge() string {
	label := "—"
	if p.entity.HasRank() {
		label = fmt.Sprintf("#%d", p.entity.Rank())
	}
	return p.rc.styles.RankStyle(rankTier(p.entity)).Render(label)
}

func (p *panelBase) presenceText(seen string) string {
	if p.entity.Online {
		return "online"
	}
	return "seen " + seen
}

// cardPanel is a fixed-width bordered card. The layout centers rows of cards.
type cardPanel struct{ panelBase }

func (p *cardPanel) Render(width int) string {
	return p.cached(width, func(seen string) string {
		s := p.rc.styles
		outer := min(p.rc.cardWidth, max(width, 8))
		inner := max(outer-4, 1) // border + padding

		badge := p.rankBadge()
		name := truncate(p.entity.DisplayName, inner-lipgloss.Width(badge)-3)
		top := p.presenceDot(s) + " " + s.Text.Bold(true).Render(name)
		top += strings.Repeat(" ", max(inner-lipgloss.Width(top)-lipgloss.Width(badge), 1)) + badge

		var meta []string
		if p.entity.CountryCode != "" {
			meta = append(meta, p.entity.CountryCode)
		}
		meta = append(meta, p.presenceText(seen))
		bottom := s.MutedText.Render(truncate(strings.Join(meta, " · "), inner))

		return s.Card.Width(outer - 2).Render(top + "\n" + bottom)
	})
}

// listPanel is a single full-width row.
type listPanel struct{ panelBase }

func (p *listPanel) Render(width int) string {
	return p.cached(width, func(seen string) string {
		s := p.rc.styles
		width = max(width, 20)

		badge := p.rankBadge()
		right := s.MutedText.Render(padRight(p.entity.CountryCode, 3)) + "  " +
			s.FaintText.Render(padRight(p.presenceText(seen), 16)) + " " + badge
		nameWidth := max(width-lipgloss.Width(right)-4, 4)
		left := p.presenceDot(s) + " " + s.Text.Render(padRight(truncate(p.entity.DisplayName, nameWidth), nameWidth))

		row := left + " " + right
		return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(row)
	})
}

// brickPanel is a compact inline chip.
type brickPanel struct{ panelBase }

func (p *brickPanel) Render(width int) string {
	return p.cached(width, func(string) string {
		s := p.rc.styles
		onChip := s.WithBackground(p.rc.theme.SurfaceAlt)
		name := truncate(p.entity.DisplayName, max(width-6, 4))
		return s.Chip.Render(p.presenceDot(onChip) + s.Chip.UnsetPadding().Render(" "+name))
	})
}

// lastSeen describes how long ago the entity was active.
func lastSeen(e roster.Entity, now time.Time) string {
	if e.LastActivity.IsZero() {
		return "never"
	}
	d := now.Sub(e.LastActivity)
	if d < time.Minute {
		return "just now"
	}
	return humanizeDuration(d) + " ago"
}
