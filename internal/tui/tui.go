package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/store"
	"galaxy-classify/internal/tui/state"
	"galaxy-classify/internal/tui/util"
	"galaxy-classify/internal/tui/views/galaxy"
	"galaxy-classify/internal/tui/views/options"
	"galaxy-classify/internal/tui/widgets/diff"
	"galaxy-classify/internal/tui/widgets/editor"
	"galaxy-classify/internal/tui/widgets/helpoverlay"
	"galaxy-classify/internal/tui/widgets/statusbar"
)

const (
	noticeIncomplete = "LSB class and morphology are required"
	noticeDone       = "All galaxies in the catalog are done"
)

// Backend stores classifications for the screen.
type Backend interface {
	Classification(ctx context.Context, user, galaxyID string) (*store.Classification, error)
	Submit(ctx context.Context, sub store.Submission) (*store.Classification, error)
	Skip(ctx context.Context, user, galaxyID, comments string) error
	Progress(ctx context.Context, user string) (store.Progress, error)
}

// Options configures a classification session.
type Options struct {
	Backend  Backend
	Galaxies []store.Galaxy
	User     string
	Settings config.Settings
	// SettingsUpdates, when set, delivers reloaded settings while running.
	SettingsUpdates <-chan config.Settings
	ContrastGroups  int
	// Start is the galaxy id to open first; empty means the first one.
	Start   string
	NoColor bool
	Logger  *zap.Logger
}

// Run shows the classification screen until the user quits.
func Run(ctx context.Context, opts Options) error {
	m, err := newModel(ctx, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ===== Model =====

type model struct {
	ctx  context.Context
	opts Options
	log  *zap.Logger
	keys keyMap

	idx      int
	form     state.Form
	screen   state.Screen
	comments textinput.Model
	progress store.Progress
	loadedAt time.Time
	done     bool
	// submitting is set while a Submit call is outstanding.
	submitting bool

	now  func() time.Time
	copy func(string) error
}

func newModel(ctx context.Context, opts Options) (model, error) {
	if opts.Backend == nil {
		return model{}, errors.New("tui: no backend")
	}
	if len(opts.Galaxies) == 0 {
		return model{}, errors.New("catalog is empty; import a catalog first")
	}
	if opts.ContrastGroups < 1 {
		opts.ContrastGroups = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	idx := 0
	if opts.Start != "" {
		idx = -1
		for i, g := range opts.Galaxies {
			if g.ID == opts.Start {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model{}, fmt.Errorf("galaxy %s: %w", opts.Start, store.ErrNotFound)
		}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Optional comments"
	ti.CharLimit = 500
	ti.Width = 60
	_ = ti.Cursor.SetMode(cursor.CursorStatic)

	m := model{
		ctx:      ctx,
		opts:     opts,
		log:      log,
		keys:     defaultKeyMap(),
		idx:      idx,
		form:     state.NewForm(opts.Settings),
		comments: ti,
		now:      time.Now,
		copy:     clipboard.WriteAll,
	}
	m.form = state.Reset(m.form, m.current().ID)
	m.loadedAt = m.now()
	return m, nil
}

func (m model) current() store.Galaxy { return m.opts.Galaxies[m.idx] }

// ===== Messages =====

type loadedMsg struct {
	galaxyID string
	rec      *store.Classification
	err      error
}

type progressMsg struct {
	progress store.Progress
	err      error
}

type submittedMsg struct {
	galaxyID string
	rec      *store.Classification
	err      error
}

type skippedMsg struct {
	galaxyID string
	err      error
}

type settingsMsg config.Settings

func waitSettings(ch <-chan config.Settings) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return settingsMsg(s)
	}
}

func (m model) loadCmd(galaxyID string) tea.Cmd {
	return func() tea.Msg {
		rec, err := m.opts.Backend.Classification(m.ctx, m.opts.User, galaxyID)
		return loadedMsg{galaxyID: galaxyID, rec: rec, err: err}
	}
}

func (m model) progressCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.opts.Backend.Progress(m.ctx, m.opts.User)
		return progressMsg{progress: p, err: err}
	}
}

func (m model) submitCmd(sub store.Submission) tea.Cmd {
	return func() tea.Msg {
		rec, err := m.opts.Backend.Submit(m.ctx, sub)
		return submittedMsg{galaxyID: sub.GalaxyID, rec: rec, err: err}
	}
}

func (m model) skipCmd(galaxyID, comments string) tea.Cmd {
	return func() tea.Msg {
		err := m.opts.Backend.Skip(m.ctx, m.opts.User, galaxyID, comments)
		return skippedMsg{galaxyID: galaxyID, err: err}
	}
}

// ===== Update =====

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd(m.form.GalaxyID), m.progressCmd()}
	if m.opts.SettingsUpdates != nil {
		cmds = append(cmds, waitSettings(m.opts.SettingsUpdates))
	}
	return tea.Batch(cmds...)
}

// load resets the form for the current galaxy and fetches its saved
// classification.
func (m model) load() (model, tea.Cmd) {
	g := m.current()
	m.form = state.Reset(m.form, g.ID)
	m.comments.SetValue("")
	m.loadedAt = m.now()
	m.log.Debug("galaxy loaded", zap.String("galaxy", g.ID), zap.Int("index", m.idx))
	return m, m.loadCmd(g.ID)
}

// advance moves past a submitted or skipped galaxy.
func (m model) advance() (model, tea.Cmd) {
	if m.idx+1 >= len(m.opts.Galaxies) {
		m.done = true
		m.screen = state.SetNotice(m.screen, noticeDone)
		return m, m.progressCmd()
	}
	m.idx++
	m, cmd := m.load()
	return m, tea.Batch(cmd, m.progressCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen = state.Resize(m.screen, msg.Width)
		if w := msg.Width - 4; w > 10 {
			m.comments.Width = w
		}
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.log.Warn("load classification failed", zap.String("galaxy", msg.galaxyID), zap.Error(msg.err))
			m.screen = state.SetNotice(m.screen, "Could not load saved classification: "+msg.err.Error())
			return m, nil
		}
		if msg.rec == nil || msg.galaxyID != m.form.GalaxyID {
			return m, nil
		}
		m.form = state.ApplySaved(m.form, toRecord(msg.rec))
		m.comments.SetValue(m.form.Comments)
		return m, nil

	case progressMsg:
		if msg.err != nil {
			m.log.Warn("progress query failed", zap.Error(msg.err))
			return m, nil
		}
		m.progress = msg.progress
		return m, nil

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.log.Error("submit failed", zap.String("galaxy", msg.galaxyID), zap.Error(msg.err))
			m.screen = state.SetNotice(m.screen, "Submit failed: "+msg.err.Error())
			return m, nil
		}
		m.log.Info("classification saved", zap.String("galaxy", msg.galaxyID))
		m.screen = state.SetNotice(m.screen, "Saved "+msg.galaxyID)
		if msg.galaxyID != m.form.GalaxyID {
			return m, m.progressCmd()
		}
		return m.advance()

	case skippedMsg:
		if msg.err != nil {
			m.log.Error("skip failed", zap.String("galaxy", msg.galaxyID), zap.Error(msg.err))
			m.screen = state.SetNotice(m.screen, "Skip failed: "+msg.err.Error())
			return m, nil
		}
		m.log.Info("galaxy skipped", zap.String("galaxy", msg.galaxyID))
		m.screen = state.SetNotice(m.screen, "Skipped "+msg.galaxyID)
		if msg.galaxyID != m.form.GalaxyID {
			return m, m.progressCmd()
		}
		return m.advance()

	case settingsMsg:
		m.form = state.ApplySettings(m.form, config.Settings(msg))
		m.screen = state.SetNotice(m.screen, "Settings reloaded")
		m.log.Info("settings reloaded", zap.Stringer("mode", msg.Mode))
		return m, waitSettings(m.opts.SettingsUpdates)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		switch {
		case m.screen.ShowHelp:
			m.screen = state.ToggleHelp(m.screen)
		case m.screen.Focus == state.Comments:
			m = m.toggleFocus()
		default:
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m.toggleFocus(), nil
	}

	if m.screen.Focus == state.Comments {
		var cmd tea.Cmd
		m.comments, cmd = m.comments.Update(msg)
		m.form = state.SetComments(m.form, m.comments.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.screen = state.ToggleHelp(m.screen)
		return m, nil
	case m.done:
		// Only navigation back into the catalog remains.
		if key.Matches(msg, m.keys.Previous) {
			m.done = false
			m.screen = state.SetNotice(m.screen, "")
			return m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.submitting {
			return m, nil
		}
		if !state.CanSubmit(m.form) {
			m.screen = state.SetNotice(m.screen, noticeIncomplete)
			return m, nil
		}
		m.submitting = true
		return m, m.submitCmd(store.Submission{
			User:      m.opts.User,
			GalaxyID:  m.form.GalaxyID,
			Flags:     m.form.Flags,
			Comments:  m.form.Comments,
			TimeSpent: m.now().Sub(m.loadedAt),
		})
	case key.Matches(msg, m.keys.Previous):
		if m.idx == 0 {
			m.screen = state.SetNotice(m.screen, "This is the first galaxy")
			return m, nil
		}
		m.idx--
		return m.load()
	case key.Matches(msg, m.keys.Next):
		if m.idx+1 >= len(m.opts.Galaxies) {
			m.screen = state.SetNotice(m.screen, "This is the last galaxy")
			return m, nil
		}
		m.idx++
		return m.load()
	case key.Matches(msg, m.keys.Skip):
		return m, m.skipCmd(m.form.GalaxyID, m.form.Comments)
	case key.Matches(msg, m.keys.Contrast):
		m.screen = state.CycleContrast(m.screen, m.opts.ContrastGroups)
		return m, nil
	case key.Matches(msg, m.keys.CycleLSB):
		m.form = state.CycleLSB(m.form)
		return m, nil
	case key.Matches(msg, m.keys.CycleMorph):
		m.form = state.CycleMorphology(m.form)
		return m, nil
	case key.Matches(msg, m.keys.Awesome):
		m.form = state.SetAwesome(m.form, !m.form.Flags.Awesome)
		return m, nil
	case key.Matches(msg, m.keys.Redshift):
		m.form = state.SetValidRedshift(m.form, !m.form.Flags.ValidRedshift)
		return m, nil
	case key.Matches(msg, m.keys.Nucleus):
		m.form = state.SetVisibleNucleus(m.form, !m.form.Flags.VisibleNucleus)
		return m, nil
	case key.Matches(msg, m.keys.Failed):
		m.form = state.SetFailedFitting(m.form, !m.form.Flags.FailedFitting)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if err := m.copy(m.form.Code); err != nil {
			m.log.Warn("clipboard write failed", zap.Error(err))
			m.screen = state.SetNotice(m.screen, "Copy failed: "+err.Error())
		} else {
			m.screen = state.SetNotice(m.screen, fmt.Sprintf("Copied %q", m.form.Code))
		}
		return m, nil
	case key.Matches(msg, m.keys.DeleteInput):
		if r := []rune(m.form.Code); len(r) > 0 {
			m.form = state.TypeCode(m.form, string(r[:len(r)-1]))
		}
		return m, nil
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if len(msg.Runes) == 1 && !msg.Paste && isFlagLetter(msg.Runes[0]) {
			m.form = state.ToggleFlag(m.form, msg.Runes[0])
			return m, nil
		}
		m.form = state.TypeCode(m.form, m.form.Code+string(msg.Runes))
		return m, nil
	}
	return m, nil
}

// isFlagLetter reports whether a single key press of r toggles a flag.
// Upper-case letters and pasted text are typed as-is.
func isFlagLetter(r rune) bool {
	switch r {
	case 'a', 'r', 'n', 'f':
		return true
	}
	return false
}

func (m model) toggleFocus() model {
	m.screen = state.ToggleFocus(m.screen)
	if m.screen.Focus == state.Comments {
		_ = m.comments.Focus()
	} else {
		m.comments.Blur()
	}
	return m
}

func toRecord(c *store.Classification) state.Record {
	return state.Record{ID: c.ID, GalaxyID: c.GalaxyID, Flags: c.Flags, Comments: c.Comments}
}

// ===== Views =====

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Underline(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	p := m.progress
	bar := statusbar.NewStatusBar().View(m.screen, m.form, statusbar.Progress{
		Completed: p.Completed(),
		Total:     p.Total,
		Percent:   p.Percentage(),
	})
	if m.screen.ShowHelp {
		return helpoverlay.NewHelpOverlay().View(m.screen, m.form.Settings) + "\n" + bar + "\n"
	}
	if m.done {
		var b strings.Builder
		b.WriteString(titleStyle.Render(noticeDone) + "\n\n")
		b.WriteString(faintStyle.Render("P: back to the last galaxy   esc: quit") + "\n\n")
		b.WriteString(bar + "\n")
		return b.String()
	}

	g := m.current()
	noColor := util.NoColor(m.opts.NoColor)
	palette := util.ContrastPalette(m.screen.Contrast)
	var b strings.Builder
	b.WriteString(titleStyle.Render(galaxy.Title(g, m.idx+1, len(m.opts.Galaxies))) + "\n")
	b.WriteString(faintStyle.Render(galaxy.Metadata(g)) + "\n\n")

	b.WriteString(sectionStyle.Render("LSB class") + "\n")
	for _, line := range options.RenderLSB(m.form.Flags.LSB, m.form.Settings.Mode) {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(sectionStyle.Render("Morphology") + "\n")
	for _, line := range options.RenderMorphology(m.form.Flags.Morphology) {
		b.WriteString("  " + line + "\n")
	}
	if chips := galaxy.RenderTags(m.form, noColor, palette); chips != "" {
		b.WriteString("\n" + chips + "\n")
	}
	b.WriteString("\n" + editor.NewEditor().View(m.screen, m.form))
	b.WriteString("\n" + sectionStyle.Render("Comments") + "\n")
	b.WriteString(m.comments.View() + "\n\n")
	b.WriteString(diff.NewDiffView().View(m.form.Saved, m.form.Code, noColor))
	b.WriteString("\n" + bar + "\n")
	b.WriteString(faintStyle.Render(m.footer()) + "\n")
	return b.String()
}

func (m model) footer() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "   ")
}
