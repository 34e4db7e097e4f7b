package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/gesture"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/lesson"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	lessonscreen "github.com/Tanuahire/Alphabet-Learning-app/internal/screens/lesson"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/welcome"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// Queue is a scheduler whose due callbacks the app drains on its event loop.
type Queue interface {
	clock.Scheduler
	Next() (fn func(), ok bool)
}

// Options carries everything the TUI needs from the command line.
type Options struct {
	// Queue schedules lesson and game timers. Nil uses a fresh clock.Loop.
	Queue Queue

	Narrator  audio.Narrator
	Music     audio.Music
	Collector *store.Collector

	Muted        bool
	MusicEnabled bool
	Voice        audio.VoiceOptions

	SwipeThreshold float64
	Scale          gesture.Scale

	// StartLetter is the first lesson shown. Zero is A.
	StartLetter int
	SkipSplash  bool

	Rand   *rand.Rand
	Logger *zap.Logger
}

// clockMsg carries a due scheduler callback into the event loop.
type clockMsg struct {
	fn func()
}

// speechMsg carries a narrator lifecycle event into the event loop.
type speechMsg audio.SpeechEvent

type frameMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	env     *screen.Env
	queue   Queue
	speech  <-chan audio.SpeechEvent
	logger  *zap.Logger
	width   int
	height  int
	frame   int
	pending []tea.Cmd

	// ownLoop is the loop created when Options.Queue was nil.
	ownLoop *clock.Loop
}

// newAppModel wires the audio preferences, the lesson session and the
// first screen.
func newAppModel(opts Options) (*AppModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &AppModel{queue: opts.Queue, logger: logger}
	if m.queue == nil {
		loop := clock.NewLoop(64)
		m.queue = loop
		m.ownLoop = loop
	}
	queue := m.queue
	if opts.Narrator != nil {
		m.speech = opts.Narrator.Events()
	}

	prefs := audio.NewPreferences(opts.Narrator, opts.Music, audio.Options{
		Muted:        opts.Muted,
		MusicEnabled: opts.MusicEnabled,
		Voice:        opts.Voice,
		Logger:       logger,
	})

	sess, err := lesson.New(lesson.Options{
		Scheduler: queue,
		Speaker:   prefs,
		Collector: opts.Collector,
		Start:     opts.StartLetter,
		Rand:      opts.Rand,
		Logger:    logger,
		OnGameComplete: func(kind minigame.Kind) {
			logger.Info("game completed", zap.Stringer("kind", kind))
			m.pending = append(m.pending, func() tea.Msg { return router.PopToRootMsg{} })
		},
	})
	if err != nil {
		return nil, err
	}

	scale := opts.Scale
	if scale.CellWidth <= 0 || scale.CellHeight <= 0 {
		scale = gesture.DefaultScale
	}
	m.env = &screen.Env{
		Session:        sess,
		Audio:          prefs,
		SwipeThreshold: opts.SwipeThreshold,
		Scale:          scale,
	}

	lessonFactory := func() screen.Screen { return lessonscreen.New(m.env, logger) }
	if opts.SkipSplash {
		m.router = router.New(lessonFactory())
	} else {
		m.router = router.New(welcome.New(lessonFactory))
	}
	return m, nil
}

func (m *AppModel) Init() tea.Cmd {
	m.env.Audio.Start()
	return tea.Batch(
		m.router.Active().Init(),
		m.waitClock(),
		m.waitSpeech(),
		tickFrame(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(m.sizeMsg())

	case clockMsg:
		msg.fn()
		return m, tea.Batch(append(m.drain(), m.waitClock())...)

	case speechMsg:
		m.env.Audio.HandleSpeech(audio.SpeechEvent(msg))
		return m, m.waitSpeech()

	case frameMsg:
		m.frame++
		return m, tea.Batch(m.router.Update(screen.FrameMsg{Frame: m.frame}), tickFrame())

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Default.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case tea.MouseClickMsg:
		return m, m.router.Update(tea.MouseClickMsg(m.toContent(msg.Mouse())))
	case tea.MouseMotionMsg:
		return m, m.router.Update(tea.MouseMotionMsg(m.toContent(msg.Mouse())))
	case tea.MouseReleaseMsg:
		return m, m.router.Update(tea.MouseReleaseMsg(m.toContent(msg.Mouse())))

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.router.Update(m.sizeMsg()))
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(append(m.drain(), cmd)...)
}

// drain returns commands queued by session callbacks.
func (m *AppModel) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

func (m *AppModel) sizeMsg() screen.SizeMsg {
	return screen.SizeMsg{Width: m.width, Height: layout.ContentHeight(m.height)}
}

// toContent shifts a mouse position from terminal to content coordinates.
func (m *AppModel) toContent(mouse tea.Mouse) tea.Mouse {
	mouse.Y -= layout.HeaderHeight
	return mouse
}

func (m *AppModel) waitClock() tea.Cmd {
	q := m.queue
	return func() tea.Msg {
		fn, ok := q.Next()
		if !ok {
			return nil
		}
		return clockMsg{fn: fn}
	}
}

func (m *AppModel) waitSpeech() tea.Cmd {
	ch := m.speech
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return speechMsg(ev)
	}
}

func tickFrame() tea.Cmd {
	return tea.Tick(screen.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render draws the header, the active screen and the footer.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.env.Session.Progress()
	st := m.env.Audio.State()
	header := layout.RenderHeader(title, layout.HeaderStatus{
		Stars:    p.Count(),
		Total:    p.Size(),
		Muted:    st.Muted,
		Music:    st.MusicShouldPlay(),
		Speaking: st.Speaking,
	}, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = keys.Hints(keys.Default.Back, keys.Default.Quit)
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// close releases the screens and cancels pending lesson timers.
func (m *AppModel) close() {
	m.router.Close()
	m.env.Session.Close()
	if m.ownLoop != nil {
		m.ownLoop.Close()
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer model.close()

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
