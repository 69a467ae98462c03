package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// DefaultHoldWindow is how long a key counts as held after its last press or
// auto-repeat event. Terminals report no key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// InputManager implements render.InputManager from tcell key events. Events
// arrive on the poll goroutine and are read by the game loop, so all state is
// guarded by mu.
type InputManager struct {
	mu         sync.Mutex
	now        func() time.Time
	holdWindow time.Duration
	lastSeen   map[render.Key]time.Time
	pending    map[render.Key]bool // pressed since the last tick
	just       map[render.Key]bool // visible to the current tick
}

// NewInputManager creates an input manager using the wall clock.
func NewInputManager() *InputManager {
	return newInputManager(time.Now, DefaultHoldWindow)
}

func newInputManager(now func() time.Time, hold time.Duration) *InputManager {
	return &InputManager{
		now:        now,
		holdWindow: hold,
		lastSeen:   make(map[render.Key]time.Time),
		pending:    make(map[render.Key]bool),
		just:       make(map[render.Key]bool),
	}
}

// HandleKey records a tcell key event.
func (m *InputManager) HandleKey(ev *tcell.EventKey) {
	m.press(ev.Key(), ev.Rune())
}

func (m *InputManager) press(k tcell.Key, r rune) {
	key, ok := mapKey(k, r)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.heldLocked(key) {
		m.pending[key] = true
	}
	m.lastSeen[key] = m.now()
}

// BeginTick publishes the presses collected since the previous tick to
// IsKeyJustPressed. The engine calls it once before each Update.
func (m *InputManager) BeginTick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.just, m.pending = m.pending, m.just
	clear(m.pending)
}

// IsKeyPressed reports whether key was seen within the hold window.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heldLocked(key)
}

// IsKeyJustPressed reports whether key went down since the previous tick.
// Auto-repeat events inside the hold window do not count.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.just[key]
}

func (m *InputManager) heldLocked(key render.Key) bool {
	t, ok := m.lastSeen[key]
	return ok && m.now().Sub(t) < m.holdWindow
}

// mapKey converts a tcell key to a render.Key. Ctrl+C and q quit like Escape.
func mapKey(k tcell.Key, r rune) (render.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyTab:
		return render.KeyTab, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'm', 'M':
			return render.KeyM, true
		case 'q', 'Q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}
