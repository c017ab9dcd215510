package update

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
)

const (
	animationFPS    = 60
	springFrequency = 8.0
	springDamping   = 1.0
	settleDistance  = 0.5
	settleVelocity  = 0.5
)

// AnimationFrameMsg advances the width spring by one frame.
type AnimationFrameMsg struct{}

// NewSpring returns the critically damped spring used for the sidebar width.
func NewSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(animationFPS), springFrequency, springDamping)
}

// StartAnimation springs the drawn width from `from` to the current target.
// With animation disabled the width snaps. Only one frame loop runs at a time.
func StartAnimation(s *state.ModelState, from int) tea.Cmd {
	target := float64(s.TargetWidth())
	if !s.Animate {
		s.Anim = state.Animation{Spring: s.Anim.Spring, Width: target, Target: target}
		return nil
	}
	if s.Anim.Spring == (harmonica.Spring{}) {
		s.Anim.Spring = NewSpring()
	}
	if !s.Anim.Running {
		s.Anim.Width = float64(from)
		s.Anim.Velocity = 0
	}
	s.Anim.Target = target
	if s.Anim.Running {
		return nil
	}
	s.Anim.Running = true
	return animationFrame()
}

// HandleAnimationFrame steps the spring and schedules the next frame until it settles.
func HandleAnimationFrame(s *state.ModelState) tea.Cmd {
	if !s.Anim.Running {
		return nil
	}
	s.Anim.Width, s.Anim.Velocity = s.Anim.Spring.Update(s.Anim.Width, s.Anim.Velocity, s.Anim.Target)
	if math.Abs(s.Anim.Width-s.Anim.Target) < settleDistance && math.Abs(s.Anim.Velocity) < settleVelocity {
		s.Anim.Width = s.Anim.Target
		s.Anim.Velocity = 0
		s.Anim.Running = false
		return nil
	}
	return animationFrame()
}

func animationFrame() tea.Cmd {
	return tea.Tick(time.Second/animationFPS, func(time.Time) tea.Msg {
		return AnimationFrameMsg{}
	})
}
