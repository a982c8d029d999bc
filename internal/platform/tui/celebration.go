package tui

import (
	"math/rand"

	"github.com/vovakirdan/number-master/internal/core"
)

// sparkleCount is how many sparkles a celebration scatters.
const sparkleCount = 50

var sparkleRunes = []rune{'✦', '✧', '*', '+', '·'}

type sparkle struct {
	x, y   int
	color  core.Color
	delay  int // frames before the first blink
	period int // frames per on/off half cycle
}

// Celebration is the confetti flourish shown while a won round is on screen.
// It draws into a core.Screen strip.
type Celebration struct {
	screen   *core.Screen
	rng      *rand.Rand
	sparkles []sparkle
	frame    int
	fps      int
}

// NewCelebration creates an idle celebration for a width x height strip.
func NewCelebration(width, height, fps int, seed int64) *Celebration {
	return &Celebration{
		screen: core.NewScreen(width, height),
		rng:    rand.New(rand.NewSource(seed)),
		fps:    max(fps, 1),
	}
}

// Scatter places a fresh set of sparkles and restarts the animation.
// Delays spread over two seconds and blink periods over one to three.
func (c *Celebration) Scatter() {
	c.frame = 0
	c.sparkles = c.sparkles[:0]
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return
	}
	for range sparkleCount {
		c.sparkles = append(c.sparkles, sparkle{
			x:      c.rng.Intn(w),
			y:      c.rng.Intn(h),
			color:  core.ConfettiPalette[c.rng.Intn(len(core.ConfettiPalette))],
			delay:  c.rng.Intn(2 * c.fps),
			period: c.fps + c.rng.Intn(2*c.fps),
		})
	}
}

// Resize changes the strip size and re-scatters the sparkles.
func (c *Celebration) Resize(width, height int) {
	c.screen.Resize(width, height)
	c.Scatter()
}

// Step advances one animation frame.
func (c *Celebration) Step() {
	c.frame++
}

// visible reports whether s is lit at the current frame.
func (c *Celebration) visible(s sparkle) bool {
	if c.frame < s.delay {
		return false
	}
	half := max(s.period/2, 1)
	return ((c.frame-s.delay)/half)%2 == 0
}

// Render draws the lit sparkles and returns the styled strip.
func (c *Celebration) Render() string {
	c.screen.Clear()
	for i, s := range c.sparkles {
		if !c.visible(s) {
			continue
		}
		c.screen.Set(s.x, s.y, sparkleRunes[i%len(sparkleRunes)], s.color)
	}
	return RenderScreen(c.screen)
}

// Lit returns the number of sparkles drawn at the current frame.
func (c *Celebration) Lit() int {
	n := 0
	for _, s := range c.sparkles {
		if c.visible(s) {
			n++
		}
	}
	return n
}
