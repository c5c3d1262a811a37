package herofx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("herofx: invalid config")

// Config holds every tunable of the hero site. The zero value is not usable;
// start from DefaultConfig or LoadConfig.
type Config struct {
	Overlay OverlayConfig `yaml:"overlay"`
	Nav     NavConfig     `yaml:"nav"`
	Pong    PongConfig    `yaml:"pong"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// OverlayConfig tunes the glass-wave transition.
type OverlayConfig struct {
	Source       string  `yaml:"source"`        // lookup query of the live surface
	Duration     float64 `yaml:"duration"`      // seconds for progress 0→1
	FadeDuration float64 `yaml:"fade_duration"` // seconds for the opacity fade
	Ease         string  `yaml:"ease"`
	FadeEase     string  `yaml:"fade_ease"`
}

// NavConfig lists the navigation targets and the lock safety net.
type NavConfig struct {
	// SafetyUnlock clears the navigation lock after this many seconds even
	// if the overlay never reports completion. Kept independent of the
	// overlay duration.
	SafetyUnlock float64   `yaml:"safety_unlock"`
	Items        []NavItem `yaml:"items"`
}

// NavItem is one entry of the bottom navigation bar.
type NavItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// PongConfig tunes the collision text animation.
type PongConfig struct {
	CellBase        float64 `yaml:"cell_base"`         // cell size at scale 1
	CellMin         int     `yaml:"cell_min"`          // smallest cell size in pixels
	AlphaThreshold  uint8   `yaml:"alpha_threshold"`   // occupancy cut-off, exclusive
	Bounce          float64 `yaml:"bounce"`            // speed multiplier per bounce
	MaxSpeed        float64 `yaml:"max_speed"`         // pixels per tick
	Jitter          float64 `yaml:"jitter"`            // width of the deflection noise
	BallSpeed       float64 `yaml:"ball_speed"`        // initial speed at scale 1
	BallMinRadius   float64 `yaml:"ball_min_radius"`   // pixels
	BallRadiusCells float64 `yaml:"ball_radius_cells"` // radius in cells
	IntroDuration   float64 `yaml:"intro_duration"`    // seconds
	PlayDelay       float64 `yaml:"play_delay"`        // seconds between intro and play
}

// LayoutConfig describes the hero text in view-box units.
type LayoutConfig struct {
	ViewWidth  float64    `yaml:"view_width"`
	ViewHeight float64    `yaml:"view_height"`
	Lines      []LineSpec `yaml:"lines"`
}

// LineSpec is one text line of the hero layout.
type LineSpec struct {
	Name   string      `yaml:"name"`
	Text   string      `yaml:"text"`
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Size   float64     `yaml:"size"`
	Font   FontFamily  `yaml:"font"`
	Alpha  float64     `yaml:"alpha"`
	Combo  *ComboSpec  `yaml:"combo,omitempty"`
	Strike *StrikeSpec `yaml:"strike,omitempty"`
}

// ComboSpec pairs a second text with a line; both are laid out and
// rasterized as one record.
type ComboSpec struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
}

// StrikeSpec is a horizontal strike-through on the line's baseline row.
type StrikeSpec struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
}

// DefaultConfig returns the values the site ships with.
func DefaultConfig() Config {
	return Config{
		Overlay: OverlayConfig{
			Source:       GradientQuery,
			Duration:     1.6,
			FadeDuration: 0.4,
			Ease:         "power2.inOut",
			FadeEase:     "power2.out",
		},
		Nav: NavConfig{
			SafetyUnlock: 2.5,
			Items: []NavItem{
				{Label: "Home", Path: "/"},
				{Label: "Chat with my Assistant", Path: "/chat"},
				{Label: "About Me", Path: "/about"},
				{Label: "Blogs", Path: "/blogs"},
				{Label: "My Works and Experience", Path: "/works"},
				{Label: "Contact Me", Path: "/contact"},
			},
		},
		Pong: PongConfig{
			CellBase:        4,
			CellMin:         3,
			AlphaThreshold:  60,
			Bounce:          1.01,
			MaxSpeed:        10,
			Jitter:          0.2,
			BallSpeed:       5,
			BallMinRadius:   8,
			BallRadiusCells: 3.5,
			IntroDuration:   5.2,
			PlayDelay:       0.5,
		},
		Layout: DefaultLayout(),
	}
}

// DefaultLayout is the hero text of the home page.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ViewWidth:  1000,
		ViewHeight: 600,
		Lines: []LineSpec{
			{Name: "name", Text: "Ch Varun", X: 500, Y: 230, Size: 100, Font: FontCursive, Alpha: 0.9},
			{Name: "label", Text: "I build with", X: 500, Y: 300, Size: 18, Font: FontSans, Alpha: 0.5},
			{
				Name: "love", Text: "love", X: 470, Y: 340, Size: 28, Font: FontCursive, Alpha: 0.9,
				Combo:  &ComboSpec{Text: "hate", X: 535},
				Strike: &StrikeSpec{X1: 443, X2: 497},
			},
			{
				Name: "q1", Text: "because perfection isn't born out of love, it's forged in frustration,",
				X: 500, Y: 400, Size: 13, Font: FontSans, Alpha: 0.4,
			},
			{
				Name: "q2", Text: "obsession, and an unrelenting pursuit of something better.",
				X: 500, Y: 425, Size: 13, Font: FontSans, Alpha: 0.4,
			},
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so a file only needs the
// keys it changes. Lists replace the defaults wholesale.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("herofx: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("herofx: load %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("herofx: load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and that every easing name resolves.
func (c Config) Validate() error {
	o := c.Overlay
	switch {
	case o.Source == "":
		return fmt.Errorf("%w: overlay.source is empty", ErrInvalidConfig)
	case o.Duration <= 0:
		return fmt.Errorf("%w: overlay.duration must be > 0, got %v", ErrInvalidConfig, o.Duration)
	case o.FadeDuration < 0:
		return fmt.Errorf("%w: overlay.fade_duration must be >= 0, got %v", ErrInvalidConfig, o.FadeDuration)
	}
	for _, name := range []string{o.Ease, o.FadeEase} {
		if _, err := EaseByName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if c.Nav.SafetyUnlock <= 0 {
		return fmt.Errorf("%w: nav.safety_unlock must be > 0, got %v", ErrInvalidConfig, c.Nav.SafetyUnlock)
	}
	if len(c.Nav.Items) == 0 {
		return fmt.Errorf("%w: nav.items is empty", ErrInvalidConfig)
	}

	p := c.Pong
	switch {
	case p.CellBase <= 0 || p.CellMin < 1:
		return fmt.Errorf("%w: pong cell sizes must be positive", ErrInvalidConfig)
	case p.Bounce < 1:
		return fmt.Errorf("%w: pong.bounce must be >= 1, got %v", ErrInvalidConfig, p.Bounce)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: pong.max_speed must be > 0, got %v", ErrInvalidConfig, p.MaxSpeed)
	case p.BallMinRadius <= 0:
		return fmt.Errorf("%w: pong.ball_min_radius must be > 0, got %v", ErrInvalidConfig, p.BallMinRadius)
	case p.IntroDuration < 0 || p.PlayDelay < 0:
		return fmt.Errorf("%w: pong phase timings must be >= 0", ErrInvalidConfig)
	}

	l := c.Layout
	if l.ViewWidth <= 0 || l.ViewHeight <= 0 {
		return fmt.Errorf("%w: layout view box must be positive, got %vx%v", ErrInvalidConfig, l.ViewWidth, l.ViewHeight)
	}
	for i, ln := range l.Lines {
		if ln.Size <= 0 {
			return fmt.Errorf("%w: layout.lines[%d] size must be > 0", ErrInvalidConfig, i)
		}
		if ln.Font != FontCursive && ln.Font != FontSans {
			return fmt.Errorf("%w: layout.lines[%d] unknown font %q", ErrInvalidConfig, i, ln.Font)
		}
	}
	return nil
}
