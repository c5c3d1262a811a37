package herofx

// Navigator owns the active page index and the navigation lock. A
// navigation plays the transition, switches the page at once, and stays
// locked until the transition completes or the safety countdown runs out.
type Navigator struct {
	items        []NavItem
	active       int
	locked       bool
	safety       float64 // seconds left before a forced unlock
	safetyUnlock float64
	player       Player

	// OnNavigate fires after the active page changes.
	OnNavigate func(from, to int)
}

// NewNavigator creates a navigator starting on the first item. player may
// be nil, in which case navigation happens without a transition.
func NewNavigator(cfg NavConfig, player Player) *Navigator {
	items := make([]NavItem, len(cfg.Items))
	copy(items, cfg.Items)
	return &Navigator{
		items:        items,
		safetyUnlock: cfg.SafetyUnlock,
		player:       player,
	}
}

// GoTo navigates to item i. It reports whether navigation happened; it is
// ignored for the active page, an out-of-range index, or while locked.
func (n *Navigator) GoTo(i int) bool {
	if i < 0 || i >= len(n.items) || n.locked || i == n.active {
		return false
	}
	n.locked = true
	n.safety = n.safetyUnlock
	if n.player != nil {
		n.player.Play()
	}
	from := n.active
	n.active = i
	if n.OnNavigate != nil {
		n.OnNavigate(from, i)
	}
	return true
}

// GoToPath navigates to the item with the given path.
func (n *Navigator) GoToPath(path string) bool {
	return n.GoTo(n.IndexOf(path))
}

// IndexOf returns the index of the item with the given path, or -1.
func (n *Navigator) IndexOf(path string) int {
	for i, it := range n.items {
		if it.Path == path {
			return i
		}
	}
	return -1
}

// Complete clears the lock. Wire it to the transition's completion.
func (n *Navigator) Complete() {
	n.locked = false
	n.safety = 0
}

// Update counts down the safety unlock by dt seconds.
func (n *Navigator) Update(dt float64) {
	if n.safety <= 0 {
		return
	}
	n.safety -= dt
	if n.safety <= 0 {
		n.safety = 0
		n.locked = false
	}
}

// SetSafetyUnlock changes the countdown used by later navigations.
func (n *Navigator) SetSafetyUnlock(seconds float64) {
	n.safetyUnlock = seconds
}

// Active returns the index of the current page.
func (n *Navigator) Active() int { return n.active }

// ActiveItem returns the current page's nav item.
func (n *Navigator) ActiveItem() NavItem { return n.items[n.active] }

// Locked reports whether navigation is blocked.
func (n *Navigator) Locked() bool { return n.locked }

// Items returns the navigation items. The slice must not be mutated.
func (n *Navigator) Items() []NavItem { return n.items }
