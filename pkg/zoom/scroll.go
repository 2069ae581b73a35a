package zoom

// ScrollChange describes a change of the content scroll offset.
type ScrollChange struct {
	Offset   float64
	Previous float64
}

// ScrollChanged tells the controller the content's vertical scroll offset.
// Zoom gestures are honored only while the offset is at or above the top.
// With parallax on, the header container is shifted to follow the content.
func (c *Controller) ScrollChanged(offset float64) {
	change := ScrollChange{Offset: offset, Previous: c.scrollOffset}
	c.scrollOffset = offset
	if !c.config.DisableZoom {
		c.atTop = offset <= 0
		if c.config.Parallax {
			c.updateParallax()
		}
	}
	for _, listener := range c.scrollListeners {
		listener(change)
	}
}

// updateParallax moves the header by a fraction of how far the zoom surface
// has been scrolled out of view.
func (c *Controller) updateParallax() {
	natural := float64(c.naturalHeight)
	hidden := natural - float64(c.height) + c.scrollOffset
	if hidden > 0 && hidden < natural {
		c.headerOffset = -int(c.config.ParallaxFactor * hidden)
		return
	}
	c.headerOffset = 0
}

// HeaderOffset returns the vertical scroll the host applies to the header
// container. It is non-zero only with parallax on.
func (c *Controller) HeaderOffset() int {
	return c.headerOffset
}

// ScrollOffset returns the last reported content scroll offset.
func (c *Controller) ScrollOffset() float64 {
	return c.scrollOffset
}

// AtTop reports whether the content is scrolled to the top.
func (c *Controller) AtTop() bool {
	return c.atTop
}

// AllowedOverscroll returns the overscroll distance the host may use, given
// the distance it would use by default.
func (c *Controller) AllowedOverscroll(limit int) int {
	if c.config.DisableOverscroll {
		return 0
	}
	return limit
}

// AddScrollListener adds a callback that fires on every ScrollChanged.
// Returns an unsubscribe function.
func (c *Controller) AddScrollListener(fn func(ScrollChange)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.scrollListeners[id] = fn
	return func() {
		delete(c.scrollListeners, id)
	}
}
