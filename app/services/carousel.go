package services

import (
	"context"
	"sync"
	"time"

	"github.com/fariowear/go-storefront/app/models"
)

// DefaultCarouselInterval is how often the active media item advances
// while the activation signal is held.
const DefaultCarouselInterval = 1500 * time.Millisecond

// Carousel tracks which media item of a product is active for display,
// advancing automatically on a fixed interval while activated. It is Idle
// (index 0) until activated, cycles `(i+1) mod n` while active, and resets
// to 0 on deactivation or when a different media list is bound.
//
// Every started ticker has exactly one cancellation: Deactivate and Bind
// stop the running goroutine and wait for it to exit, so no timer outlives
// the card it was driving.
type Carousel struct {
	mu       sync.Mutex
	media    []models.MediaItem
	interval time.Duration
	active   bool
	index    int
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewCarousel(media []models.MediaItem, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{media: media, interval: interval}
}

// Activate turns the activation signal on and starts the tick loop. With
// one media item or none there is nothing to cycle: the carousel is
// nominally active but no timer starts. onTick, when non-nil, is called
// from the tick goroutine with each new index.
func (c *Carousel) Activate(onTick func(index int)) {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return
	}
	c.active = true
	if len(c.media) <= 1 {
		c.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go c.loop(ctx, onTick)
}

func (c *Carousel) loop(ctx context.Context, onTick func(index int)) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			index, advanced := c.Advance()
			if advanced && onTick != nil {
				onTick(index)
			}
		}
	}
}

// Deactivate turns the activation signal off, stops the tick loop, and
// resets the active index to 0. It blocks until the loop goroutine has
// exited, so no tick can fire after Deactivate returns.
func (c *Carousel) Deactivate() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.active = false
	c.index = 0
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		c.wg.Wait()
	}
}

// Bind replaces the media list when a different product occupies the same
// visual slot. Whatever the prior state, the carousel returns to Idle with
// index 0.
func (c *Carousel) Bind(media []models.MediaItem) {
	c.Deactivate()
	c.mu.Lock()
	c.media = media
	c.mu.Unlock()
}

// Advance moves to the next media item and reports whether anything
// changed. It is a no-op while inactive or with fewer than two items.
func (c *Carousel) Advance() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active || len(c.media) <= 1 {
		return c.index, false
	}
	c.index = (c.index + 1) % len(c.media)
	return c.index, true
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Carousel) Media() []models.MediaItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.media
}
