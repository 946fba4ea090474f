package infra

import (
	"sync"

	"wanderlust/internal/models/domain_models"
)

// Collection is an insertion-ordered, mutex-guarded id→record map. It is the
// only container behind every repository; records are treated as immutable
// after insertion and list results are always freshly allocated slices.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
	}
}

func (c *Collection[T]) Put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// PutIfAbsent inserts item unless conflict reports true for any existing
// record. The scan and the insert happen under one critical section, so two
// concurrent calls with the same conflicting value cannot both succeed.
func (c *Collection[T]) PutIfAbsent(id string, item T, conflict func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existingID := range c.order {
		if conflict(c.items[existingID]) {
			return false
		}
	}

	c.order = append(c.order, id)
	c.items[id] = item
	return true
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Filter returns the records, in insertion order, for which keep is true.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range c.order {
		if keep(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// Find returns the first record, in insertion order, matching match.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if match(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Store owns every entity collection for the life of the process. It is
// constructed once at startup, seeded, and handed to the repositories by fx.
type Store struct {
	Users           *Collection[domain_models.User]
	Destinations    *Collection[domain_models.Destination]
	Tours           *Collection[domain_models.Tour]
	Itineraries     *Collection[domain_models.TourItinerary]
	Guides          *Collection[domain_models.TourGuide]
	Inquiries       *Collection[domain_models.Inquiry]
	Testimonials    *Collection[domain_models.Testimonial]
	BlogPosts       *Collection[domain_models.BlogPost]
	Subscribers     *Collection[domain_models.NewsletterSubscriber]
	TeamMembers     *Collection[domain_models.TeamMember]
	Faqs            *Collection[domain_models.Faq]
	ContactMessages *Collection[domain_models.ContactMessage]
}

func NewStore() *Store {
	return &Store{
		Users:           NewCollection[domain_models.User](),
		Destinations:    NewCollection[domain_models.Destination](),
		Tours:           NewCollection[domain_models.Tour](),
		Itineraries:     NewCollection[domain_models.TourItinerary](),
		Guides:          NewCollection[domain_models.TourGuide](),
		Inquiries:       NewCollection[domain_models.Inquiry](),
		Testimonials:    NewCollection[domain_models.Testimonial](),
		BlogPosts:       NewCollection[domain_models.BlogPost](),
		Subscribers:     NewCollection[domain_models.NewsletterSubscriber](),
		TeamMembers:     NewCollection[domain_models.TeamMember](),
		Faqs:            NewCollection[domain_models.Faq](),
		ContactMessages: NewCollection[domain_models.ContactMessage](),
	}
}
