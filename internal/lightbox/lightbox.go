// Package lightbox is the gallery viewer state machine: closed, or open on
// one item of a gallery of n items, with an info overlay that can be hidden.
package lightbox

import (
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/pkg/errors"
)

// Key is a navigation key understood by HandleKey.
type Key string

const (
	KeyRight  Key = "right"
	KeyLeft   Key = "left"
	KeyEscape Key = "esc"
	KeyInfo   Key = "i"
)

// ScrollLock is notified with true when the lightbox opens and false when it
// closes.
type ScrollLock func(locked bool)

// Lightbox is not safe for concurrent use; it is owned by one UI loop.
type Lightbox struct {
	n           int
	open        bool
	index       int
	infoVisible bool
	lock        ScrollLock
}

// New returns a closed lightbox over a gallery of n items.
func New(n int, lock ScrollLock) *Lightbox {
	if n < 0 {
		n = 0
	}
	return &Lightbox{n: n, infoVisible: true, lock: lock}
}

func (l *Lightbox) IsOpen() bool      { return l.open }
func (l *Lightbox) Index() int        { return l.index }
func (l *Lightbox) Len() int          { return l.n }
func (l *Lightbox) InfoVisible() bool { return l.infoVisible }

// CanNavigate reports whether next/prev have any effect.
func (l *Lightbox) CanNavigate() bool { return l.n > 1 }

// Open shows item i. Reopening from closed resets the info overlay.
func (l *Lightbox) Open(i int) error {
	if l.n == 0 {
		return errcodes.ErrGalleryEmpty
	}
	if i < 0 || i >= l.n {
		return errors.Wrapf(errcodes.ErrIndexOutOfRange, "index %d of %d", i, l.n)
	}
	if !l.open {
		l.infoVisible = true
		l.open = true
		l.notify(true)
	}
	l.index = i
	return nil
}

// Next advances one item, wrapping from the last to the first.
func (l *Lightbox) Next() {
	if !l.open || !l.CanNavigate() {
		return
	}
	l.index = (l.index + 1) % l.n
}

// Prev goes back one item, wrapping from the first to the last.
func (l *Lightbox) Prev() {
	if !l.open || !l.CanNavigate() {
		return
	}
	l.index = (l.index - 1 + l.n) % l.n
}

func (l *Lightbox) Close() {
	if !l.open {
		return
	}
	l.open = false
	l.notify(false)
}

func (l *Lightbox) ToggleInfo() {
	if l.open {
		l.infoVisible = !l.infoVisible
	}
}

// SetGallery replaces the active gallery with one of n items. An open
// lightbox is closed so its index can never point past the new gallery.
func (l *Lightbox) SetGallery(n int) {
	if n < 0 {
		n = 0
	}
	l.Close()
	l.n = n
	l.index = 0
}

// HandleKey applies a key press and reports whether it was consumed.
// Keys are ignored while closed.
func (l *Lightbox) HandleKey(k Key) bool {
	if !l.open {
		return false
	}
	switch k {
	case KeyRight:
		l.Next()
	case KeyLeft:
		l.Prev()
	case KeyEscape:
		l.Close()
	case KeyInfo:
		l.ToggleInfo()
	default:
		return false
	}
	return true
}

func (l *Lightbox) notify(locked bool) {
	if l.lock != nil {
		l.lock(locked)
	}
}

// Neighbours returns the wrap-around previous and next indices of i in a
// gallery of n items. For n <= 1 both equal i.
func Neighbours(i, n int) (prev, next int) {
	if n <= 1 {
		return i, i
	}
	return (i - 1 + n) % n, (i + 1) % n
}
