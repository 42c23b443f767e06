package progress

import (
	"errors"
	"strings"
	"sync"
)

// fakeSurface implements Surface for testing.
type fakeSurface struct {
	noBody    bool
	order     []string
	styles    map[string]map[string]string
	markup    map[string]string
	prepended map[string][]string
	insertErr error
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		styles:    make(map[string]map[string]string),
		markup:    make(map[string]string),
		prepended: make(map[string][]string),
	}
}

func (f *fakeSurface) HasBody() bool { return !f.noBody }

func (f *fakeSurface) Exists(id string) bool {
	_, ok := f.styles[id]
	return ok
}

func (f *fakeSurface) InsertFirst(el Element) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.order = append([]string{el.ID}, f.order...)
	f.styles[el.ID] = make(map[string]string)
	f.markup[el.ID] = el.Markup
	return nil
}

func (f *fakeSurface) PrependInto(id, tag, markup string) error {
	if !f.Exists(id) {
		return errors.New("no such element")
	}
	if !strings.Contains(f.markup[id], "<"+tag) {
		return errors.New("no such tag")
	}
	f.prepended[id] = append(f.prepended[id], markup)
	return nil
}

func (f *fakeSurface) Remove(id string) bool {
	if !f.Exists(id) {
		return false
	}
	delete(f.styles, id)
	delete(f.markup, id)
	delete(f.prepended, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true
}

func (f *fakeSurface) SetStyle(id, property, value string) bool {
	s, ok := f.styles[id]
	if !ok {
		return false
	}
	s[property] = value
	return true
}

func (f *fakeSurface) style(id, property string) string {
	return f.styles[id][property]
}

func (f *fakeSurface) count(id string) int {
	n := 0
	for _, v := range f.order {
		if v == id {
			n++
		}
	}
	return n
}

// lockedSurface guards a fakeSurface for tests that tick on the system clock.
type lockedSurface struct {
	mu sync.Mutex
	*fakeSurface
}

func (l *lockedSurface) HasBody() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.HasBody()
}

func (l *lockedSurface) Exists(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.Exists(id)
}

func (l *lockedSurface) InsertFirst(el Element) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.InsertFirst(el)
}

func (l *lockedSurface) PrependInto(id, tag, markup string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.PrependInto(id, tag, markup)
}

func (l *lockedSurface) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.Remove(id)
}

func (l *lockedSurface) SetStyle(id, property, value string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.SetStyle(id, property, value)
}

func (l *lockedSurface) styleOf(id, property string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeSurface.style(id, property)
}
