package progress

// Element ids written into the host surface.
const (
	BarID      = "progress__bar"
	FullpageID = "progress__fullpage"
)

// Element is a piece of markup inserted into the host surface.
// ID is the id attribute of the markup's root element.
type Element struct {
	ID     string
	Markup string
}

// Surface is the host document a Controller draws on.
//
// Implementations report absence through their boolean results instead of
// errors; the controller treats a missing body or element as a no-op.
type Surface interface {
	// HasBody reports whether the surface has a body to insert into.
	HasBody() bool
	// Exists reports whether an element with the id is present.
	Exists(id string) bool
	// InsertFirst inserts the element as the first child of the body.
	InsertFirst(el Element) error
	// PrependInto inserts markup as the first child of the first tag
	// element found below the element with the given id.
	PrependInto(id, tag, markup string) error
	// Remove deletes the element with the id. It returns false if absent.
	Remove(id string) bool
	// SetStyle sets an inline style property. It returns false if the
	// element is absent.
	SetStyle(id, property, value string) bool
}

// nopSurface has no body, so every Start and Complete on it is a no-op.
type nopSurface struct{}

func (nopSurface) HasBody() bool                    { return false }
func (nopSurface) Exists(string) bool               { return false }
func (nopSurface) InsertFirst(Element) error        { return nil }
func (nopSurface) PrependInto(_, _, _ string) error { return nil }
func (nopSurface) Remove(string) bool               { return false }
func (nopSurface) SetStyle(_, _, _ string) bool     { return false }
