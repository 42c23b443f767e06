package progress

import "strings"

// DisplayType selects how a run is presented on the host surface.
type DisplayType string

const (
	// DisplayBar is a slim bar pinned to the top of the viewport.
	DisplayBar DisplayType = "bar"
	// DisplayFullpage is a centred modal overlay with an SVG placeholder.
	DisplayFullpage DisplayType = "fullpage"
)

// validDisplayTypes is the set of valid display types.
var validDisplayTypes = map[DisplayType]bool{
	DisplayBar:      true,
	DisplayFullpage: true,
}

// IsValid returns true if the display type is a valid value.
func (d DisplayType) IsValid() bool {
	return validDisplayTypes[d]
}

// ParseDisplayType converts a user supplied name into a DisplayType.
// Unknown names yield the empty DisplayType and false.
func ParseDisplayType(s string) (DisplayType, bool) {
	d := DisplayType(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", false
	}
	return d, true
}

// Option defaults
const (
	DefaultType       = DisplayBar
	DefaultBackground = "#aaaaaa"
	DefaultHeight     = 5
)

// DefaultSVG is the placeholder shown in the fullpage overlay when no markup
// has been configured. Only this markup receives the shimmer gradient.
const DefaultSVG = `
<svg width="150px" height="50px" version="1.1" viewBox="0 0 150 50" xmlns="http://www.w3.org/2000/svg">
<g transform="translate(115,-245)">
<text transform="scale(.86637 1.1542)" x="18.282198" y="245.38565" style="font-family:sans-serif;font-size:29.982px;letter-spacing:0px;line-height:1.25;stroke-width:.74956;word-spacing:0px" xml:space="preserve"><tspan x="18.282198" y="245.38565" style="stroke-width:.74956">Your SVG</tspan></text>
 </g>
</svg>
`

// Options is the presentation configuration of a Controller.
// Zero values mean "unset" and are replaced by defaults in Configure.
type Options struct {
	Type       DisplayType
	Background string
	Height     int
	SVG        string
}

// DefaultOptions returns the options a Controller is constructed with.
// The overlay markup is left unset until Configure runs.
func DefaultOptions() Options {
	return Options{
		Type:       DefaultType,
		Background: DefaultBackground,
		Height:     DefaultHeight,
	}
}

// withDefaults fills every unset or invalid field with its default.
func (o Options) withDefaults() Options {
	if !o.Type.IsValid() {
		o.Type = DefaultType
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.SVG == "" {
		o.SVG = DefaultSVG
	}
	return o
}
