// ABOUTME: The injected locate-me control and its enabled/disabled state machine
// ABOUTME: Disabled while a fresh location request is in flight

package locate

// ButtonLabel is the label the control carries on the widget's control surface.
const ButtonLabel = "Locate me"

// Button is the locate-me control injected into the widget's control slot.
// Hover and press visuals belong to the rendering toolkit; the only state
// tracked here is enabled/disabled.
type Button struct {
	enabled bool
	onPress func()
}

// NewButton creates an enabled button invoking onPress on each press.
func NewButton(onPress func()) *Button {
	return &Button{enabled: true, onPress: onPress}
}

func (b *Button) Label() string { return ButtonLabel }

func (b *Button) Enabled() bool { return b.enabled }

// Press is invoked by the widget. Presses while disabled are dropped, the
// way a disabled platform button drops them.
func (b *Button) Press() {
	if !b.enabled || b.onPress == nil {
		return
	}
	b.onPress()
}

func (b *Button) setEnabled(enabled bool) { b.enabled = enabled }
