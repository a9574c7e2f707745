// ABOUTME: Widget event handlers and the suppression rules that prevent feedback loops
// ABOUTME: Swallows the startup idle and any zoom-changed fired before load completes

package adapter

import (
	"github.com/harper/mapbridge/internal/widget"
)

// onLoad records that the widget is up, re-applies custom styling (the
// widget does not always honor style options passed at construction),
// reports readiness, and opens the location overlay's gate.
func (a *Adapter) onLoad() {
	a.loaded = true
	if a.opts.CustomMapStyle != nil {
		a.w.SetOptions(widget.Options{"styles": a.opts.CustomMapStyle})
	}
	if a.opts.OnMapReady != nil {
		a.opts.OnMapReady()
	}
	a.locate.WidgetLoaded()
}

// onZoomChanged reports a settled zoom gesture. The widget fires a spurious
// zoom-changed during its own initialization, before load; until onLoad has
// run the event is ignored entirely.
func (a *Adapter) onZoomChanged() {
	if !a.loaded {
		return
	}
	a.reportSettle()
}

// onIdle reports a viewport settle. The widget fires one idle immediately
// after initial load that no user caused; an explicit two-state flag
// swallows exactly that first occurrence.
func (a *Adapter) onIdle() {
	if !a.settled {
		a.settled = true
		return
	}
	a.reportSettle()
}

// onDrag reports in-progress motion: the change callback only, never the
// complete variant. Like zoom-changed, anything fired before load is ignored.
func (a *Adapter) onDrag() {
	if !a.loaded {
		return
	}
	r := a.CurrentRegion()
	if a.opts.OnRegionChange != nil {
		a.opts.OnRegionChange(r, ChangeDetail{IsGesture: true})
	}
}

// reportSettle invokes both outward callbacks, change strictly before
// complete, with one identical region value read once.
func (a *Adapter) reportSettle() {
	r := a.CurrentRegion()
	detail := ChangeDetail{IsGesture: true}
	if a.opts.OnRegionChange != nil {
		a.opts.OnRegionChange(r, detail)
	}
	if a.opts.OnRegionChangeComplete != nil {
		a.opts.OnRegionChangeComplete(r, detail)
	}
}

// onClick and onDoubleClick are inert pass-throughs. The widget's click
// payload lacks full parity with the mobile press event shape, so no
// coordinate reconstruction is attempted; this is a known parity gap.
func (a *Adapter) onClick(ev widget.ClickEvent) {
	if a.opts.OnPress != nil {
		a.opts.OnPress(ev)
	}
}

func (a *Adapter) onDoubleClick(ev widget.ClickEvent) {
	if a.opts.OnDoublePress != nil {
		a.opts.OnDoublePress(ev)
	}
}
