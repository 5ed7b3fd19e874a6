// Package responder collects touch and gesture handlers of a drawable node.
package responder

import (
	"go.uber.org/zap"

	"svgprops/attrs"
)

// PanNames are gesture responder attributes copied as is when set.
var PanNames = []string{
	"onMoveShouldSetResponder",
	"onMoveShouldSetResponderCapture",
	"onStartShouldSetResponder",
	"onStartShouldSetResponderCapture",
	"onResponderGrant",
	"onResponderReject",
	"onResponderStart",
	"onResponderMove",
	"onResponderEnd",
	"onResponderRelease",
	"onResponderTerminate",
	"onResponderTerminationRequest",
}

// TouchableNames are press attributes which make node bind its own
// touchable handlers.
var TouchableNames = []string{
	"disabled",
	"onPress",
	"onPressIn",
	"onPressOut",
	"onLongPress",
	"delayPressIn",
	"delayPressOut",
	"delayLongPress",
}

// Target is a node able to handle presses itself.
type Target interface {
	StartShouldSetResponder() bool
	ResponderTerminationRequest() bool
	ResponderGrant()
	ResponderMove()
	ResponderRelease()
	ResponderTerminate()
}

// Props is resolved responder part of node properties.
type Props struct {
	Responsible   bool           `json:"responsible,omitempty" yaml:"responsible,omitempty" ion:"responsible,omitempty"`
	PointerEvents string         `json:"pointerEvents,omitempty" yaml:"pointerEvents,omitempty" ion:"pointerEvents,omitempty"`
	Handlers      map[string]any `json:"-" yaml:"-" ion:"-"`
}

// Resolve copies set pan handlers and binds target handlers when any of
// touchable attributes is set. Touchable attributes without target are
// reported and otherwise ignored.
func Resolve(b attrs.Bag, target Target, log *zap.Logger) Props {
	if log == nil {
		log = zap.NewNop()
	}

	var p Props
	for _, name := range PanNames {
		if v := b.Get(name); attrs.Truthy(v) {
			p.set(name, v)
		}
	}
	if pe := b.Get("pointerEvents"); attrs.Truthy(pe) {
		p.PointerEvents = attrs.String(pe)
	}

	touchable := false
	for _, name := range TouchableNames {
		if attrs.Truthy(b.Get(name)) {
			touchable = true
			break
		}
	}
	if !touchable {
		return p
	}
	if target == nil {
		log.Warn("Touchable attributes set but node cannot handle presses")
		return p
	}
	p.set("onStartShouldSetResponder", target.StartShouldSetResponder)
	p.set("onResponderTerminationRequest", target.ResponderTerminationRequest)
	p.set("onResponderGrant", target.ResponderGrant)
	p.set("onResponderMove", target.ResponderMove)
	p.set("onResponderRelease", target.ResponderRelease)
	p.set("onResponderTerminate", target.ResponderTerminate)
	return p
}

func (p *Props) set(name string, v any) {
	if p.Handlers == nil {
		p.Handlers = make(map[string]any)
	}
	p.Handlers[name] = v
	p.Responsible = true
}
