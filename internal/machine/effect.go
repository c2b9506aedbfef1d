package machine

// Effect is the set of side effects one input asks for.
// dispatch only computes effects; apply performs them.
type Effect uint8

const (
	EffectRedrawMain Effect = 1 << iota
	EffectRedrawHUD
	EffectRedrawBars
	EffectRelayout
	EffectSaveConfig
	EffectExit

	EffectNone   Effect = 0
	EffectRedraw        = EffectRedrawMain | EffectRedrawHUD | EffectRedrawBars
)

// Has reports whether every bit of o is set in e.
func (e Effect) Has(o Effect) bool {
	return o != 0 && e&o == o
}
