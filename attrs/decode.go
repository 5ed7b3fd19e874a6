package attrs

// FromMap converts generically decoded data (encoding/json, yaml.v3) into an
// attribute bag. This is the only place where style form is detected: a
// mapping becomes Single, a list of mappings becomes Sequence and a string is
// parsed as inline CSS declarations.
func FromMap(m map[string]any) Bag {
	if m == nil {
		return nil
	}
	out := make(Bag, len(m))
	for k, v := range m {
		if k == StyleKey {
			if style, ok := toStyle(v); ok {
				out[k] = style
				continue
			}
		}
		out[k] = normalize(v)
	}
	return out
}

// List converts decoded document into list of bags: a single mapping or a
// list of mappings. Entries which are not mappings are skipped and reported
// by index.
func List(v any) (bags []Bag, skipped []int) {
	switch x := v.(type) {
	case map[string]any:
		return []Bag{FromMap(x)}, nil
	case []any:
		for i, e := range x {
			if m, ok := asMap(e); ok {
				bags = append(bags, FromMap(m))
			} else {
				skipped = append(skipped, i)
			}
		}
	}
	return bags, skipped
}

func toStyle(v any) (StyleValue, bool) {
	switch x := v.(type) {
	case StyleValue:
		return x, true
	case string:
		return Single(ParseInlineStyle(x)), true
	case []any:
		seq := make([]Bag, 0, len(x))
		for _, e := range x {
			switch ee := e.(type) {
			case string:
				seq = append(seq, ParseInlineStyle(ee))
			default:
				if m, ok := asMap(ee); ok {
					seq = append(seq, FromMap(m))
				}
			}
		}
		return Sequence(seq...), true
	case []Bag:
		return Sequence(x...), true
	}
	if m, ok := asMap(v); ok {
		return Single(FromMap(m)), true
	}
	return StyleValue{}, false
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Bag:
		return x, true
	case map[any]any:
		// older yaml decoders
		m := make(map[string]any, len(x))
		for k, vv := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			m[ks] = vv
		}
		return m, true
	}
	return nil, false
}

// normalize converts nested decoded values: mappings become bags, numeric
// lists become []float64, other lists are normalized element-wise.
func normalize(v any) any {
	if m, ok := asMap(v); ok {
		return FromMap(m)
	}
	list, ok := v.([]any)
	if !ok {
		return v
	}
	numeric := len(list) > 0
	for _, e := range list {
		switch e.(type) {
		case float64, float32, int, int64, int32, uint64:
		default:
			numeric = false
		}
	}
	if numeric {
		out, _ := Floats(list)
		return out
	}
	out := make([]any, len(list))
	for i, e := range list {
		out[i] = normalize(e)
	}
	return out
}
