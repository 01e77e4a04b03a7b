package jsondoc

import (
	"math"

	yaml "github.com/goccy/go-yaml"
)

// ToYAML renders a JSON document as YAML, keeping the author's member
// order (YAML output is a display format here, so canonical key sorting
// does not apply). Integral numbers are emitted without a decimal point.
func ToYAML(text string) (string, error) {
	res := Parse(text)
	if !res.IsValid {
		return "", parseFailure(res)
	}
	out, err := yaml.Marshal(yamlValue(res.Value))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func yamlValue(v Value) any {
	switch v := v.(type) {
	case Object:
		ms := make(yaml.MapSlice, len(v))
		for i, m := range v {
			ms[i] = yaml.MapItem{Key: m.Key, Value: yamlValue(m.Value)}
		}
		return ms
	case Array:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = yamlValue(elem)
		}
		return out
	case String:
		return string(v)
	case Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return int64(f)
		}
		return f
	case Bool:
		return bool(v)
	}
	return nil
}
