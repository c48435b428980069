package extraction

import "encoding/json"

type functionJSON struct {
	Kind        Kind    `json:"kind"`
	Params      []Param `json:"params,omitempty"`
	Returns     *bool   `json:"returns,omitempty"`
	ReturnsType string  `json:"returnsType,omitempty"`
}

// MarshalJSON writes the tagged form {"kind":"function",...}.
// An empty parameter list is written as [] and a missing one is omitted.
func (s FunctionSynopsis) MarshalJSON() ([]byte, error) {
	if s.Params != nil && len(s.Params) == 0 {
		return json.Marshal(struct {
			Kind        Kind    `json:"kind"`
			Params      []Param `json:"params"`
			Returns     *bool   `json:"returns,omitempty"`
			ReturnsType string  `json:"returnsType,omitempty"`
		}{KindFunction, s.Params, s.Returns, s.ReturnsType})
	}
	return json.Marshal(functionJSON{KindFunction, s.Params, s.Returns, s.ReturnsType})
}

// MarshalJSON writes the tagged form {"kind":"typedef",...}.
func (s TypedefSynopsis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       Kind       `json:"kind"`
		Properties []Property `json:"properties,omitempty"`
	}{KindTypedef, s.Properties})
}

// MarshalJSON writes the tagged form {"kind":"class",...}.
func (s ClassSynopsis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind   `json:"kind"`
		Extends string `json:"extends,omitempty"`
	}{KindClass, s.Extends})
}

// MarshalJSON writes {"kind":"unspecified"}.
func (UnspecifiedSynopsis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
	}{KindUnspecified})
}
