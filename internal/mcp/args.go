package mcp

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

// SynopsisRequest is the argument set of the docs_synopsis tool.
type SynopsisRequest struct {
	Selection string `json:"selection"`
	Language  string `json:"language"`
	File      string `json:"file,omitempty"`
	FileName  string `json:"file_name,omitempty"`
}

// CodeRequest is the argument set of the docs_code tool.
type CodeRequest struct {
	File     string `json:"file"`
	Language string `json:"language"`
	Offset   int    `json:"offset"`
	Line     string `json:"line"`
}

// ProgressRequest is the argument set of the docs_progress tool.
type ProgressRequest struct {
	Code       string   `json:"code"`
	Language   string   `json:"language"`
	FileName   string   `json:"file_name,omitempty"`
	Indicators []string `json:"indicators,omitempty"`
}

// argumentGetter is satisfied by mcp.CallToolRequest.
type argumentGetter interface {
	GetArguments() map[string]any
}

// bindArguments decodes tool arguments into target. Clients sometimes send
// every value as a string, so JSON-looking strings are decoded into slices and
// numeric strings into numbers.
func bindArguments[T any](request argumentGetter, target *T) error {
	jsonString := func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return data, nil
		}
		if to.Kind() == reflect.Slice && strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
			slice := reflect.New(to)
			if err := json.Unmarshal([]byte(raw), slice.Interface()); err == nil {
				return slice.Elem().Interface(), nil
			}
		}
		return data, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonString,
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(request.GetArguments())
}

// parseToolArguments binds the request arguments, returning an error result
// when they are not an object or cannot be decoded.
func parseToolArguments[T any](request mcp.CallToolRequest, target *T) *mcp.CallToolResult {
	if _, ok := request.GetRawArguments().(map[string]any); !ok {
		return mcp.NewToolResultError("invalid arguments format")
	}
	if err := bindArguments(request, target); err != nil {
		return mcp.NewToolResultError("invalid arguments: " + err.Error())
	}
	return nil
}
