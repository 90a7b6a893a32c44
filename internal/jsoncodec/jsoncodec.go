// Package jsoncodec is the single JSON entry point for composedetect.
package jsoncodec

import (
	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.ConfigStd

// quoteConfig leaves HTML characters unescaped, as JSON.stringify does.
var quoteConfig = sonic.Config{
	ValidateString: true,
}.Froze()

// Quote serializes text as a JSON string literal.
func Quote(text string) ([]byte, error) {
	return quoteConfig.Marshal(text)
}

// QuoteBody serializes text like Quote without the surrounding quotes, so
// the result can be searched for inside another quoted string.
func QuoteBody(text string) ([]byte, error) {
	quoted, err := Quote(text)
	if err != nil {
		return nil, err
	}
	return quoted[1 : len(quoted)-1], nil
}

// Object decodes data as a JSON object keyed by its top-level fields.
func Object(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := defaultConfig.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
