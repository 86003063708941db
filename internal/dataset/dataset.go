// Package dataset loads and dumps tree contents as JSON.
//
// Two input shapes are accepted: a plain object whose members become
// key-value pairs, and an array of {"key": ..., "value": ...} records.
// Values are carried as raw JSON text so any value type round-trips
// unchanged. Dumping walks the tree in order, so output keys are always
// sorted.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/arbor/internal/engine/bst"
)

// Errors returned by dataset operations.
var (
	// ErrInvalidJSON indicates the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("dataset: invalid JSON")

	// ErrUnsupportedShape indicates the input is valid JSON but neither
	// an object nor an array of key/value records.
	ErrUnsupportedShape = errors.New("dataset: JSON must be an object or an array of {key, value} records")
)

// ParseError reports a malformed record inside an otherwise valid
// dataset file.
type ParseError struct {
	// Index is the array index of the bad record.
	Index int
	// Message describes what is wrong with the record.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: record %d: %s", e.Index, e.Message)
}

// Load reads and parses the dataset file at path.
func Load(path string) ([]bst.Pair[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	pairs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}

// Parse extracts key-value pairs from JSON data. Pair order follows the
// document; duplicate keys are preserved and resolved by the tree's
// overwrite policy (last one wins).
func Parse(data []byte) ([]bst.Pair[string, string], error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	switch {
	case doc.IsObject():
		return parseObject(doc), nil
	case doc.IsArray():
		return parseRecords(doc)
	default:
		return nil, ErrUnsupportedShape
	}
}

func parseObject(doc gjson.Result) []bst.Pair[string, string] {
	var pairs []bst.Pair[string, string]
	doc.ForEach(func(key, value gjson.Result) bool {
		pairs = append(pairs, bst.Pair[string, string]{Key: key.String(), Value: value.Raw})
		return true
	})
	return pairs
}

func parseRecords(doc gjson.Result) ([]bst.Pair[string, string], error) {
	var pairs []bst.Pair[string, string]
	var failure error

	i := 0
	doc.ForEach(func(_, record gjson.Result) bool {
		defer func() { i++ }()

		if !record.IsObject() {
			failure = &ParseError{Index: i, Message: "not an object"}
			return false
		}
		key := record.Get("key")
		if key.Type != gjson.String {
			failure = &ParseError{Index: i, Message: "missing or non-string key"}
			return false
		}
		value := record.Get("value")
		if !value.Exists() {
			failure = &ParseError{Index: i, Message: "missing value"}
			return false
		}
		pairs = append(pairs, bst.Pair[string, string]{Key: key.String(), Value: value.Raw})
		return true
	})

	if failure != nil {
		return nil, failure
	}
	return pairs, nil
}

// Dump serializes the tree as a JSON object in ascending key order.
// When prettify is true the output is indented for humans.
func Dump(t *bst.Tree[string, string], prettify bool) ([]byte, error) {
	out := []byte("{}")
	var err error

	t.Walk(func(key, value string) bool {
		out, err = sjson.SetRawBytes(out, escapePath(key), []byte(value))
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: dump: %w", err)
	}

	if prettify {
		out = pretty.Pretty(out)
	}
	return out, nil
}

// escapePath neutralizes sjson path metacharacters so arbitrary keys
// map to top-level object members.
func escapePath(key string) string {
	if !strings.ContainsAny(key, `\.*?|:`) {
		return key
	}
	var sb strings.Builder
	sb.Grow(len(key) + 4)
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', ':':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
