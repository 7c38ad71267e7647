// Package helditem turns the many shapes a held item can take (a token, a raw id, an
// item record, a ":TOKEN" string) into one canonical token.
package helditem

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// Kind classifies a normalized held item
type Kind int

const (
	// KindNone means the slot is empty
	KindNone Kind = iota

	// KindToken means the value named an item token
	KindToken

	// KindUnrecognized means the value could not be turned into a token
	KindUnrecognized
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindToken:
		return "token"
	default:
		return "unrecognized"
	}
}

// Result is the outcome of Normalize. Token is set only for KindToken.
type Result struct {
	Kind  Kind
	Token string
}

// Empty reports whether the slot should be treated as holding nothing.
// Unrecognized values count as empty.
func (r Result) Empty() bool {
	return r.Kind != KindToken
}

// Tokener is implemented by item records that know their own token
type Tokener interface {
	ItemToken() string
}

// IDIndex maps registered numeric ids back to tokens
type IDIndex interface {
	TokenFor(id int) (string, bool)
}

// IDMap is a fixed IDIndex
type IDMap map[int]string

// TokenFor implements IDIndex
func (m IDMap) TokenFor(id int) (string, bool) {
	token, ok := m[id]
	return token, ok
}

var noneTokens = map[string]bool{
	"NONE":    true,
	"NOITEM":  true,
	"NO_ITEM": true,
	"EMPTY":   true,
	"AIR":     true,
}

// Normalizer resolves numeric ids through IDs; a nil IDs leaves every non-zero id unrecognized
type Normalizer struct {
	IDs IDIndex
}

// Normalize classifies v and extracts its token
func (n Normalizer) Normalize(v any) Result {
	switch item := v.(type) {
	case nil:
		return Result{Kind: KindNone}
	case string:
		return fromText(item)
	case Tokener:
		if isNilPointer(item) {
			return Result{Kind: KindNone}
		}
		return fromText(item.ItemToken())
	case json.Number:
		if id, err := item.Int64(); err == nil {
			return n.fromID(id)
		}
		f, err := item.Float64()
		if err != nil {
			return Result{Kind: KindUnrecognized}
		}
		return n.fromFloat(f)
	case float64:
		return n.fromFloat(item)
	case float32:
		return n.fromFloat(float64(item))
	case map[string]any:
		return n.fromRecord(item)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return n.fromID(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return Result{Kind: KindUnrecognized}
		}
		return n.fromID(int64(rv.Uint()))
	case reflect.String:
		return fromText(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return Result{Kind: KindNone}
		}
	}

	return Result{Kind: KindUnrecognized}
}

// Normalize uses a Normalizer with no id index
func Normalize(v any) Result {
	return Normalizer{}.Normalize(v)
}

func fromText(s string) Result {
	token := strings.TrimPrefix(strings.TrimSpace(s), ":")
	if token == "" {
		return Result{Kind: KindNone}
	}
	if noneTokens[strings.ToUpper(token)] {
		return Result{Kind: KindNone}
	}
	return Result{Kind: KindToken, Token: token}
}

// fromRecord reads a descriptive object after a JSON round trip, such as a saved item
// definition: the "id" or "token" text first, then the numeric "id_number".
func (n Normalizer) fromRecord(rec map[string]any) Result {
	for _, key := range []string{"id", "token"} {
		if text, ok := rec[key].(string); ok {
			return fromText(text)
		}
	}
	if id, ok := rec["id_number"]; ok && id != nil {
		if _, nested := id.(map[string]any); !nested {
			return n.Normalize(id)
		}
	}
	return Result{Kind: KindUnrecognized}
}

func (n Normalizer) fromID(id int64) Result {
	if id == 0 {
		return Result{Kind: KindNone}
	}
	if n.IDs == nil || id < 0 || id > math.MaxInt32 {
		return Result{Kind: KindUnrecognized}
	}
	token, ok := n.IDs.TokenFor(int(id))
	if !ok {
		return Result{Kind: KindUnrecognized}
	}
	return fromText(token)
}

func (n Normalizer) fromFloat(f float64) Result {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return Result{Kind: KindUnrecognized}
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return Result{Kind: KindUnrecognized}
	}
	return n.fromID(int64(f))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
