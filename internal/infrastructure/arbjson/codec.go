// Package arbjson reads and writes ARB message documents as order-preserving
// JSON.
package arbjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"arbfix/internal/domain"
	"arbfix/internal/domain/entities"
	"arbfix/internal/ports/output"
)

var _ output.DocumentCodec = (*Codec)(nil)

// Width 0 keeps arrays expanded one item per line.
var prettyOptions = &pretty.Options{
	Width:  0,
	Indent: "  ",
}

// Codec implements output.DocumentCodec.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// ErrInvalidUTF8 is wrapped by the ParseError returned for undecodable input.
var ErrInvalidUTF8 = errors.New("document is not valid UTF-8")

// Decode strips a leading UTF-8 byte order mark, validates data and walks it
// in source order.
func (c *Codec) Decode(data []byte) (*entities.Object, error) {
	// The BOM decoder replaces ill-formed bytes with U+FFFD, so check first.
	if !utf8.Valid(data) {
		return nil, &domain.ParseError{Err: ErrInvalidUTF8}
	}
	data, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("decode utf-8: %w", err)}
	}

	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, syntaxError(data, err)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &domain.ParseError{Err: domain.ErrRootObject}
	}
	return decodeObject(root), nil
}

// Encode renders o with two-space indentation and a trailing LF.
func (c *Codec) Encode(o *entities.Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeObject(&buf, o); err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}

func decodeObject(r gjson.Result) *entities.Object {
	o := entities.NewObject()
	r.ForEach(func(key, value gjson.Result) bool {
		o.Set(key.String(), decodeValue(value))
		return true
	})
	return o
}

func decodeValue(r gjson.Result) entities.Value {
	switch r.Type {
	case gjson.String:
		return entities.String(r.Str)
	case gjson.Number:
		return entities.Value{Kind: entities.KindNumber, Raw: []byte(r.Raw)}
	case gjson.True, gjson.False:
		return entities.Value{Kind: entities.KindBool, Raw: []byte(r.Raw)}
	case gjson.JSON:
		if r.IsObject() {
			return entities.ObjectValue(decodeObject(r))
		}
		items := []entities.Value{}
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, decodeValue(item))
			return true
		})
		return entities.Value{Kind: entities.KindArray, Items: items}
	default:
		return entities.Value{Kind: entities.KindNull, Raw: []byte("null")}
	}
}

func writeObject(buf *bytes.Buffer, o *entities.Object) error {
	buf.WriteByte('{')
	for i, m := range o.Members() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, m.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, m.Value); err != nil {
			return fmt.Errorf("encode %q: %w", m.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v entities.Value) error {
	switch v.Kind {
	case entities.KindString:
		return writeString(buf, v.Text)
	case entities.KindObject:
		if v.Object == nil {
			buf.WriteString("{}")
			return nil
		}
		return writeObject(buf, v.Object)
	case entities.KindArray:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case entities.KindNull:
		buf.WriteString("null")
		return nil
	default:
		if len(v.Raw) == 0 {
			return fmt.Errorf("empty %s value", v.Kind)
		}
		buf.Write(v.Raw)
		return nil
	}
}

// writeString escapes s without turning <, > and & into \u sequences and
// without touching non-ASCII text, U+2028 and U+2029 included.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(unescapeSeparators(bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))))
	return nil
}

var separators = map[string]rune{
	`\u2028`: '\u2028',
	`\u2029`: '\u2029',
}

// unescapeSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into literal runes. It walks escape sequences pairwise so
// an escaped backslash followed by "u2028" stays untouched.
func unescapeSeparators(enc []byte) []byte {
	if !bytes.Contains(enc, []byte(`\u202`)) {
		return enc
	}
	out := make([]byte, 0, len(enc))
	for i := 0; i < len(enc); i++ {
		if enc[i] != '\\' || i+1 >= len(enc) {
			out = append(out, enc[i])
			continue
		}
		if i+6 <= len(enc) {
			if r, ok := separators[string(enc[i:i+6])]; ok {
				out = utf8.AppendRune(out, r)
				i += 5
				continue
			}
		}
		out = append(out, enc[i], enc[i+1])
		i++
	}
	return out
}

func syntaxError(data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return &domain.ParseError{Err: err}
	}
	line, col := position(data, syntaxErr.Offset)
	return &domain.ParseError{Line: line, Column: col, Err: err}
}

// position converts a json.SyntaxError offset, which counts the offending
// byte, into the 1-based line and column of that byte.
func position(data []byte, offset int64) (line, col int) {
	idx := int(offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(data) {
		idx = len(data)
	}
	prefix := data[:idx]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = idx - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
