// Package lin decodes the pipe-delimited LIN interchange format used by
// Bridge Base Online into validated bridge.Board records.
//
// A LIN stream is a flat alternation of tag and value tokens:
//
//	qx|o1|pn|South,West,North,East|md|1SAKQ...,...|sv|o|mb|1N|mb|p|...
//
// Decoding is deliberately forgiving. Unknown tags are skipped, garbled
// values fall back to documented defaults, and a board that fails deal
// validation is reported without blocking the boards that follow it.
package lin

// Delimiter separates tokens in a LIN stream.
const Delimiter = '|'

// TagValue is one (tag, value) pair from the token stream.
type TagValue struct {
	Tag   string
	Value string
}

// Tokenizer walks a LIN string and yields its (tag, value) pairs in order.
// Tokenization cannot fail: malformed input simply yields short or empty
// values.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer returns a Tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// next returns the next raw token, splitting on the delimiter.
func (t *Tokenizer) next() (string, bool) {
	if t.pos >= len(t.src) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.src) && t.src[t.pos] != Delimiter {
		t.pos++
	}
	tok := t.src[start:t.pos]
	if t.pos < len(t.src) {
		t.pos++ // consume the delimiter
	}
	return tok, true
}

// Next returns the next (tag, value) pair. A tag at the very end of the
// stream with no following token gets an empty value. The second return
// value is false once the stream is exhausted.
func (t *Tokenizer) Next() (TagValue, bool) {
	tag, ok := t.next()
	if !ok {
		return TagValue{}, false
	}
	value, _ := t.next()
	return TagValue{Tag: tag, Value: value}, true
}
