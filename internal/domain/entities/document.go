package entities

// Kind is the JSON type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON value. Strings carry their decoded Text, arrays
// their Items, objects their ordered members. Null, boolean and number values
// keep their source JSON text in Raw.
type Value struct {
	Kind   Kind
	Text   string
	Raw    []byte
	Items  []Value
	Object *Object
}

// String builds a string value.
func String(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// ObjectValue wraps o as a value.
func ObjectValue(o *Object) Value {
	return Value{Kind: KindObject, Object: o}
}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers the order in which keys were first set.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

func (o *Object) Len() int { return len(o.members) }

// Members returns the members in order. The slice must not be modified.
func (o *Object) Members() []Member { return o.members }

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	c := NewObject()
	for _, m := range o.members {
		c.Set(m.Key, cloneValue(m.Value))
	}
	return c
}

func cloneValue(v Value) Value {
	if v.Object != nil {
		v.Object = v.Object.Clone()
	}
	if v.Items != nil {
		items := make([]Value, len(v.Items))
		for i, item := range v.Items {
			items[i] = cloneValue(item)
		}
		v.Items = items
	}
	return v
}
