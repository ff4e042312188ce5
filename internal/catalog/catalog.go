package catalog

// FieldType is the semantic type of a catalog field.
type FieldType string

// Supported field types. These describe JSON payload values: no coercion
// is performed between them (a numeric string is not an integer).
const (
	TypeText     FieldType = "text"
	TypeInteger  FieldType = "integer"
	TypeNumber   FieldType = "number"
	TypeBool     FieldType = "bool"
	TypeTextList FieldType = "text_list"
)

// Field describes a single field of a record kind.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// Default is applied at validation time when the field is absent.
	// nil means no default (absent optional fields stay absent).
	Default any

	// Min and Max are inclusive numeric bounds for integer/number fields.
	Min *float64
	Max *float64
}

// Kind describes one record kind: its name (which is also its storage
// collection) and its fields in declaration order.
type Kind struct {
	Name   string
	Fields []Field

	// Exposed marks kinds listed by the schema introspection endpoint.
	// Non-exposed kinds still validate and persist normally.
	Exposed bool
}

// FieldNames returns the field names in declaration order.
func (k Kind) FieldNames() []string {
	names := make([]string, len(k.Fields))
	for i, f := range k.Fields {
		names[i] = f.Name
	}
	return names
}

// Description is the introspection view of a kind.
type Description struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// kinds is the full catalog, in introspection order. The exposed subset
// (channel, message, paymentintent, project, device) is served by /schema;
// user and product are catalog-only.
var kinds = []Kind{
	{
		Name:    "channel",
		Exposed: true,
		Fields: []Field{
			{Name: "name", Type: TypeText, Required: true},
			{Name: "topic", Type: TypeText},
		},
	},
	{
		Name:    "message",
		Exposed: true,
		Fields: []Field{
			{Name: "channel_id", Type: TypeText, Required: true},
			{Name: "sender", Type: TypeText, Required: true},
			{Name: "text", Type: TypeText},
			{Name: "voice_url", Type: TypeText},
		},
	},
	{
		Name:    "paymentintent",
		Exposed: true,
		Fields: []Field{
			{Name: "user_email", Type: TypeText, Required: true},
			{Name: "plan", Type: TypeText, Required: true},
			{Name: "amount_cents", Type: TypeInteger, Required: true, Min: bound(0)},
			{Name: "currency", Type: TypeText, Default: "USD"},
			{Name: "status", Type: TypeText, Default: "created"},
		},
	},
	{
		Name:    "project",
		Exposed: true,
		Fields: []Field{
			{Name: "title", Type: TypeText, Required: true},
			{Name: "bpm", Type: TypeInteger, Default: int64(120), Min: bound(40), Max: bound(300)},
			{Name: "key", Type: TypeText, Default: "C Major"},
			{Name: "tracks", Type: TypeTextList, Default: []string{}},
		},
	},
	{
		Name:    "device",
		Exposed: true,
		Fields: []Field{
			{Name: "name", Type: TypeText, Required: true},
			{Name: "manufacturer", Type: TypeText},
			// Connection type: midi, bluetooth, otg. Free text on purpose so
			// new transport names don't need a schema change.
			{Name: "connection", Type: TypeText, Required: true},
		},
	},
	{
		Name: "user",
		Fields: []Field{
			{Name: "name", Type: TypeText, Required: true},
			{Name: "email", Type: TypeText, Required: true},
			{Name: "address", Type: TypeText, Required: true},
			{Name: "age", Type: TypeInteger, Min: bound(0), Max: bound(120)},
			{Name: "is_active", Type: TypeBool, Default: true},
		},
	},
	{
		Name: "product",
		Fields: []Field{
			{Name: "title", Type: TypeText, Required: true},
			{Name: "description", Type: TypeText},
			{Name: "price", Type: TypeNumber, Required: true, Min: bound(0)},
			{Name: "category", Type: TypeText, Required: true},
			{Name: "in_stock", Type: TypeBool, Default: true},
		},
	},
}

// byName is built once at startup for O(1) kind lookups.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[k.Name] = k
	}
	return m
}()

// Lookup returns the kind definition for a kind name.
func Lookup(kind string) (Kind, bool) {
	k, ok := byName[kind]
	return k, ok
}

// Describe returns the introspection view of a single kind.
func Describe(kind string) (Description, bool) {
	k, ok := byName[kind]
	if !ok {
		return Description{}, false
	}
	return Description{Name: k.Name, Fields: k.FieldNames()}, true
}

// Exposed returns descriptions of the kinds served by the schema endpoint,
// in declaration order.
func Exposed() []Description {
	var out []Description
	for _, k := range kinds {
		if k.Exposed {
			out = append(out, Description{Name: k.Name, Fields: k.FieldNames()})
		}
	}
	return out
}

// KindNames returns every kind name in the catalog, in declaration order.
// The record store uses this as its closed collection set.
func KindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}
	return names
}

// bound returns a pointer to v, for inline bound declarations.
func bound(v float64) *float64 {
	return &v
}
