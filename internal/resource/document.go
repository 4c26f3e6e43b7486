package resource

// ContentType is the media type of resource documents.
const ContentType = "application/vnd.api+json"

// Document is the wire envelope for one resource object or a list of them.
type Document struct {
	Data any            `json:"data"`
	Meta map[string]any `json:"meta"`
}

// Object is one serialized resource.
type Object struct {
	ID            string                        `json:"id"`
	Type          string                        `json:"type"`
	Attributes    map[string]any                `json:"attributes"`
	Relationships map[string]RelationshipObject `json:"relationships,omitempty"`
}

// RelationshipObject describes a link to related resources without embedding them.
type RelationshipObject struct {
	Links map[string]string `json:"links"`
	Meta  map[string]any    `json:"meta"`
}

func newDocument(data any) *Document {
	return &Document{Data: data, Meta: map[string]any{}}
}

func (d *Document) setTotal(count int64) {
	d.Meta["stats"] = map[string]any{
		"total": map[string]any{"count": count},
	}
}
