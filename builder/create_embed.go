package builder

import (
	json "github.com/goccy/go-json"

	"github.com/scopeclient/serenity/model"
)

// CreateEmbed builds the rich embed object attached to message sends and
// edits.
type CreateEmbed struct {
	fields map[string]any
}

// NewCreateEmbed returns an empty embed document.
func NewCreateEmbed() *CreateEmbed {
	return &CreateEmbed{fields: make(map[string]any)}
}

// Title sets the embed title.
func (e *CreateEmbed) Title(title string) *CreateEmbed {
	e.fields["title"] = title
	return e
}

// Description sets the embed description. Descriptions must be under
// 4096 unicode code points.
func (e *CreateEmbed) Description(description string) *CreateEmbed {
	e.fields["description"] = description
	return e
}

// URL sets the URL the title links to.
func (e *CreateEmbed) URL(url string) *CreateEmbed {
	e.fields["url"] = url
	return e
}

// Color sets the left-hand accent color as a 0xRRGGBB integer.
func (e *CreateEmbed) Color(color uint32) *CreateEmbed {
	e.fields["color"] = color
	return e
}

// Timestamp sets the embed timestamp, rendered by clients in the footer.
func (e *CreateEmbed) Timestamp(ts model.Timestamp) *CreateEmbed {
	e.fields["timestamp"] = ts
	return e
}

// Field appends a name/value field to the embed.
func (e *CreateEmbed) Field(name, value string, inline bool) *CreateEmbed {
	fields, _ := e.fields["fields"].([]any)
	e.fields["fields"] = append(fields, map[string]any{
		"name":   name,
		"value":  value,
		"inline": inline,
	})
	return e
}

// Footer sets the embed footer text.
func (e *CreateEmbed) Footer(text string) *CreateEmbed {
	e.fields["footer"] = map[string]any{"text": text}
	return e
}

// MarshalJSON encodes the accumulated fields as a JSON object.
func (e *CreateEmbed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields)
}
