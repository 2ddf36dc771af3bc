// Package builder assembles the JSON documents sent to the REST API.
// Builders are thin key-value maps: model values are stored as-is and
// serialized through their own MarshalJSON, never re-derived here.
package builder

import (
	json "github.com/goccy/go-json"
)

// messageFlagSuppressEmbeds is the SUPPRESS_EMBEDS message flag. It is
// the only value the edit-message endpoint currently accepts in "flags".
const messageFlagSuppressEmbeds = 1 << 2

// EditMessage specifies the fields to edit in an existing message.
// Fields that are never set are omitted from the document, leaving them
// untouched on the server.
type EditMessage struct {
	fields map[string]any
}

// NewEditMessage returns an empty edit document.
func NewEditMessage() *EditMessage {
	return &EditMessage{fields: make(map[string]any)}
}

// Content sets the content of the message. Contents must be under 2000
// unicode code points.
func (m *EditMessage) Content(content string) *EditMessage {
	m.fields["content"] = content
	return m
}

// AddEmbed appends an embed to the message, keeping any embeds already
// added.
func (m *EditMessage) AddEmbed(embed *CreateEmbed) *EditMessage {
	embeds, _ := m.fields["embeds"].([]any)
	m.fields["embeds"] = append(embeds, embed.fields)
	return m
}

// Embed replaces all embeds on the message with the provided one. Use
// AddEmbed to add additional embeds.
func (m *EditMessage) Embed(embed *CreateEmbed) *EditMessage {
	m.fields["embeds"] = []any{embed.fields}
	return m
}

// SetEmbeds appends multiple embeds to the message.
func (m *EditMessage) SetEmbeds(embeds ...*CreateEmbed) *EditMessage {
	for _, embed := range embeds {
		m.AddEmbed(embed)
	}
	return m
}

// SuppressEmbeds hides all embeds on the message, including those
// generated by the server. Passing false clears the flag field entirely.
func (m *EditMessage) SuppressEmbeds(suppress bool) *EditMessage {
	if suppress {
		m.fields["flags"] = messageFlagSuppressEmbeds
	} else {
		delete(m.fields, "flags")
	}
	return m
}

// MarshalJSON encodes the accumulated fields as a JSON object.
func (m *EditMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}
