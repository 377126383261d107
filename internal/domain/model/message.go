package model

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Message is the top-level payload accepted by an incoming webhook. Build one
// with NewMessage; the zero value has no text and fails Validate.
//
// A Message is not safe for concurrent use.
type Message struct {
	text        string
	username    string
	channel     string
	iconURL     string
	attachments []*Attachment
}

// NewMessage returns a message with the given text.
func NewMessage(text string) (*Message, error) {
	m := new(Message)
	if err := m.SetText(text); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message) Text() string     { return m.text }
func (m *Message) Username() string { return m.username }
func (m *Message) Channel() string  { return m.channel }
func (m *Message) IconURL() string  { return m.iconURL }

// Attachments returns the attachments in insertion order. The slice is a
// copy; the attachments themselves are owned by m.
func (m *Message) Attachments() []*Attachment {
	out := make([]*Attachment, len(m.attachments))
	copy(out, m.attachments)
	return out
}

// SetText sets the message body. It fails when the trimmed text is empty.
func (m *Message) SetText(text string) error {
	v, err := RequiredText(text, "text")
	if err != nil {
		return err
	}
	m.text = v
	return nil
}

// SetUsername overrides the display name of the posting user.
func (m *Message) SetUsername(username string) *Message {
	m.username = Text(username)
	return m
}

// SetChannel overrides the webhook's default channel.
func (m *Message) SetChannel(channel string) *Message {
	m.channel = Text(channel)
	return m
}

// SetIconURL overrides the profile picture shown next to the post.
func (m *Message) SetIconURL(url string) error {
	v, err := AbsoluteHTTPURL(url, "icon_url")
	if err != nil {
		return err
	}
	m.iconURL = v
	return nil
}

// AddAttachment appends a. An *Attachment is stored as is and from then on
// belongs to m; other implementations are copied into a new *Attachment.
func (m *Message) AddAttachment(a AttachmentPayload) error {
	att, err := ownAttachment(a)
	if err != nil {
		return err
	}
	m.attachments = append(m.attachments, att)
	return nil
}

// AddAttachmentFunc appends a new attachment configured by build.
func (m *Message) AddAttachmentFunc(build func(*Attachment)) error {
	if build == nil {
		return &TypeError{Field: "attachment", Got: build}
	}
	a := new(Attachment)
	build(a)
	m.attachments = append(m.attachments, a)
	return nil
}

// SetAttachments replaces every attachment with items, in order. On error
// the existing attachments are left untouched.
func (m *Message) SetAttachments(items ...AttachmentPayload) error {
	next := make([]*Attachment, 0, len(items))
	for i, item := range items {
		att, err := ownAttachment(item)
		if err != nil {
			return fmt.Errorf("attachment %d: %w", i, err)
		}
		next = append(next, att)
	}
	m.attachments = next
	return nil
}

func ownAttachment(a AttachmentPayload) (*Attachment, error) {
	if isNil(a) {
		return nil, &TypeError{Field: "attachment", Got: a}
	}
	if att, ok := a.(*Attachment); ok {
		return att, nil
	}
	att, err := AttachmentFromMap(a.ToMap())
	if err != nil {
		return nil, fmt.Errorf("copy %T: %w", a, err)
	}
	return att, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Validate reports whether m and all of its attachments can be sent.
func (m *Message) Validate() error {
	if _, err := RequiredText(m.text, "text"); err != nil {
		return err
	}
	for i, a := range m.attachments {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("attachment %d: %w", i, err)
		}
	}
	return nil
}

// ToMap returns every property, empty or not. Attachments are converted to
// maps, so the result shares no state with m.
func (m *Message) ToMap() Map {
	return m.toMap((*Attachment).ToMap)
}

// ToFilteredMap returns ToMap without empty values; each attachment is
// filtered on its own.
func (m *Message) ToFilteredMap() Map {
	return Filter(m.toMap((*Attachment).ToFilteredMap))
}

func (m *Message) toMap(convert func(*Attachment) Map) Map {
	attachments := make([]Map, 0, len(m.attachments))
	for _, a := range m.attachments {
		attachments = append(attachments, convert(a))
	}

	return Map{
		{Key: "text", Value: m.text},
		{Key: "username", Value: m.username},
		{Key: "channel", Value: m.channel},
		{Key: "icon_url", Value: m.iconURL},
		{Key: "attachments", Value: attachments},
	}
}

// MarshalJSON encodes the filtered representation.
func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToFilteredMap())
}

// Equal reports whether m and o hold the same values, attachments included.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.text != o.text || m.username != o.username || m.channel != o.channel || m.iconURL != o.iconURL {
		return false
	}
	if len(m.attachments) != len(o.attachments) {
		return false
	}
	for i := range m.attachments {
		if !m.attachments[i].Equal(o.attachments[i]) {
			return false
		}
	}
	return true
}
