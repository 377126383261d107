package model

import (
	"encoding/json"
	"slices"
)

// Preset attachment border colors.
const (
	ColorSuccess = "#22BC66"
	ColorFailure = "#DC4D2F"
	ColorInfo    = "#3869D4"
)

// Field is a single cell of the table rendered inside an attachment.
type Field struct {
	Title string
	Value string
	// Short marks the value as narrow enough to sit beside other fields.
	Short bool
}

// AttachmentPayload is the read side of an attachment. Message accepts any
// implementation and keeps its own copy.
type AttachmentPayload interface {
	Fallback() string
	Color() string
	Pretext() string
	Text() string
	AuthorName() string
	AuthorLink() string
	AuthorIcon() string
	Title() string
	TitleLink() string
	Fields() []Field
	ImageURL() string
	ThumbURL() string
	ToMap() Map
	ToFilteredMap() Map
}

var _ AttachmentPayload = (*Attachment)(nil)

// Attachment is a rich card shown under a message. The zero value is an
// empty attachment; it must be given a fallback before it is sent.
//
// An Attachment is not safe for concurrent use.
type Attachment struct {
	fallback   string
	color      string
	pretext    string
	text       string
	authorName string
	authorLink string
	authorIcon string
	title      string
	titleLink  string
	fields     []Field
	imageURL   string
	thumbURL   string
}

// NewAttachment returns an attachment with the given fallback text.
func NewAttachment(fallback string) (*Attachment, error) {
	a := new(Attachment)
	if err := a.SetFallback(fallback); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Attachment) Fallback() string   { return a.fallback }
func (a *Attachment) Color() string      { return a.color }
func (a *Attachment) Pretext() string    { return a.pretext }
func (a *Attachment) Text() string       { return a.text }
func (a *Attachment) AuthorName() string { return a.authorName }
func (a *Attachment) AuthorLink() string { return a.authorLink }
func (a *Attachment) AuthorIcon() string { return a.authorIcon }
func (a *Attachment) Title() string      { return a.title }
func (a *Attachment) TitleLink() string  { return a.titleLink }
func (a *Attachment) ImageURL() string   { return a.imageURL }
func (a *Attachment) ThumbURL() string   { return a.thumbURL }

// Fields returns a copy of the field list.
func (a *Attachment) Fields() []Field { return slices.Clone(a.fields) }

// SetFallback sets the plain-text summary used by clients that cannot render
// attachments. It fails when the trimmed text is empty.
func (a *Attachment) SetFallback(fallback string) error {
	v, err := RequiredText(fallback, "fallback")
	if err != nil {
		return err
	}
	a.fallback = v
	return nil
}

// SetColor sets the left border color. The value is not checked beyond
// trimming.
func (a *Attachment) SetColor(color string) *Attachment {
	a.color = Text(color)
	return a
}

// Success sets a green border.
func (a *Attachment) Success() *Attachment { return a.SetColor(ColorSuccess) }

// Failure sets a red border.
func (a *Attachment) Failure() *Attachment { return a.SetColor(ColorFailure) }

// Info sets a blue border.
func (a *Attachment) Info() *Attachment { return a.SetColor(ColorInfo) }

func (a *Attachment) SetPretext(pretext string) *Attachment {
	a.pretext = Text(pretext)
	return a
}

func (a *Attachment) SetText(text string) *Attachment {
	a.text = Text(text)
	return a
}

// SetAuthor sets the author block. Link and icon only mean something next to
// a name, so an empty name clears both regardless of what was passed.
// Nothing is changed when link or icon is not a valid http(s) URL.
func (a *Attachment) SetAuthor(name, link, icon string) error {
	name = Text(name)
	if name == "" {
		a.authorName, a.authorLink, a.authorIcon = "", "", ""
		return nil
	}

	l, err := AbsoluteHTTPURL(link, "author_link")
	if err != nil {
		return err
	}
	i, err := AbsoluteHTTPURL(icon, "author_icon")
	if err != nil {
		return err
	}

	a.authorName, a.authorLink, a.authorIcon = name, l, i
	return nil
}

// SetTitle sets the title and its optional link. The link is cleared when
// either the title or the link is empty.
func (a *Attachment) SetTitle(title, link string) error {
	title = Text(title)
	if title == "" || Text(link) == "" {
		a.title, a.titleLink = title, ""
		return nil
	}

	l, err := AbsoluteHTTPURL(link, "title_link")
	if err != nil {
		return err
	}

	a.title, a.titleLink = title, l
	return nil
}

// AddField appends a field. Prior fields are kept and duplicates are allowed.
func (a *Attachment) AddField(title, value string, short bool) *Attachment {
	a.fields = append(a.fields, Field{
		Title: Text(title),
		Value: Text(value),
		Short: short,
	})
	return a
}

// SetFields replaces every field with the given ones, in order.
func (a *Attachment) SetFields(fields ...Field) *Attachment {
	a.fields = nil
	for _, f := range fields {
		a.AddField(f.Title, f.Value, f.Short)
	}
	return a
}

func (a *Attachment) SetImageURL(url string) error {
	v, err := AbsoluteHTTPURL(url, "image_url")
	if err != nil {
		return err
	}
	a.imageURL = v
	return nil
}

func (a *Attachment) SetThumbURL(url string) error {
	v, err := AbsoluteHTTPURL(url, "thumb_url")
	if err != nil {
		return err
	}
	a.thumbURL = v
	return nil
}

// Validate reports whether the attachment can be sent.
func (a *Attachment) Validate() error {
	_, err := RequiredText(a.fallback, "fallback")
	return err
}

// ToMap returns every property, empty or not, in wire order.
func (a *Attachment) ToMap() Map {
	fields := make([]Map, 0, len(a.fields))
	for _, f := range a.fields {
		fields = append(fields, Map{
			{Key: "title", Value: f.Title},
			{Key: "value", Value: f.Value},
			{Key: "short", Value: f.Short},
		})
	}

	return Map{
		{Key: "fallback", Value: a.fallback},
		{Key: "color", Value: a.color},
		{Key: "pretext", Value: a.pretext},
		{Key: "text", Value: a.text},
		{Key: "author_name", Value: a.authorName},
		{Key: "author_link", Value: a.authorLink},
		{Key: "author_icon", Value: a.authorIcon},
		{Key: "title", Value: a.title},
		{Key: "title_link", Value: a.titleLink},
		{Key: "fields", Value: fields},
		{Key: "image_url", Value: a.imageURL},
		{Key: "thumb_url", Value: a.thumbURL},
	}
}

// ToFilteredMap returns ToMap without empty values.
func (a *Attachment) ToFilteredMap() Map {
	return Filter(a.ToMap())
}

// MarshalJSON encodes the filtered representation.
func (a *Attachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToFilteredMap())
}

// Equal reports whether a and b hold the same values.
func (a *Attachment) Equal(b *Attachment) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.fallback == b.fallback &&
		a.color == b.color &&
		a.pretext == b.pretext &&
		a.text == b.text &&
		a.authorName == b.authorName &&
		a.authorLink == b.authorLink &&
		a.authorIcon == b.authorIcon &&
		a.title == b.title &&
		a.titleLink == b.titleLink &&
		slices.Equal(a.fields, b.fields) &&
		a.imageURL == b.imageURL &&
		a.thumbURL == b.thumbURL
}
