package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

type attachmentRecord struct {
	Fallback   string `mapstructure:"fallback"`
	Color      string `mapstructure:"color"`
	Pretext    string `mapstructure:"pretext"`
	Text       string `mapstructure:"text"`
	AuthorName string `mapstructure:"author_name"`
	AuthorLink string `mapstructure:"author_link"`
	AuthorIcon string `mapstructure:"author_icon"`
	Title      string `mapstructure:"title"`
	TitleLink  string `mapstructure:"title_link"`
	Fields     any    `mapstructure:"fields"`
	ImageURL   string `mapstructure:"image_url"`
	ThumbURL   string `mapstructure:"thumb_url"`
}

type fieldRecord struct {
	Title string `mapstructure:"title"`
	Value string `mapstructure:"value"`
	Short any    `mapstructure:"short"`
}

type messageRecord struct {
	Text        string `mapstructure:"text"`
	Username    string `mapstructure:"username"`
	Channel     string `mapstructure:"channel"`
	IconURL     string `mapstructure:"icon_url"`
	Attachments any    `mapstructure:"attachments"`
}

func decode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// AttachmentFromMap rebuilds an attachment from the shape produced by ToMap.
// Missing keys keep their zero value. Every value goes through the regular
// setters, so the same validation applies.
func AttachmentFromMap(m Map) (*Attachment, error) {
	return attachmentFromPlain(m.Plain())
}

func attachmentFromPlain(src map[string]any) (*Attachment, error) {
	var rec attachmentRecord
	if err := decode(src, &rec); err != nil {
		return nil, &TypeError{Field: "attachment", Got: src, Err: err}
	}

	a := new(Attachment)
	if Text(rec.Fallback) != "" {
		if err := a.SetFallback(rec.Fallback); err != nil {
			return nil, err
		}
	}
	a.SetColor(rec.Color).SetPretext(rec.Pretext).SetText(rec.Text)
	if err := a.SetAuthor(rec.AuthorName, rec.AuthorLink, rec.AuthorIcon); err != nil {
		return nil, err
	}
	if err := a.SetTitle(rec.Title, rec.TitleLink); err != nil {
		return nil, err
	}
	fields, err := decodeFields(rec.Fields)
	if err != nil {
		return nil, err
	}
	a.SetFields(fields...)
	if err := a.SetImageURL(rec.ImageURL); err != nil {
		return nil, err
	}
	if err := a.SetThumbURL(rec.ThumbURL); err != nil {
		return nil, err
	}
	return a, nil
}

// decodeFields accepts a list whose entries are Field values, mappings with
// title/value/short keys, or [title, value, short] triples. The short flag
// defaults to true when absent.
func decodeFields(raw any) ([]Field, error) {
	if raw == nil {
		return nil, nil
	}

	var items []any
	switch v := raw.(type) {
	case []Field:
		return v, nil
	case []any:
		items = v
	case []Map:
		for _, m := range v {
			items = append(items, m)
		}
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, &TypeError{Field: "fields", Got: raw}
	}

	fields := make([]Field, 0, len(items))
	for i, item := range items {
		f, err := decodeField(item)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func decodeField(item any) (Field, error) {
	var src map[string]any
	switch v := item.(type) {
	case Field:
		return v, nil
	case Map:
		src = v.Plain()
	case map[string]any:
		src = v
	case []any:
		if len(v) < 2 || len(v) > 3 {
			return Field{}, &TypeError{Field: "field", Got: item}
		}
		src = map[string]any{"title": v[0], "value": v[1]}
		if len(v) == 3 {
			src["short"] = v[2]
		}
	default:
		return Field{}, &TypeError{Field: "field", Got: item}
	}

	var rec fieldRecord
	if err := decode(src, &rec); err != nil {
		return Field{}, &TypeError{Field: "field", Got: item, Err: err}
	}
	short := true
	if rec.Short != nil {
		short = CoerceBool(rec.Short)
	}
	return Field{Title: rec.Title, Value: rec.Value, Short: short}, nil
}

// MessageFromMap rebuilds a message from the shape produced by ToMap.
// Attachment entries may be attachments or mappings; mappings are converted
// with AttachmentFromMap.
func MessageFromMap(m Map) (*Message, error) {
	src := make(map[string]any, len(m))
	var rawAttachments any
	for _, e := range m {
		if e.Key == "attachments" {
			rawAttachments = e.Value
			continue
		}
		src[e.Key] = plainValue(e.Value)
	}

	var rec messageRecord
	if err := decode(src, &rec); err != nil {
		return nil, &TypeError{Field: "message", Got: src, Err: err}
	}

	msg := new(Message)
	if Text(rec.Text) != "" {
		if err := msg.SetText(rec.Text); err != nil {
			return nil, err
		}
	}
	msg.SetUsername(rec.Username).SetChannel(rec.Channel)
	if err := msg.SetIconURL(rec.IconURL); err != nil {
		return nil, err
	}

	attachments, err := decodeAttachments(rawAttachments)
	if err != nil {
		return nil, err
	}
	if err := msg.SetAttachments(attachments...); err != nil {
		return nil, err
	}
	return msg, nil
}

func decodeAttachments(raw any) ([]AttachmentPayload, error) {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []*Attachment:
		out := make([]AttachmentPayload, len(v))
		for i, a := range v {
			out[i] = a
		}
		return out, nil
	case []AttachmentPayload:
		return v, nil
	case []Map:
		for _, m := range v {
			items = append(items, m)
		}
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	case []any:
		items = v
	default:
		return nil, &TypeError{Field: "attachments", Got: raw}
	}

	out := make([]AttachmentPayload, 0, len(items))
	for i, item := range items {
		var (
			a   *Attachment
			err error
		)
		switch v := item.(type) {
		case AttachmentPayload:
			out = append(out, v)
			continue
		case Map:
			a, err = AttachmentFromMap(v)
		case map[string]any:
			a, err = attachmentFromPlain(v)
		default:
			err = &TypeError{Field: "attachment", Got: item}
		}
		if err != nil {
			return nil, fmt.Errorf("attachment %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
