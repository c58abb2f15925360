package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/prism-vault/prism/theme"
	"gopkg.in/yaml.v3"
)

const fence = "---"

// codec converts between file contents and property bags.
type codec interface {
	decode(data []byte) (theme.Bag, error)
	// encode renders props, keeping whatever part of previous the codec does not own.
	encode(props theme.Bag, previous []byte) ([]byte, error)
}

func codecFor(name string) (codec, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return frontmatter{}, true
	case ".json":
		return jsonCodec{}, true
	default:
		return nil, false
	}
}

// frontmatter stores the bag as a YAML block at the top of a markdown note.
type frontmatter struct{}

// split separates the YAML block from the note body. A note without a
// leading fence has an empty block.
func (frontmatter) split(data []byte) (header, body []byte) {
	text := bytes.TrimPrefix(data, []byte("\ufeff"))
	if !bytes.HasPrefix(text, []byte(fence)) {
		return nil, data
	}

	rest := text[len(fence):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, data
	}
	rest = rest[nl+1:]

	for offset := 0; offset <= len(rest); {
		end := bytes.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		if end >= 0 {
			line = rest[offset : offset+end]
		}

		if string(bytes.TrimRight(line, "\r ")) == fence {
			header = rest[:offset]
			if end < 0 {
				return header, nil
			}
			return header, rest[offset+end+1:]
		}

		if end < 0 {
			break
		}
		offset += end + 1
	}

	// unterminated block: treat the whole file as body
	return nil, data
}

func (f frontmatter) decode(data []byte) (theme.Bag, error) {
	header, _ := f.split(data)

	props := make(theme.Bag)
	if len(bytes.TrimSpace(header)) == 0 {
		return props, nil
	}

	if err := yaml.Unmarshal(header, &props); err != nil {
		return nil, fmt.Errorf("%w: frontmatter: %v", ErrMalformed, err)
	}
	return normalize(props), nil
}

func (f frontmatter) encode(props theme.Bag, previous []byte) ([]byte, error) {
	_, body := f.split(previous)

	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	if len(props) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(props)); err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
	}
	buf.WriteString(fence + "\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// jsonCodec stores the bag as a single JSON object.
type jsonCodec struct{}

func (jsonCodec) decode(data []byte) (theme.Bag, error) {
	props := make(theme.Bag)
	if len(bytes.TrimSpace(data)) == 0 {
		return props, nil
	}

	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return props, nil
}

func (jsonCodec) encode(props theme.Bag, _ []byte) ([]byte, error) {
	if props == nil {
		props = theme.Bag{}
	}
	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// normalize rewrites nested YAML mappings with non-string keys so that
// every nested object is a map[string]any.
func normalize(props theme.Bag) theme.Bag {
	for k, v := range props {
		props[k] = normalizeValue(v)
	}
	return props
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(normalize(t))
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalizeValue(item)
		}
		return t
	default:
		return v
	}
}
