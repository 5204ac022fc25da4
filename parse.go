package memoir

import (
	"fmt"
	"strings"

	"github.com/shauncritzer/memoir/internal/yamlutil"
)

// documentSpec is the YAML form of a Document.
type documentSpec struct {
	Name   string       `yaml:"name"`
	Header string       `yaml:"header"`
	Theme  string       `yaml:"theme"`
	Page   PageSettings `yaml:"page"`
	Footer string       `yaml:"footer"`
	Blocks []blockSpec  `yaml:"blocks"`
}

// blockSpec is the YAML form of a Block. Exactly one kind key must be set;
// label may accompany body.
type blockSpec struct {
	Title      string      `yaml:"title"`
	Subtitle   string      `yaml:"subtitle"`
	Section    string      `yaml:"section"`
	Subsection string      `yaml:"subsection"`
	Body       *string     `yaml:"body"`
	Label      string      `yaml:"label"`
	Prompt     string      `yaml:"prompt"`
	Bullet     string      `yaml:"bullet"`
	Writing    int         `yaml:"writing"`
	Space      float64     `yaml:"space"`
	Page       bool        `yaml:"page"`
	Table      *Table      `yaml:"table"`
	Banner     *bannerSpec `yaml:"banner"`
}

type bannerSpec struct {
	Text   string  `yaml:"text"`
	Height float64 `yaml:"height"`
}

// ParseDocument decodes a YAML document definition and validates it.
// Unknown keys are rejected.
func ParseDocument(data []byte) (*Document, error) {
	var spec documentSpec
	if err := yamlutil.UnmarshalStrict(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	doc := &Document{
		Name:        spec.Name,
		Header:      spec.Header,
		Theme:       spec.Theme,
		Page:        spec.Page,
		FooterAlign: spec.Footer,
		Blocks:      make([]Block, 0, len(spec.Blocks)),
	}
	for i, bs := range spec.Blocks {
		b, err := bs.block()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrDocumentParse, i, err)
		}
		doc.Blocks = append(doc.Blocks, b)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s blockSpec) block() (Block, error) {
	var found []Block
	add := func(set bool, b Block) {
		if set {
			found = append(found, b)
		}
	}

	add(s.Title != "", Title(s.Title))
	add(s.Subtitle != "", Subtitle(s.Subtitle))
	add(s.Section != "", Section(s.Section))
	add(s.Subsection != "", Subsection(s.Subsection))
	if s.Body != nil || s.Label != "" {
		var text string
		if s.Body != nil {
			text = *s.Body
		}
		found = append(found, LabeledBody(s.Label, text))
	}
	add(s.Prompt != "", Prompt(s.Prompt))
	add(s.Bullet != "", Bullet(s.Bullet))
	add(s.Writing != 0, WritingSpace(s.Writing))
	add(s.Space != 0, Spacer(s.Space))
	add(s.Page, PageBreak())
	add(s.Table != nil, TableBlock(s.Table))
	if s.Banner != nil {
		found = append(found, Banner(s.Banner.Text, s.Banner.Height))
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Block{}, fmt.Errorf("%w: no kind set", ErrInvalidBlock)
	default:
		kinds := make([]string, len(found))
		for i, b := range found {
			kinds[i] = b.Kind.String()
		}
		return Block{}, fmt.Errorf("%w: several kinds set (%s)", ErrInvalidBlock, strings.Join(kinds, ", "))
	}
}
