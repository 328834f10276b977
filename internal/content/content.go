// Package content loads the narrative text shown around the questionnaire:
// the introduction, platform benefit cards, testimonials and footer.
package content

import (
	"crypto/sha256"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/content.yaml
var builtinContent []byte

// BuiltinSource names the embedded content document.
const BuiltinSource = "builtin:content.yaml"

type Intro struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Benefit struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Testimonial is a parent quote with a star rating from 1 to 5.
type Testimonial struct {
	Name   string `yaml:"name" json:"name"`
	Text   string `yaml:"text" json:"text"`
	Rating int    `yaml:"rating" json:"rating"`
}

// Stars renders the rating as a row of star characters.
func (t Testimonial) Stars() string {
	return strings.Repeat("⭐", t.Rating)
}

// Content is the full narrative document.
type Content struct {
	Source           string        `yaml:"-" json:"-"`
	Hash             string        `yaml:"-" json:"hash"`
	Intro            Intro         `yaml:"intro" json:"intro"`
	PlatformBenefits []Benefit     `yaml:"platform_benefits" json:"platform_benefits"`
	Testimonials     []Testimonial `yaml:"testimonials" json:"testimonials"`
	Footer           string        `yaml:"footer" json:"footer"`
}

// Load reads a content document from path.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content.Load: %w", err)
	}
	c, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("content.Load: %w", err)
	}
	return c, nil
}

// LoadBuiltin returns the embedded content document.
func LoadBuiltin() (*Content, error) {
	return Parse(builtinContent, BuiltinSource)
}

// Parse decodes and checks a YAML or JSON content document.
func Parse(data []byte, source string) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	h := sha256.Sum256(data)
	c.Source = source
	c.Hash = fmt.Sprintf("sha256:%x", h)
	return &c, nil
}

func (c *Content) validate() error {
	if strings.TrimSpace(c.Intro.Title) == "" {
		return fmt.Errorf("intro.title is required")
	}
	for i, b := range c.PlatformBenefits {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("platform_benefits[%d]: title is required", i)
		}
	}
	for i, t := range c.Testimonials {
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("testimonials[%d]: text is required", i)
		}
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("testimonials[%d]: rating %d out of range 1..5", i, t.Rating)
		}
	}
	return nil
}
