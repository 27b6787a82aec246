package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type Product struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Subtitle string `yaml:"subtitle"`
}

type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type ListBlock struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Home struct {
	Intro    string   `yaml:"intro"`
	Cards    []Card   `yaml:"cards"`
	Stats    []Stat   `yaml:"stats"`
	Audience []string `yaml:"audience"`
}

type Features struct {
	Columns  []ListBlock `yaml:"columns"`
	Detailed []Card      `yaml:"detailed"`
}

type ComparisonRow struct {
	Feature string   `yaml:"feature"`
	Marks   []string `yaml:"marks"`
}

type Comparison struct {
	Products   []string        `yaml:"products"`
	Rows       []ComparisonRow `yaml:"rows"`
	Advantages []ListBlock     `yaml:"advantages"`
}

type Screenshots struct {
	Note         string   `yaml:"note"`
	Mockup       string   `yaml:"mockup"`
	QuickAnswers []string `yaml:"quick_answers"`
	Highlights   []Card   `yaml:"highlights"`
}

type Specs struct {
	Requirements []ListBlock `yaml:"requirements"`
	Model        []ListBlock `yaml:"model"`
	Architecture []Card      `yaml:"architecture"`
}

type Package struct {
	Title    string `yaml:"title"`
	Size     string `yaml:"size"`
	Includes string `yaml:"includes"`
	BestFor  string `yaml:"best_for"`
}

type Download struct {
	Headline string      `yaml:"headline"`
	Pitch    string      `yaml:"pitch"`
	Packages []Package   `yaml:"packages"`
	Steps    []string    `yaml:"steps"`
	Benefits []ListBlock `yaml:"benefits"`
	Notes    []Card      `yaml:"notes"`
}

type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQCategory struct {
	Name  string `yaml:"name"`
	Items []QA   `yaml:"items"`
}

type Privacy struct {
	Updated  string `yaml:"updated"`
	Sections []Card `yaml:"sections"`
}

type About struct {
	Name         string   `yaml:"name"`
	Role         string   `yaml:"role"`
	Bio          string   `yaml:"bio"`
	Achievements []string `yaml:"achievements"`
	Story        []Card   `yaml:"story"`
	Philosophy   []Card   `yaml:"philosophy"`
	Roadmap      []Card   `yaml:"roadmap"`
	Support      []string `yaml:"support"`
}

type Footer struct {
	Line      string `yaml:"line"`
	Copyright string `yaml:"copyright"`
	Links     []Link `yaml:"links"`
}

// Site is the whole marketing copy, one field per section.
type Site struct {
	Product     Product       `yaml:"product"`
	Home        Home          `yaml:"home"`
	Features    Features      `yaml:"features"`
	Comparison  Comparison    `yaml:"comparison"`
	Screenshots Screenshots   `yaml:"screenshots"`
	Specs       Specs         `yaml:"specs"`
	Download    Download      `yaml:"download"`
	FAQ         []FAQCategory `yaml:"faq"`
	Privacy     Privacy       `yaml:"privacy"`
	About       About         `yaml:"about"`
	Footer      Footer        `yaml:"footer"`
}

func Load() (*Site, error) {
	return Parse(siteYAML)
}

func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) Validate() error {
	if s.Product.Name == "" {
		return fmt.Errorf("site content: product name is required")
	}
	for _, row := range s.Comparison.Rows {
		if len(row.Marks) != len(s.Comparison.Products) {
			return fmt.Errorf("site content: comparison row %q has %d marks, want %d",
				row.Feature, len(row.Marks), len(s.Comparison.Products))
		}
	}
	return nil
}
