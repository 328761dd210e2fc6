package booking

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrConcertNotFound = errors.New("concert not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Concert struct {
	ID           int    `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Date         string `yaml:"date" json:"date"`
	Availability string `yaml:"availability" json:"availability,omitempty"`
	EventName    string `yaml:"event_name" json:"eventName,omitempty"`
	Venue        string `yaml:"venue" json:"venue"`
	City         string `yaml:"city" json:"city"`
	Image        string `yaml:"image" json:"image,omitempty"`
	PriceCents   int64  `yaml:"price_cents" json:"priceCents"`
}

func (c Concert) Location() string {
	return c.City + " • " + c.Venue
}

type Section struct {
	Number     string `yaml:"number" json:"number"`
	PriceCents int64  `yaml:"price_cents" json:"priceCents"`
}

// Catalog is the static concert and section list. Every concert shares the same section layout.
type Catalog struct {
	Concerts []Concert `yaml:"concerts"`
	Sections []Section `yaml:"sections"`
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a YAML catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[int]struct{}, len(c.Concerts))
	for _, concert := range c.Concerts {
		if _, dup := seen[concert.ID]; dup {
			return fmt.Errorf("%w: duplicate concert id %d", ErrInvalidCatalog, concert.ID)
		}
		seen[concert.ID] = struct{}{}
		if concert.PriceCents < 0 {
			return fmt.Errorf("%w: concert %d has a negative price", ErrInvalidCatalog, concert.ID)
		}
	}
	numbers := make(map[string]struct{}, len(c.Sections))
	for _, s := range c.Sections {
		if s.Number == "" {
			return fmt.Errorf("%w: section without number", ErrInvalidCatalog)
		}
		if _, dup := numbers[s.Number]; dup {
			return fmt.Errorf("%w: duplicate section %s", ErrInvalidCatalog, s.Number)
		}
		numbers[s.Number] = struct{}{}
		if s.PriceCents <= 0 {
			return fmt.Errorf("%w: section %s needs a positive price", ErrInvalidCatalog, s.Number)
		}
	}
	return nil
}

func (c *Catalog) Concert(id int) (Concert, error) {
	for _, concert := range c.Concerts {
		if concert.ID == id {
			return concert, nil
		}
	}
	return Concert{}, ErrConcertNotFound
}

func (c *Catalog) Section(number string) (Section, error) {
	for _, s := range c.Sections {
		if s.Number == number {
			return s, nil
		}
	}
	return Section{}, ErrSectionNotFound
}
