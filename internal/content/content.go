// Package content holds the static resume data rendered by every section of the page.
//
// The registry is decoded once from an embedded YAML document and handed out as
// deep copies, so no caller can change what another caller sees.
package content

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var rawRegistry []byte

// Fact is a labelled value shown in the hero stats and the about snapshot.
type Fact struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

type Office struct {
	Address string `yaml:"address" json:"address"`
	Short   string `yaml:"short" json:"short"`
}

// Profile describes the person the site is about.
type Profile struct {
	Name            string   `yaml:"name" json:"name"`
	Role            string   `yaml:"role" json:"role"`
	Headline        string   `yaml:"headline" json:"headline"`
	Tagline         string   `yaml:"tagline" json:"tagline"`
	Title           string   `yaml:"title" json:"title"`
	Zodiac          string   `yaml:"zodiac" json:"zodiac"`
	Email           string   `yaml:"email" json:"email"`
	Portrait        string   `yaml:"portrait" json:"portrait"`
	Quote           string   `yaml:"quote" json:"quote"`
	Summary         string   `yaml:"summary" json:"summary"`
	Bio             []string `yaml:"bio" json:"bio"`
	Office          Office   `yaml:"office" json:"office"`
	Age             int      `yaml:"age" json:"age"`
	Height          string   `yaml:"height" json:"height"`
	Birthday        string   `yaml:"birthday" json:"birthday"`
	ExperienceYears int      `yaml:"experience_years" json:"experience_years"`
	Company         string   `yaml:"company" json:"company"`
}

// Facts returns the snapshot facts in display order.
func (p Profile) Facts() []Fact {
	return []Fact{
		{Label: "Age", Value: strconv.Itoa(p.Age)},
		{Label: "Height", Value: p.Height},
		{Label: "Birthday", Value: p.Birthday},
		{Label: "Zodiac", Value: p.Zodiac},
		{Label: "Experience", Value: fmt.Sprintf("%d+ years", p.ExperienceYears)},
		{Label: "Current Role", Value: p.Role},
		{Label: "Company", Value: p.Company},
	}
}

// SectionHeader is the eyebrow/heading/intro block at the top of a section.
type SectionHeader struct {
	Eyebrow string `yaml:"eyebrow" json:"eyebrow"`
	Heading string `yaml:"heading" json:"heading"`
	Intro   string `yaml:"intro" json:"intro,omitempty"`
}

type Strength struct {
	Title       string `yaml:"title" json:"title"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

type Experience struct {
	Title      string   `yaml:"title" json:"title"`
	Company    string   `yaml:"company" json:"company"`
	Focus      string   `yaml:"focus" json:"focus"`
	Period     string   `yaml:"period" json:"period"`
	Location   string   `yaml:"location" json:"location"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

type Achievement struct {
	Description string `yaml:"description" json:"description"`
}

type Volunteering struct {
	Title       string `yaml:"title" json:"title"`
	Location    string `yaml:"location" json:"location"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

type Education struct {
	Period      string `yaml:"period" json:"period"`
	Title       string `yaml:"title" json:"title"`
	Institution string `yaml:"institution" json:"institution"`
	Description string `yaml:"description" json:"description"`
}

// Registry is the complete content of the page.
type Registry struct {
	Profile      Profile                  `yaml:"profile" json:"profile"`
	Stats        []Fact                   `yaml:"stats" json:"stats"`
	Sections     map[string]SectionHeader `yaml:"sections" json:"sections"`
	Strengths    []Strength               `yaml:"strengths" json:"strengths"`
	Experience   []Experience             `yaml:"experience" json:"experience"`
	Achievements []Achievement            `yaml:"achievements" json:"achievements"`
	Volunteering []Volunteering           `yaml:"volunteering" json:"volunteering"`
	Education    []Education              `yaml:"education" json:"education"`
}

// Header returns the header for the named section, or the zero header.
func (r *Registry) Header(section string) SectionHeader {
	return r.Sections[section]
}

var (
	loadOnce sync.Once
	loaded   *Registry
	loadErr  error
)

// Load returns a private copy of the registry. The embedded document is decoded
// only on the first call.
func Load() (*Registry, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(rawRegistry)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return loaded.clone(), nil
}

// MustLoad is Load for callers that cannot run without content.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

func decode(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode content registry: %w", err)
	}
	if r.Profile.Name == "" {
		return nil, fmt.Errorf("decode content registry: profile name is empty")
	}
	if r.Profile.Email == "" {
		return nil, fmt.Errorf("decode content registry: profile email is empty")
	}
	return &r, nil
}

func (r *Registry) clone() *Registry {
	c := *r
	c.Profile.Bio = append([]string(nil), r.Profile.Bio...)
	c.Stats = append([]Fact(nil), r.Stats...)
	c.Sections = make(map[string]SectionHeader, len(r.Sections))
	for k, v := range r.Sections {
		c.Sections[k] = v
	}
	c.Strengths = append([]Strength(nil), r.Strengths...)
	c.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Highlights = append([]string(nil), e.Highlights...)
		c.Experience[i] = e
	}
	c.Achievements = append([]Achievement(nil), r.Achievements...)
	c.Volunteering = append([]Volunteering(nil), r.Volunteering...)
	c.Education = append([]Education(nil), r.Education...)
	return &c
}
