package portfolio

import (
	"context"
	"errors"
	"strings"
	"time"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentContract EmploymentType = "CONTRACT"
)

// ProfilePathPrefix is the routing prefix every profile slug lives under.
const ProfilePathPrefix = "/profile/"

var (
	ErrInvalidEmploymentType = errors.New("employment type must be FULL_TIME or CONTRACT")
	ErrEmptyEmployerName     = errors.New("employer name must not be empty")
)

type Video struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type Employer struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	JobTitle       string         `json:"jobTitle"`
	Duration       string         `json:"duration"`
	EmploymentType EmploymentType `json:"employmentType"`
	Contribution   string         `json:"contribution"`
	Videos         []Video        `json:"videos"`
}

func (e *Employer) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyEmployerName
	}
	switch e.EmploymentType {
	case EmploymentFullTime, EmploymentContract:
	default:
		return ErrInvalidEmploymentType
	}
	return nil
}

type BasicInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Summary   string `json:"summary"`
}

type Portfolio struct {
	ID           string     `json:"id"`
	PortfolioURL string     `json:"portfolioUrl"`
	ProfileURL   string     `json:"profileUrl"`
	BasicInfo    BasicInfo  `json:"basicInfo"`
	Employers    []Employer `json:"employers"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Slug derives the profile path for a first name, e.g. "Sonu" -> "/profile/sonu".
func Slug(firstName string) string {
	return ProfilePathPrefix + strings.ToLower(strings.TrimSpace(firstName))
}

// EmployerIndexByID returns the position of the employer with the given id, or -1.
func (p *Portfolio) EmployerIndexByID(id string) int {
	for i := range p.Employers {
		if p.Employers[i].ID == id {
			return i
		}
	}
	return -1
}

// EmployerIndexByName matches by exact, case-sensitive name, or -1.
func (p *Portfolio) EmployerIndexByName(name string) int {
	for i := range p.Employers {
		if p.Employers[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so stores and repositories can hand out
// records without sharing employer or video slices with callers.
func (p Portfolio) Clone() Portfolio {
	out := p
	if p.Employers != nil {
		out.Employers = make([]Employer, len(p.Employers))
		for i, e := range p.Employers {
			out.Employers[i] = e
			if e.Videos != nil {
				out.Employers[i].Videos = append([]Video(nil), e.Videos...)
			}
		}
	}
	return out
}

func CloneAll(portfolios []Portfolio) []Portfolio {
	out := make([]Portfolio, len(portfolios))
	for i := range portfolios {
		out[i] = portfolios[i].Clone()
	}
	return out
}

// Store persists the full portfolio collection as a single document.
// LoadAll reports an empty collection, never an error, when the medium
// holds nothing yet. SaveAll replaces the whole document.
type Store interface {
	LoadAll(ctx context.Context) ([]Portfolio, error)
	SaveAll(ctx context.Context, portfolios []Portfolio) error
}

// Repository serializes read-modify-write cycles over a Store. Update runs
// the mutate callback against a copy of the matched record and persists the
// result in the same critical section.
type Repository interface {
	Insert(ctx context.Context, p *Portfolio) error
	FindBySlug(ctx context.Context, slug string) (*Portfolio, error)
	Update(ctx context.Context, slug string, mutate func(*Portfolio) error) (*Portfolio, error)
	List(ctx context.Context) ([]Portfolio, error)
}
