// Package information resolves a requested name into an information record.
package information

import (
	"sync"

	"github.com/sebasr/information-service/internal/models"
)

const (
	// DefaultName is used when the request carries no name
	DefaultName = "Miku"

	profileName   = "Hatsune Miku"
	profileSalary = 45000
)

// Provider returns the information record for a requested name
type Provider interface {
	Lookup(name string) models.Information
}

// Matches reports whether name selects the built-in profile. The match is exact and case-sensitive.
func Matches(name string) bool {
	return name == DefaultName
}

// Resolve builds a fresh record for name
func Resolve(name string) models.Information {
	if Matches(name) {
		return models.Information{
			Name:   profileName,
			Salary: profileSalary,
			Contact: models.Contact{
				"Email":        "hatsune.miku@ariman.com",
				"Phone Number": "9090950",
			},
		}
	}

	return models.Information{Name: name}
}

// StatelessProvider resolves every lookup into a new record
type StatelessProvider struct{}

// NewStatelessProvider creates the default provider
func NewStatelessProvider() *StatelessProvider {
	return &StatelessProvider{}
}

// Lookup implements Provider.Lookup
func (p *StatelessProvider) Lookup(name string) models.Information {
	return Resolve(name)
}

// SharedRecordProvider keeps a single process-wide record and rewrites it on every lookup.
// Writes and the copy handed back to the caller happen under one lock, so a caller never
// observes fields from two different lookups.
type SharedRecordProvider struct {
	mu     sync.Mutex
	record models.Information
}

// NewSharedRecordProvider creates a provider whose record starts with zero values
func NewSharedRecordProvider() *SharedRecordProvider {
	return &SharedRecordProvider{}
}

// Lookup implements Provider.Lookup
func (p *SharedRecordProvider) Lookup(name string) models.Information {
	resolved := Resolve(name)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.record.Contact = resolved.Contact
	p.record.Name = resolved.Name
	p.record.Salary = resolved.Salary

	return p.record.Clone()
}

// Current returns a copy of the record as left by the last lookup
func (p *SharedRecordProvider) Current() models.Information {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.record.Clone()
}

// NewProvider picks the provider for the configured mode
func NewProvider(legacySharedRecord bool) Provider {
	if legacySharedRecord {
		return NewSharedRecordProvider()
	}
	return NewStatelessProvider()
}
