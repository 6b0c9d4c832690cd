package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/order-calc/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	keyTaxPercentage = "tax_percentage"
	keyDescription   = "description"
)

var ErrProfileNotFound = errors.New("tax profile not found")

// ProfileRegistry resolves named tax rates from an INI file:
//
//	[uk]
//	tax_percentage = 20
//	description = UK standard VAT
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]domain.TaxProfile, error)
	GetProfile(ctx context.Context, name string) (domain.TaxProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads profiles from path. A missing file yields an empty registry.
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax profiles from %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.TaxProfile, error) {
	var profiles []domain.TaxProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := sectionToProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.TaxProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.TaxProfile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return sectionToProfile(section)
}

func sectionToProfile(section *ini.Section) (domain.TaxProfile, error) {
	if !section.HasKey(keyTaxPercentage) {
		return domain.TaxProfile{}, fmt.Errorf("profile %q: %s is required", section.Name(), keyTaxPercentage)
	}
	rate, err := section.Key(keyTaxPercentage).Float64()
	if err != nil {
		return domain.TaxProfile{}, fmt.Errorf("profile %q: invalid %s: %w", section.Name(), keyTaxPercentage, err)
	}

	return domain.TaxProfile{
		Name:          section.Name(),
		TaxPercentage: rate,
		Description:   section.Key(keyDescription).String(),
	}, nil
}
