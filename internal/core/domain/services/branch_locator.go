package services

import (
	"errors"

	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
)

// ErrBranchNotFound is returned when no branch covers the requested point.
// This occurs when either no branches are provided or the point lies outside
// every branch's coverage radius.
var ErrBranchNotFound = errors.New("branch not found")

// BranchLocator is a domain service that decides whether a service address is
// serviceable and which branch should serve it. An address is serviceable
// when at least one branch's coverage circle contains it; among covering
// branches the nearest one wins.
type BranchLocator struct{}

// NewBranchLocator creates a new BranchLocator instance.
func NewBranchLocator() BranchLocator {
	return BranchLocator{}
}

// Locate returns the nearest branch covering the given point.
//
// Returns ErrBranchNotFound when no branch covers the point.
func (l BranchLocator) Locate(point kernel.GeoPoint, branches []*catalog.Branch) (*catalog.Branch, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	var best *catalog.Branch
	var bestDistance float64

	for _, branch := range branches {
		if err := branch.Validate(); err != nil {
			return nil, err
		}
		if !branch.Covers(point) {
			continue
		}

		distance := branch.Point().DistanceKm(point)
		if best == nil || distance < bestDistance {
			best = branch
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrBranchNotFound
	}
	return best, nil
}

// IsServiceable reports whether any branch covers the given point.
func (l BranchLocator) IsServiceable(point kernel.GeoPoint, branches []*catalog.Branch) bool {
	_, err := l.Locate(point, branches)
	return err == nil
}
