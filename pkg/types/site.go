// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// SiteLocal installs to the local site only.
	SiteLocal Site = "local"
	// SiteAll installs to every site.
	SiteAll Site = "all"
)

const (
	NamedSiteHyderabad NamedSite = "hyderabad"
	NamedSitePlaya     NamedSite = "playa"
	NamedSitePortland  NamedSite = "portland"
	NamedSiteMontreal  NamedSite = "montreal"
	NamedSiteVancouver NamedSite = "vancouver"
)

// ErrInvalidSite is the sentinel error wrapped by InvalidSiteError.
var ErrInvalidSite = errors.New("invalid site")

type (
	// Site is an install destination: local, all, or a named facility location.
	Site string

	// NamedSite is one of the physical facility locations.
	NamedSite string

	// InvalidSiteError is returned when a raw string is not a known site.
	InvalidSiteError struct {
		Value string
	}
)

var namedSiteAliases = map[string]NamedSite{
	"hyderabad":   NamedSiteHyderabad,
	"playa":       NamedSitePlaya,
	"playa vista": NamedSitePlaya,
	"playavista":  NamedSitePlaya,
	"portland":    NamedSitePortland,
	"montreal":    NamedSiteMontreal,
	"vancouver":   NamedSiteVancouver,
}

var namedSiteDisplay = map[NamedSite]string{
	NamedSiteHyderabad: "Hyderabad",
	NamedSitePlaya:     "Playa Vista",
	NamedSitePortland:  "Portland",
	NamedSiteMontreal:  "Montreal",
	NamedSiteVancouver: "Vancouver",
}

// ParseNamedSite converts a raw string into a NamedSite, ignoring case.
// "playa vista" and "playavista" are accepted for NamedSitePlaya.
func ParseNamedSite(raw string) (NamedSite, error) {
	if ns, ok := namedSiteAliases[strings.ToLower(raw)]; ok {
		return ns, nil
	}
	return "", &InvalidSiteError{Value: raw}
}

// ParseSite converts a raw string into a Site, ignoring case.
func ParseSite(raw string) (Site, error) {
	switch s := Site(strings.ToLower(raw)); s {
	case SiteLocal, SiteAll:
		return s, nil
	}
	ns, err := ParseNamedSite(raw)
	if err != nil {
		return "", err
	}
	return Site(ns), nil
}

// String returns the site name as it appears in command text.
func (s Site) String() string { return string(s) }

// NamedSite returns the facility location for s and whether s is one.
func (s Site) NamedSite() (NamedSite, bool) {
	ns := NamedSite(s)
	_, ok := namedSiteDisplay[ns]
	return ns, ok
}

// DisplayName returns the location name for a named site and the plain
// identifier for local and all.
func (s Site) DisplayName() string {
	if ns, ok := s.NamedSite(); ok {
		return ns.DisplayName()
	}
	return string(s)
}

// IsValid returns whether the Site is local, all, or a named site.
func (s Site) IsValid() (bool, []error) {
	if s == SiteLocal || s == SiteAll {
		return true, nil
	}
	if _, ok := s.NamedSite(); ok {
		return true, nil
	}
	return false, []error{&InvalidSiteError{Value: string(s)}}
}

// String returns the named site's identifier.
func (n NamedSite) String() string { return string(n) }

// DisplayName returns the human readable location name, e.g. "Playa Vista".
func (n NamedSite) DisplayName() string {
	if name, ok := namedSiteDisplay[n]; ok {
		return name
	}
	return string(n)
}

// Error implements the error interface for InvalidSiteError.
func (e *InvalidSiteError) Error() string {
	return fmt.Sprintf("invalid site %q (valid: local, all, hyderabad, playa, portland, montreal, vancouver)", e.Value)
}

// Unwrap returns ErrInvalidSite for errors.Is() compatibility.
func (e *InvalidSiteError) Unwrap() error { return ErrInvalidSite }
