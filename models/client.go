// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClientType is the device class reported by the edge proxy's viewer headers.
type ClientType string

const (
	ClientDesktop ClientType = "desktop"
	ClientMobile  ClientType = "mobile"
	ClientTablet  ClientType = "tablet"
	ClientTV      ClientType = "tv"
	ClientUnknown ClientType = "unknown"
)

// CountryUnknown is reported when the edge proxy did not send a country.
const CountryUnknown = "unknown"

// ClientContext describes the viewer as seen by the edge proxy.
type ClientContext struct {
	Type    ClientType `json:"clientType"`
	Country string     `json:"clientCountry"`
}
