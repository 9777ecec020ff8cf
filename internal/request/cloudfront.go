// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package request

import (
	"strings"

	"github.com/ToddHoff/lambda-api/internal/headers"
	"github.com/ToddHoff/lambda-api/models"
)

// Viewer headers added by the CloudFront edge proxy.
const (
	HeaderDesktopViewer = "CloudFront-Is-Desktop-Viewer"
	HeaderMobileViewer  = "CloudFront-Is-Mobile-Viewer"
	HeaderSmartTVViewer = "CloudFront-Is-SmartTV-Viewer"
	HeaderTabletViewer  = "CloudFront-Is-Tablet-Viewer"
	HeaderViewerCountry = "CloudFront-Viewer-Country"
)

// viewerPrecedence is evaluated in order; the first flag equal to "true" wins.
var viewerPrecedence = []struct {
	header     string
	clientType models.ClientType
}{
	{HeaderDesktopViewer, models.ClientDesktop},
	{HeaderMobileViewer, models.ClientMobile},
	{HeaderSmartTVViewer, models.ClientTV},
	{HeaderTabletViewer, models.ClientTablet},
}

// ParseClientContext derives the viewer's device class and country from the
// edge proxy headers. Missing headers fall back to "unknown".
func ParseClientContext(h *headers.Store) models.ClientContext {
	cc := models.ClientContext{
		Type:    models.ClientUnknown,
		Country: models.CountryUnknown,
	}
	if h == nil {
		return cc
	}

	for _, v := range viewerPrecedence {
		if h.Value(v.header) == "true" {
			cc.Type = v.clientType
			break
		}
	}

	if country, ok := h.Get(HeaderViewerCountry); ok && country != "" {
		cc.Country = strings.ToUpper(country)
	}

	return cc
}
