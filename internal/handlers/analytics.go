package handlers

import "os"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	PiwikURL    string // e.g. https://matomo.example.gov.uk
	PiwikSiteID string
	Debug       bool
}

// LoadAnalyticsFromEnv builds Analytics from environment variables.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		PiwikURL:    os.Getenv("PIWIK_URL"),
		PiwikSiteID: os.Getenv("PIWIK_SITE_ID"),
		Debug:       os.Getenv("ORDERS_WEB_ANALYTICS_DEBUG") != "",
	}
}
