package handlers

import "os"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	Debug            bool
}

// LoadAnalyticsFromEnv builds Analytics from environment variables.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		GA4MeasurementID: os.Getenv("GAMESHELF_WEB_GA_MEASUREMENT_ID"),
		Debug:            os.Getenv("GAMESHELF_WEB_ANALYTICS_DEBUG") != "",
	}
}
