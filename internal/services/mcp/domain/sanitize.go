package domain

import (
	"math"

	"github.com/immotools/propstack-mcp/internal/propstack"
)

// brokerFields identify the listing broker and are stripped from every record
// that leaves the server.
var brokerFields = []string{
	"broker",
	"openimmo_firstname",
	"openimmo_lastname",
	"openimmo_email",
	"openimmo_phone",
}

// mediaFields are dropped when a caller asked for the media-free shape.
var mediaFields = []string{
	"images",
	"documents",
	"videos",
	"360_views",
}

// SanitizeUnit returns a copy of the record safe to hand to a caller:
// coordinates rounded to 3 decimal places (~111 m), broker contact fields
// removed, and media collections removed when removeMedia is set. Every
// response path that returns a full or partial record must pass through here.
func SanitizeUnit(unit propstack.Unit, removeMedia bool) propstack.Unit {
	if unit == nil {
		return nil
	}
	sanitized := make(propstack.Unit, len(unit))
	for key, value := range unit {
		sanitized[key] = value
	}

	for _, field := range []string{"lat", "lng"} {
		if coord, ok := sanitized[field].(float64); ok {
			sanitized[field] = roundCoordinate(coord)
		}
	}
	for _, field := range brokerFields {
		delete(sanitized, field)
	}
	if removeMedia {
		for _, field := range mediaFields {
			delete(sanitized, field)
		}
	}
	return sanitized
}

func roundCoordinate(v float64) float64 {
	return math.Round(v*1000) / 1000
}
