package propstack

import "strings"

// Property status catalog IDs for the five fixed pipeline stages. The status
// filter accepts either these IDs or the German stage names.
const (
	StatusAcquisition = "133878" // Akquise
	StatusPreparation = "133879" // Vorbereitung
	StatusMarketing   = "133880" // Vermarktung
	StatusReserved    = "133881" // Reserviert
	StatusCompleted   = "133882" // Abgewickelt
)

var statusIDsByName = map[string]string{
	"akquise":      StatusAcquisition,
	"vorbereitung": StatusPreparation,
	"vermarktung":  StatusMarketing,
	"reserviert":   StatusReserved,
	"abgewickelt":  StatusCompleted,
}

// NormalizeStatusParam rewrites a comma-separated status filter into catalog
// IDs. Name matching is case-insensitive and tolerates surrounding
// whitespace; numeric tokens pass through unchanged. Unknown names also pass
// through unchanged rather than erroring, keeping the filter forward
// compatible with statuses added upstream.
func NormalizeStatusParam(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	tokens := strings.Split(raw, ",")
	normalized := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if isNumeric(token) {
			normalized = append(normalized, token)
			continue
		}
		if id, ok := statusIDsByName[strings.ToLower(token)]; ok {
			normalized = append(normalized, id)
			continue
		}
		normalized = append(normalized, token)
	}
	return strings.Join(normalized, ",")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// sanitizeFreeText strips the characters ; < > ' " from a free-text query
// value. A narrow denylist, not a parser: everything else passes through.
var freeTextReplacer = strings.NewReplacer(";", "", "<", "", ">", "", "'", "", `"`, "")

func sanitizeFreeText(s string) string {
	return freeTextReplacer.Replace(s)
}
