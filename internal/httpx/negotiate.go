package httpx

import (
	"mime"
	"strconv"
	"strings"
)

const (
	MIMEHTML = "text/html"
	MIMEJSON = "application/json"
)

type mediaRange struct {
	typ, sub string
	q        float64
}

func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mediatype, params, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}
		typ, sub, ok := strings.Cut(mediatype, "/")
		if !ok {
			continue
		}
		q := 1.0
		if raw, ok := params["q"]; ok {
			if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		ranges = append(ranges, mediaRange{typ: typ, sub: sub, q: q})
	}
	return ranges
}

// specificity reports how closely the range matches the offer: 3 exact,
// 2 type/*, 1 */*, 0 no match.
func (m mediaRange) specificity(typ, sub string) int {
	switch {
	case m.typ == typ && m.sub == sub:
		return 3
	case m.typ == typ && m.sub == "*":
		return 2
	case m.typ == "*" && m.sub == "*":
		return 1
	}
	return 0
}

// Negotiate picks the offer the Accept header prefers. An empty header
// accepts the first offer. Ties go to the earlier offer. It returns "" when
// no offer is acceptable.
func Negotiate(accept string, offers ...string) string {
	if len(offers) == 0 {
		return ""
	}
	if strings.TrimSpace(accept) == "" {
		return offers[0]
	}

	ranges := parseAccept(accept)
	best, bestQ := "", 0.0
	for _, offer := range offers {
		typ, sub, _ := strings.Cut(offer, "/")
		q, spec := 0.0, 0
		for _, m := range ranges {
			if s := m.specificity(typ, sub); s > spec {
				spec, q = s, m.q
			}
		}
		if q > bestQ {
			best, bestQ = offer, q
		}
	}
	return best
}
