package crisis

import "strings"

// DefaultKeywords are the self-harm risk phrases scanned for on every
// inbound message. Matching is lowercase substring containment; any hit
// marks the message as a crisis regardless of reply engine or category.
var DefaultKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"want to die",
	"self-harm",
	"hurt myself",
	"no reason to live",
	"better off dead",
	"end it all",
}

// Detector scans free text for crisis phrases. It holds an immutable
// lowercase phrase set and is safe for concurrent use.
type Detector struct {
	keywords []string
}

func NewDetector() *Detector {
	return NewDetectorWithKeywords(DefaultKeywords)
}

func NewDetectorWithKeywords(keywords []string) *Detector {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		kws = append(kws, kw)
	}
	return &Detector{keywords: kws}
}

// Detect reports whether text contains any crisis phrase. Empty or
// whitespace input is never a crisis.
func (d *Detector) Detect(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	for _, kw := range d.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
