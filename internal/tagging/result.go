package tagging

import "strings"

// Kind discriminates the variants of a tagging result.
type Kind int

const (
	// KindTags means the endpoint returned a JSON list of labeled tags.
	// The list may be empty (non-200 responses degrade to this).
	KindTags Kind = iota
	// KindBlob means the endpoint returned something other than a tag
	// list; the raw body is kept as opaque analysis text.
	KindBlob
	// KindError means the call failed at the transport level. The
	// failure is carried as text, never as a Go error, so the pipeline
	// keeps going and the message surfaces inside the prompt.
	KindError
)

// Tag is one label returned by the image-analysis endpoint.
type Tag struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Result is the tagged union produced by an Extractor.
type Result struct {
	kind Kind
	tags []Tag
	raw  string
	err  string
}

// Tags builds the tag-list variant. raw keeps the body text the list
// was decoded from so that String can echo it verbatim.
func Tags(tags []Tag, raw string) Result {
	return Result{kind: KindTags, tags: tags, raw: raw}
}

// Empty is the degraded no-tags result used for non-200 responses.
func Empty() Result {
	return Result{kind: KindTags}
}

// Blob builds the opaque-text variant.
func Blob(raw string) Result {
	return Result{kind: KindBlob, raw: raw}
}

// ExtractionError builds the failure variant from a transport error
// message.
func ExtractionError(msg string) Result {
	return Result{kind: KindError, err: msg}
}

func (r Result) Kind() Kind { return r.kind }

func (r Result) Tags() []Tag { return r.tags }

// Labels returns the tag labels in response order.
func (r Result) Labels() []string {
	labels := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		labels = append(labels, t.Label)
	}
	return labels
}

// String renders the result the way it is substituted into a prompt:
// the raw response text for tag lists and blobs, or the error message
// prefixed so the model (and the user) can see the degradation.
func (r Result) String() string {
	if r.kind == KindError {
		return "Analysis error: " + r.err
	}
	return strings.TrimSpace(r.raw)
}
