// Package content implements the module content union: lesson, quiz, video and
// feedback blocks. Content is persisted as a loose JSON attribute map and decoded
// into one of the four variants on read. Any unrecognised type reads as a lesson.
package content

import (
	"encoding/json"
)

type Kind string

const (
	KindLesson   Kind = "lesson"
	KindQuiz     Kind = "quiz"
	KindVideo    Kind = "video"
	KindFeedback Kind = "feedback"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLesson, KindQuiz, KindVideo, KindFeedback:
		return true
	}
	return false
}

// Normalize maps legacy or unknown discriminators (e.g. "text") to lesson.
func Normalize(raw string) Kind {
	if k := Kind(raw); k.Valid() {
		return k
	}
	return KindLesson
}

// Body is implemented by the four variants.
type Body interface {
	Kind() Kind
}

type LessonPart struct {
	Title    string `json:"title"`
	Type     string `json:"type"` // text or video
	Body     string `json:"body,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

type Lesson struct {
	Text     string       `json:"text"`
	VideoURL string       `json:"videoUrl,omitempty"`
	EmbedURL string       `json:"embedUrl,omitempty"`
	Parts    []LessonPart `json:"parts"`
}

type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type Quiz struct {
	Title        string     `json:"title,omitempty"`
	Questions    []Question `json:"questions"`
	PassingScore *float64   `json:"passingScore,omitempty"`
}

type Video struct {
	VideoURL string `json:"videoUrl"`
	EmbedURL string `json:"embedUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type Feedback struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description,omitempty"`
}

func (Lesson) Kind() Kind   { return KindLesson }
func (Quiz) Kind() Kind     { return KindQuiz }
func (Video) Kind() Kind    { return KindVideo }
func (Feedback) Kind() Kind { return KindFeedback }

// Decode reads a stored attribute map into its variant. Malformed JSON or
// fields of the wrong shape degrade to an empty variant of the resolved kind.
func Decode(raw []byte) Body {
	var head struct {
		Type string `json:"type"`
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &head)
	}

	switch Normalize(head.Type) {
	case KindQuiz:
		var q Quiz
		_ = json.Unmarshal(raw, &q)
		if q.Questions == nil {
			q.Questions = []Question{}
		}
		return q
	case KindVideo:
		var v Video
		_ = json.Unmarshal(raw, &v)
		v.EmbedURL = EmbedURL(v.VideoURL)
		return v
	case KindFeedback:
		var f Feedback
		_ = json.Unmarshal(raw, &f)
		return f
	default:
		var l Lesson
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &l)
		}
		if l.Parts == nil {
			l.Parts = []LessonPart{}
		}
		l.EmbedURL = EmbedURL(l.VideoURL)
		for i := range l.Parts {
			l.Parts[i].EmbedURL = EmbedURL(l.Parts[i].VideoURL)
		}
		return l
	}
}

// Envelope serializes a Body with its "type" discriminator inline.
type Envelope struct {
	Body Body
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	body := e.Body
	if body == nil {
		body = Lesson{Parts: []LessonPart{}}
	}
	fields, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(fields, &m); err != nil {
		return nil, err
	}
	m["type"] = body.Kind()
	return json.Marshal(m)
}

// WithDefaults returns the attribute map to store for a new module of the given
// kind. The map's own "type" defaults to kind, and the fields consumers expect
// for that kind are backfilled with empty values. Unknown keys are kept.
func WithDefaults(kind Kind, attrs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs)+2)
	for k, v := range attrs {
		out[k] = v
	}
	if t, ok := out["type"].(string); !ok || t == "" {
		out["type"] = string(kind)
	}

	setDefault := func(key string, value interface{}) {
		if _, ok := out[key]; !ok {
			out[key] = value
		}
	}
	switch kind {
	case KindQuiz:
		setDefault("questions", []interface{}{})
	case KindVideo:
		setDefault("videoUrl", "")
	case KindFeedback:
		setDefault("prompt", "")
	default:
		setDefault("text", "")
		setDefault("parts", []interface{}{})
	}
	return out
}
