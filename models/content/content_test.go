package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNormalizesLegacyTypes(t *testing.T) {
	body := Decode([]byte(`{"type":"text","text":"React is a library."}`))
	lesson, ok := body.(Lesson)
	require.True(t, ok)
	assert.Equal(t, "React is a library.", lesson.Text)
	assert.NotNil(t, lesson.Parts)

	assert.Equal(t, KindLesson, Decode(nil).Kind())
	assert.Equal(t, KindLesson, Decode([]byte(`{}`)).Kind())
	assert.Equal(t, KindLesson, Decode([]byte(`not json`)).Kind())
}

func TestDecodeVariants(t *testing.T) {
	quiz := Decode([]byte(`{"type":"quiz","questions":[{"question":"2+2?","options":["3","4"],"correctIndex":1}]}`))
	require.Equal(t, KindQuiz, quiz.Kind())
	assert.Equal(t, 1, quiz.(Quiz).Questions[0].CorrectIndex)

	emptyQuiz := Decode([]byte(`{"type":"quiz"}`)).(Quiz)
	assert.NotNil(t, emptyQuiz.Questions)

	video := Decode([]byte(`{"type":"video","videoUrl":"https://youtu.be/abc123","caption":"intro"}`)).(Video)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", video.EmbedURL)
	assert.Equal(t, "intro", video.Caption)

	feedback := Decode([]byte(`{"type":"feedback","prompt":"How was it?"}`)).(Feedback)
	assert.Equal(t, "How was it?", feedback.Prompt)
}

func TestEnvelopeIncludesType(t *testing.T) {
	out, err := json.Marshal(Envelope{Body: Feedback{Prompt: "Thoughts?"}})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "feedback", m["type"])
	assert.Equal(t, "Thoughts?", m["prompt"])

	out, err = json.Marshal(Envelope{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"type":"lesson"`)
}

func TestWithDefaults(t *testing.T) {
	quiz := WithDefaults(KindQuiz, nil)
	assert.Equal(t, "quiz", quiz["type"])
	assert.Equal(t, []interface{}{}, quiz["questions"])

	lesson := WithDefaults(KindLesson, map[string]interface{}{"text": "hello", "extra": 1})
	assert.Equal(t, "lesson", lesson["type"])
	assert.Equal(t, "hello", lesson["text"])
	assert.Equal(t, []interface{}{}, lesson["parts"])
	assert.Equal(t, 1, lesson["extra"])

	// an explicit content type wins over the requested kind
	kept := WithDefaults(KindVideo, map[string]interface{}{"type": "text"})
	assert.Equal(t, "text", kept["type"])
	assert.Equal(t, "", kept["videoUrl"])

	assert.Equal(t, "", WithDefaults(KindFeedback, nil)["prompt"])
}

func TestEmbedURL(t *testing.T) {
	cases := map[string]string{
		"":                                            "",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtube.com/watch?v=abc&t=10s":       "https://www.youtube.com/embed/abc",
		"https://youtu.be/xyz789?t=3":                 "https://www.youtube.com/embed/xyz789",
		"https://www.youtube.com/shorts/short1":       "https://www.youtube.com/embed/short1",
		"https://www.youtube.com/embed/emb1?rel=0":    "https://www.youtube.com/embed/emb1",
		"https://vimeo.com/76979871":                  "https://player.vimeo.com/video/76979871",
		"https://player.vimeo.com/video/123/":         "https://player.vimeo.com/video/123",
		" https://example.com/video.mp4 ":             "https://example.com/video.mp4",
		"https://www.youtube.com/channel/foo":         "https://www.youtube.com/channel/foo",
	}
	for in, want := range cases {
		assert.Equal(t, want, EmbedURL(in), in)
	}
}

func TestValidateQuiz(t *testing.T) {
	ok := Validate(map[string]interface{}{
		"type": "quiz",
		"questions": []interface{}{
			map[string]interface{}{"question": "q", "options": []interface{}{"a", "b"}, "correctIndex": 1},
		},
	})
	assert.Empty(t, ok)

	bad := Validate(map[string]interface{}{
		"type": "quiz",
		"questions": []interface{}{
			map[string]interface{}{"question": "q", "options": []interface{}{"a"}, "correctIndex": 3},
			map[string]interface{}{"question": "q2", "options": []interface{}{}},
		},
	})
	assert.Contains(t, bad, "content.questions[0]")
	assert.Contains(t, bad, "content.questions[1]")

	assert.Empty(t, Validate(map[string]interface{}{"type": "lesson", "questions": "whatever"}))
}
