package content

import (
	"encoding/json"
	"fmt"
)

// Validate checks the parts of an attribute map that the quiz variant relies
// on. Other kinds are free-form. Returned keys are field paths.
func Validate(attrs map[string]interface{}) map[string]string {
	errs := make(map[string]string)
	t, _ := attrs["type"].(string)
	if Normalize(t) != KindQuiz {
		return errs
	}

	raw, err := json.Marshal(attrs)
	if err != nil {
		errs["content"] = "Content must be a JSON object!"
		return errs
	}
	var q Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		errs["content.questions"] = "Questions must be a list of {question, options, correctIndex}!"
		return errs
	}
	for i, question := range q.Questions {
		key := fmt.Sprintf("content.questions[%d]", i)
		if len(question.Options) == 0 {
			errs[key] = "Question needs at least one option!"
			continue
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
			errs[key] = "correctIndex must point at one of the options!"
		}
	}
	if q.PassingScore != nil && (*q.PassingScore < 0 || *q.PassingScore > 100) {
		errs["content.passingScore"] = "Passing score must be between 0 and 100!"
	}
	return errs
}
