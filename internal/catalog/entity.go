package catalog

// Level is the difficulty of a question, derived from the source file name.
type Level string

const (
	LevelJunior  Level = "junior"
	LevelMiddle  Level = "middle"
	LevelSenior  Level = "senior"
	LevelUnknown Level = "unknown"
)

// ParseLevel maps a source file base name to a Level.
func ParseLevel(name string) Level {
	switch name {
	case "junior":
		return LevelJunior
	case "middle":
		return LevelMiddle
	case "senior":
		return LevelSenior
	default:
		return LevelUnknown
	}
}

// AnswerOption is one selectable answer of a question.
type AnswerOption struct {
	ID   int    `json:"answer_id"`
	Text string `json:"answer_text"`
}

// Question is a single multiple-choice question as stored in the question bank.
// CorrectID may be absent in the source data; such questions are loaded but
// never selected.
type Question struct {
	Text      string         `json:"question"`
	Answers   []AnswerOption `json:"answers"`
	CorrectID *int           `json:"correct_answer_id,omitempty"`
	Hint      string         `json:"hint,omitempty"`
	Theme     string         `json:"theme,omitempty"`

	Level    Level  `json:"-"`
	Category string `json:"-"`
}

// Selectable reports whether the question can be served to a user.
func (q *Question) Selectable() bool {
	return q.CorrectID != nil
}

// Grouping is the flattened content of one source file within a category.
type Grouping struct {
	Level     Level
	Questions []Question
}

// Category is a named group of questions, one directory in the question bank.
type Category struct {
	Name      string
	Groupings []Grouping
}

// QuestionsIn returns the category's questions for one level, or all of them
// when level is empty.
func (c *Category) QuestionsIn(level Level) []Question {
	var out []Question
	for _, g := range c.Groupings {
		if level != "" && g.Level != level {
			continue
		}
		out = append(out, g.Questions...)
	}
	return out
}
