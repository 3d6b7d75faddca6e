package generate

// DragDrop is a sorting activity: learners drag items onto target
// categories. CorrectMapping covers every item.
type DragDrop struct {
	Title          string            `json:"title"`
	Items          []string          `json:"items"`
	Targets        []string          `json:"targets"`
	CorrectMapping map[string]string `json:"correct_mapping"`
}

// Sequence is a step-reordering activity. Steps are listed in the
// correct order.
type Sequence struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// FillBlanks is a cloze activity. Text contains numbered markers
// (__1__, __2__, ...) and Blanks holds one answer per marker, in order.
type FillBlanks struct {
	Title  string   `json:"title"`
	Text   string   `json:"text"`
	Blanks []string `json:"blanks"`
}

// Flashcard is one front/back study card. A flashcard activity is an
// ordered set of cards.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is one multiple-choice question. Correct indexes into
// Options (0-3).
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// Quiz is a short multiple-choice quiz.
type Quiz struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// FlowStep is one node in a concept flow.
type FlowStep struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// ConceptFlow is an ordering activity over identified steps; CorrectFlow
// lists the step IDs in the correct order.
type ConceptFlow struct {
	Title       string     `json:"title"`
	Steps       []FlowStep `json:"steps"`
	CorrectFlow []int      `json:"correct_flow"`
}

// Insight difficulty tiers.
const (
	DifficultyBasic        = "basic"
	DifficultyIntermediate = "intermediate"
	DifficultyExpert       = "expert"
)

// Insight is a free-form analysis of a topic. Difficulty is always one
// of the three tier constants.
type Insight struct {
	Summary       string   `json:"summary"`
	Patterns      []string `json:"patterns"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
	RelatedTopics []string `json:"related_topics"`
}

// ActivityBundle is the set of activities the concept playground serves
// for one topic.
type ActivityBundle struct {
	DragDrop    DragDrop    `json:"drag_drop"`
	FillBlanks  FillBlanks  `json:"fill_blanks"`
	Flashcards  []Flashcard `json:"flashcards"`
	Quiz        Quiz        `json:"quiz"`
	ConceptFlow ConceptFlow `json:"concept_flow"`
}
