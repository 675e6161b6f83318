// internal/model/study.go
package model

import "time"

// StudyType classifies how a session was studied. The set is closed; "review"
// is tracked in the session history but maps to no edital method flag.
type StudyType string

const (
	StudyTypeTheory    StudyType = "theory"
	StudyTypeLaw       StudyType = "law"
	StudyTypeQuestions StudyType = "questions"
	StudyTypePDF       StudyType = "pdf"
	StudyTypeVideo     StudyType = "video"
	StudyTypeReview    StudyType = "review"
	StudyTypeSummary   StudyType = "summary"
)

// Valid reports whether t is one of the known study types.
func (t StudyType) Valid() bool {
	switch t {
	case StudyTypeTheory, StudyTypeLaw, StudyTypeQuestions, StudyTypePDF,
		StudyTypeVideo, StudyTypeReview, StudyTypeSummary:
		return true
	}
	return false
}

// StudySession is one timed study event. Append-only; never mutated.
// Duration is always stored in seconds (the stopwatch ticks at 1 Hz);
// conversion to hours happens at display time only.
type StudySession struct {
	ID           string    `json:"id"`
	DisciplineID string    `json:"disciplineId"`
	TopicID      string    `json:"topicId"`
	Duration     int       `json:"duration"`
	Date         time.Time `json:"date"`
	Type         StudyType `json:"type"`
}

// QuestionLog records one batch of practice questions. Append-only.
type QuestionLog struct {
	ID           string    `json:"id"`
	DisciplineID string    `json:"disciplineId"`
	TopicID      string    `json:"topicId"`
	Total        int       `json:"total"`
	Correct      int       `json:"correct"`
	Date         time.Time `json:"date"`
}

// Revision is a scheduled review obligation. Completed is set-only
// (false -> true); revisions are never deleted.
type Revision struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	DueDate   time.Time `json:"dueDate"`
	Completed bool      `json:"completed"`
	Label     string    `json:"label"`
}

// StudyMethods is the partial set of method flags a study registration turns
// on. A true field marks that method as done; false fields are left untouched.
type StudyMethods struct {
	PDF       bool `json:"pdf"`
	Video     bool `json:"video"`
	Law       bool `json:"law"`
	Questions bool `json:"questions"`
	Summary   bool `json:"summary"`
}

// Empty reports whether no method flag is set.
func (m StudyMethods) Empty() bool {
	return m == StudyMethods{}
}

// StudyData is the per-journey aggregate document. It is persisted as a whole
// (read-modify-write) and is the unit the optimistic lock protects.
type StudyData struct {
	Sessions    []StudySession         `json:"sessions"`
	Questions   []QuestionLog          `json:"questions"`
	Revisions   []Revision             `json:"revisions"`
	TopicStatus map[string]TopicStatus `json:"topicStatus"`
	Laws        []Law                  `json:"laws,omitempty"`
}

// NewStudyData returns an empty document with every topic of the edital
// initialized as pending.
func NewStudyData(edital Edital) StudyData {
	status := make(map[string]TopicStatus)
	for _, d := range edital.Disciplines {
		for _, t := range d.Topics {
			status[t.ID] = NewTopicStatus()
		}
	}
	return StudyData{
		Sessions:    []StudySession{},
		Questions:   []QuestionLog{},
		Revisions:   []Revision{},
		TopicStatus: status,
	}
}

// StudyRegistrationResponse reports the effects of a study registration: the
// updated topic status and the freshly scheduled revisions.
type StudyRegistrationResponse struct {
	TopicID   string      `json:"topic_id"`
	Status    TopicStatus `json:"status"`
	Revisions []Revision  `json:"revisions"`
}

// RegisterStudyRequest marks a topic as studied by one or more methods.
type RegisterStudyRequest struct {
	TopicID string       `json:"topic_id" validate:"required"`
	Methods StudyMethods `json:"methods"`
}

// RegisterSessionRequest logs a completed stopwatch session.
type RegisterSessionRequest struct {
	DisciplineID string     `json:"discipline_id" validate:"required"`
	TopicID      string     `json:"topic_id" validate:"required"`
	Duration     int        `json:"duration" validate:"required,gt=0"`
	Date         *time.Time `json:"date,omitempty"`
	Type         StudyType  `json:"type" validate:"required"`
}

// QuestionLogRequest records a practice-question batch. Correct is a pointer
// so that an explicit zero survives validation.
type QuestionLogRequest struct {
	DisciplineID string `json:"discipline_id" validate:"required"`
	TopicID      string `json:"topic_id" validate:"required"`
	Total        int    `json:"total" validate:"required,gt=0"`
	Correct      *int   `json:"correct" validate:"required,gte=0"`
}
