// internal/model/edital.go
package model

// Topic is a syllabus leaf item. Immutable once created.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Discipline groups the topics of one subject.
type Discipline struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// Edital is the exam syllabus: an ordered list of disciplines. It is created
// once per journey and the scheduler treats it as read-only.
type Edital struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Disciplines []Discipline `json:"disciplines"`
}

// HasTopic reports whether topicID belongs to any discipline of the edital.
func (e Edital) HasTopic(topicID string) bool {
	for _, d := range e.Disciplines {
		for _, t := range d.Topics {
			if t.ID == topicID {
				return true
			}
		}
	}
	return false
}

// TopicCount returns the total number of topics across all disciplines.
func (e Edital) TopicCount() int {
	count := 0
	for _, d := range e.Disciplines {
		count += len(d.Topics)
	}
	return count
}

// CreateJourneyRequest creates a new journey from a raw edital. Discipline and
// topic IDs are generated server-side.
type CreateJourneyRequest struct {
	Edital EditalRequest `json:"edital" validate:"required"`
}

type EditalRequest struct {
	Name        string              `json:"name" validate:"required"`
	Disciplines []DisciplineRequest `json:"disciplines" validate:"required,min=1,dive"`
}

type DisciplineRequest struct {
	Name   string   `json:"name" validate:"required"`
	Topics []string `json:"topics" validate:"required,min=1,dive,required"`
}
