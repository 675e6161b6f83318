// internal/model/topic_status.go
package model

import "encoding/json"

// TopicStatus tracks which study methods were applied to one topic. Pending is
// true only while no method was ever registered; the first registration clears
// it permanently.
type TopicStatus struct {
	Pending   bool `json:"pending"`
	PDF       bool `json:"pdf"`
	Video     bool `json:"video"`
	Law       bool `json:"law"`
	Questions bool `json:"questions"`
	Summary   bool `json:"summary"`
}

// NewTopicStatus returns the initial all-false, pending state.
func NewTopicStatus() TopicStatus {
	return TopicStatus{Pending: true}
}

// Merge turns on the flags set in methods. Flags are set-only: a later call
// never clears a previously set flag.
func (s *TopicStatus) Merge(m StudyMethods) {
	s.PDF = s.PDF || m.PDF
	s.Video = s.Video || m.Video
	s.Law = s.Law || m.Law
	s.Questions = s.Questions || m.Questions
	s.Summary = s.Summary || m.Summary
}

// topicStatusJSON accepts both the canonical document shape and the shape
// written by earlier drafts of the app (read/class_watched/law_read/
// questions_done). Old keys fold into the canonical flags on read; documents
// are always written back in the canonical shape.
type topicStatusJSON struct {
	Pending   *bool `json:"pending"`
	PDF       bool  `json:"pdf"`
	Video     bool  `json:"video"`
	Law       bool  `json:"law"`
	Questions bool  `json:"questions"`
	Summary   bool  `json:"summary"`

	Read          bool `json:"read"`
	ClassWatched  bool `json:"class_watched"`
	LawRead       bool `json:"law_read"`
	QuestionsDone bool `json:"questions_done"`
}

func (s *TopicStatus) UnmarshalJSON(b []byte) error {
	var raw topicStatusJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.PDF = raw.PDF || raw.Read
	s.Video = raw.Video || raw.ClassWatched
	s.Law = raw.Law || raw.LawRead
	s.Questions = raw.Questions || raw.QuestionsDone
	s.Summary = raw.Summary
	if raw.Pending != nil {
		s.Pending = *raw.Pending
	} else {
		// Legacy documents have no pending flag; derive it from the methods.
		s.Pending = !(s.PDF || s.Video || s.Law || s.Questions || s.Summary)
	}
	return nil
}
