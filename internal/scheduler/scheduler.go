// internal/scheduler/scheduler.go
//
// Package scheduler implements the spaced-repetition engine. Every operation
// is a pure, synchronous computation over an in-memory StudyData document:
// the caller loads the document, invokes the scheduler with an explicit now,
// and persists the result. The scheduler itself performs no I/O.
package scheduler

import (
	"fmt"
	"time"

	"aprovapp/internal/model"
)

// Cycle is one fixed review offset.
type Cycle struct {
	Days  int
	Label string
}

// Cycles are the review offsets applied on every study registration.
var Cycles = []Cycle{
	{Days: 1, Label: "24h"},
	{Days: 7, Label: "7 dias"},
	{Days: 14, Label: "14 dias"},
	{Days: 30, Label: "30 dias"},
	{Days: 60, Label: "60 dias"},
	{Days: 90, Label: "90 dias"},
}

// GenerateRevisions builds one revision per cycle, due at now + offset.
// The ID format (rev-{topicId}-{days}d-{epochMillis}) keeps a batch unique
// without a central ID generator.
func GenerateRevisions(topicID string, now time.Time) []model.Revision {
	revisions := make([]model.Revision, 0, len(Cycles))
	for _, c := range Cycles {
		revisions = append(revisions, model.Revision{
			ID:        fmt.Sprintf("rev-%s-%dd-%d", topicID, c.Days, now.UnixMilli()),
			TopicID:   topicID,
			DueDate:   now.AddDate(0, 0, c.Days),
			Completed: false,
			Label:     c.Label,
		})
	}
	return revisions
}

// RegisterStudy marks a topic as studied by the given methods. It merges the
// method flags into the topic status (set-only), clears pending permanently,
// and appends a fresh batch of revisions. Repeat registrations for the same
// topic schedule another full batch; earlier revisions are never cancelled.
//
// Validation failures leave data untouched.
func RegisterStudy(edital model.Edital, data *model.StudyData, topicID string, methods model.StudyMethods, now time.Time) (model.TopicStatus, []model.Revision, error) {
	if methods.Empty() {
		return model.TopicStatus{}, nil, model.ErrInvalidInput
	}
	if !edital.HasTopic(topicID) {
		return model.TopicStatus{}, nil, model.ErrTopicNotFound
	}
	status, revisions := applyStudy(data, topicID, methods, now)
	return status, revisions, nil
}

// RegisterSession appends a completed stopwatch session and applies the same
// status and revision effects as RegisterStudy. The session type maps onto a
// method flag; types without a mapped flag (review) still clear pending.
func RegisterSession(edital model.Edital, data *model.StudyData, session model.StudySession, now time.Time) (model.TopicStatus, []model.Revision, error) {
	if !session.Type.Valid() {
		return model.TopicStatus{}, nil, model.ErrInvalidInput
	}
	if !edital.HasTopic(session.TopicID) {
		return model.TopicStatus{}, nil, model.ErrTopicNotFound
	}
	data.Sessions = append(data.Sessions, session)
	methods, _ := MethodsForType(session.Type)
	status, revisions := applyStudy(data, session.TopicID, methods, now)
	return status, revisions, nil
}

// MethodsForType maps a session type onto the edital method flags. The
// stopwatch exposes finer-grained choices than the edital tracks: theory
// collapses onto pdf, and review maps to no flag at all (ok=false).
func MethodsForType(t model.StudyType) (model.StudyMethods, bool) {
	switch t {
	case model.StudyTypePDF, model.StudyTypeTheory:
		return model.StudyMethods{PDF: true}, true
	case model.StudyTypeVideo:
		return model.StudyMethods{Video: true}, true
	case model.StudyTypeLaw:
		return model.StudyMethods{Law: true}, true
	case model.StudyTypeQuestions:
		return model.StudyMethods{Questions: true}, true
	case model.StudyTypeSummary:
		return model.StudyMethods{Summary: true}, true
	default:
		return model.StudyMethods{}, false
	}
}

// applyStudy performs the two effects shared by both entry points: the
// set-only status merge with the unconditional pending clear, and the
// six-revision append.
func applyStudy(data *model.StudyData, topicID string, methods model.StudyMethods, now time.Time) (model.TopicStatus, []model.Revision) {
	if data.TopicStatus == nil {
		data.TopicStatus = make(map[string]model.TopicStatus)
	}
	status, ok := data.TopicStatus[topicID]
	if !ok {
		status = model.NewTopicStatus()
	}
	status.Merge(methods)
	status.Pending = false
	data.TopicStatus[topicID] = status

	revisions := GenerateRevisions(topicID, now)
	data.Revisions = append(data.Revisions, revisions...)
	return status, revisions
}

// AppendQuestionLog validates and appends one practice-question batch.
// Invalid quantities are rejected before anything is appended; they are never
// silently clamped.
func AppendQuestionLog(edital model.Edital, data *model.StudyData, log model.QuestionLog) error {
	if log.Total <= 0 || log.Correct < 0 || log.Correct > log.Total {
		return model.ErrInvalidQuantity
	}
	if !edital.HasTopic(log.TopicID) {
		return model.ErrTopicNotFound
	}
	data.Questions = append(data.Questions, log)
	return nil
}

// CompleteRevision marks a revision as completed. Completing an unknown or
// already-completed revision is a no-op: the UI double-submits and the
// operation must stay idempotent. It reports whether anything changed.
func CompleteRevision(data *model.StudyData, revisionID string) bool {
	for i := range data.Revisions {
		if data.Revisions[i].ID == revisionID && !data.Revisions[i].Completed {
			data.Revisions[i].Completed = true
			return true
		}
	}
	return false
}
