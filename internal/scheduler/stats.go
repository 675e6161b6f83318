// internal/scheduler/stats.go
package scheduler

import "aprovapp/internal/model"

// Progress is a completed/total pair with its percentage.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

func newProgress(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percent = float64(completed) / float64(total) * 100
	}
	return p
}

// DisciplineProgress counts the discipline's topics whose status exists and
// is no longer pending.
func DisciplineProgress(d model.Discipline, status map[string]model.TopicStatus) Progress {
	completed := 0
	for _, t := range d.Topics {
		if s, ok := status[t.ID]; ok && !s.Pending {
			completed++
		}
	}
	return newProgress(completed, len(d.Topics))
}

// OverallProgress applies the same rule across every discipline of the edital.
func OverallProgress(e model.Edital, status map[string]model.TopicStatus) Progress {
	completed, total := 0, 0
	for _, d := range e.Disciplines {
		p := DisciplineProgress(d, status)
		completed += p.Completed
		total += p.Total
	}
	return newProgress(completed, total)
}

// Accuracy returns the overall hit percentage across all question logs, or 0
// when there are none.
func Accuracy(logs []model.QuestionLog) float64 {
	total, correct := 0, 0
	for _, l := range logs {
		total += l.Total
		correct += l.Correct
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// TotalQuestions sums the question totals across all logs.
func TotalQuestions(logs []model.QuestionLog) int {
	total := 0
	for _, l := range logs {
		total += l.Total
	}
	return total
}

// StudyHours converts the summed session durations (seconds) to hours.
func StudyHours(sessions []model.StudySession) float64 {
	seconds := 0
	for _, s := range sessions {
		seconds += s.Duration
	}
	return float64(seconds) / 3600
}

// LawProgress reports how much of a law was read.
func LawProgress(l model.Law) Progress {
	return newProgress(l.ReadCount(), len(l.Articles))
}
