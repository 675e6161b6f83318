// internal/model/law.go
package model

// Article is one numbered article of a law with a read flag.
type Article struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Read   bool   `json:"read"`
}

// Law is a statute studied article by article ("lei seca").
type Law struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Articles []Article `json:"articles"`
}

// ReadCount returns how many articles were marked read.
func (l Law) ReadCount() int {
	count := 0
	for _, a := range l.Articles {
		if a.Read {
			count++
		}
	}
	return count
}

// AddLawRequest creates a law with TotalArticles unread articles.
type AddLawRequest struct {
	Name          string `json:"name" validate:"required"`
	TotalArticles int    `json:"total_articles" validate:"required,gt=0"`
}

// UpdateArticleRequest toggles the read flag of one article.
type UpdateArticleRequest struct {
	Read *bool `json:"read" validate:"required"`
}
