// internal/service/law_service.go
package service

import (
	"context"
	"fmt"

	"aprovapp/internal/config"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawService interface {
	AddLaw(ctx context.Context, userID, journeyID uuid.UUID, req *model.AddLawRequest) (*model.Law, error)
	SetArticleRead(ctx context.Context, userID, journeyID uuid.UUID, lawID, articleID string, read bool) error
}

type lawService struct {
	documentStore
	cfg *config.Config
}

func NewLawService(db *gorm.DB, journeyRepo repository.JourneyRepository, cfg *config.Config) LawService {
	return &lawService{
		documentStore: documentStore{db: db, journeyRepo: journeyRepo, retries: cfg.App.WriteRetries},
		cfg:           cfg,
	}
}

// AddLaw creates a law with its numbered articles, all unread.
func (s *lawService) AddLaw(ctx context.Context, userID, journeyID uuid.UUID, req *model.AddLawRequest) (*model.Law, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID)

	lawID := uuid.NewString()
	articles := make([]model.Article, 0, req.TotalArticles)
	for i := 1; i <= req.TotalArticles; i++ {
		articles = append(articles, model.Article{
			ID:     fmt.Sprintf("art-%s-%d", lawID, i),
			Number: i,
			Read:   false,
		})
	}
	law := model.Law{ID: lawID, Name: req.Name, Articles: articles}

	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		j.StudyData.Laws = append(j.StudyData.Laws, law)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Law added", "law_id", law.ID, "articles", len(law.Articles))
	return &law, nil
}

// SetArticleRead flips one article's read flag. Unlike topic method flags,
// article reads are freely togglable in both directions.
func (s *lawService) SetArticleRead(ctx context.Context, userID, journeyID uuid.UUID, lawID, articleID string, read bool) error {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID, "law_id", lawID, "article_id", articleID)

	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		for li := range j.StudyData.Laws {
			if j.StudyData.Laws[li].ID != lawID {
				continue
			}
			for ai := range j.StudyData.Laws[li].Articles {
				if j.StudyData.Laws[li].Articles[ai].ID == articleID {
					j.StudyData.Laws[li].Articles[ai].Read = read
					return nil
				}
			}
		}
		return model.NewAppError("NOT_FOUND", "Lei ou artigo não encontrado.", "", model.ErrNotFound)
	})
	if err != nil {
		return err
	}

	logger.Info("Article read flag updated", "read", read)
	return nil
}
