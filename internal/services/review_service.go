package services

import (
	"log"
	"sort"
	"strings"
	"time"

	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/models"

	"github.com/shopspring/decimal"
)

// Note affichée tant qu'un produit n'a aucun avis
const DefaultRating = 5.0

type ReviewService struct {
	reviews *database.JSONFile[models.Review]
	now     func() time.Time
}

func NewReviewService(reviews *database.JSONFile[models.Review]) *ReviewService {
	return &ReviewService{reviews: reviews, now: time.Now}
}

// AddReview ajoute un avis (note 1-5, commentaire non vide)
func (s *ReviewService) AddReview(productID int, email, userName string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	review := models.Review{
		ProductID:   productID,
		UserEmail:   email,
		UserName:    userName,
		Rating:      rating,
		Comment:     comment,
		CreatedDate: s.now(),
	}

	err := s.reviews.Update(func(reviews []models.Review) ([]models.Review, error) {
		review.ID = 1
		for _, r := range reviews {
			if r.ID >= review.ID {
				review.ID = r.ID + 1
			}
		}
		return append(reviews, review), nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("⭐ Avis créé: #%d pour produit %d (note: %d/5)", review.ID, productID, rating)
	return &review, nil
}

// ProductReviews retourne les avis d'un produit, les plus récents d'abord
func (s *ReviewService) ProductReviews(productID int) ([]models.Review, error) {
	reviews, err := s.reviews.Load()
	if err != nil {
		return nil, err
	}

	var out []models.Review
	for _, r := range reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedDate.After(out[j].CreatedDate)
	})
	return out, nil
}

// AverageRating: 5 sans avis, sinon la moyenne arrondie à 1 décimale (demi au pair)
func (s *ReviewService) AverageRating(productID int) (float64, error) {
	rating, err := s.ProductRating(productID)
	if err != nil {
		return 0, err
	}
	return rating.AverageRating, nil
}

func (s *ReviewService) ProductRating(productID int) (models.ProductRating, error) {
	reviews, err := s.ProductReviews(productID)
	if err != nil {
		return models.ProductRating{}, err
	}

	rating := models.ProductRating{ProductID: productID, AverageRating: DefaultRating, TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return rating, nil
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	// arrondi bancaire: 4.25 → 4.2
	avg := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(len(reviews))))
	rating.AverageRating = avg.RoundBank(1).InexactFloat64()
	return rating, nil
}
