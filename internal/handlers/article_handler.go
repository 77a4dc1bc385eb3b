package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
	"github.com/vinculo-app/backend/internal/services"
)

// ArticleItem is an article annotated with the caller's like flag.
type ArticleItem struct {
	models.Article
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}

// ArticleHandler serves curated educational articles.
type ArticleHandler struct {
	articleRepository repositories.ArticleRepository
	rewards           *services.RewardsService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleRepo repositories.ArticleRepository, rewards *services.RewardsService) *ArticleHandler {
	return &ArticleHandler{
		articleRepository: articleRepo,
		rewards:           rewards,
	}
}

// RegisterArticleRoutes registers article routes
func (h *ArticleHandler) RegisterArticleRoutes(g *echo.Group) {
	g.GET("/articles", h.GetArticles)
	g.GET("/articles/:id", h.GetArticle)
	g.POST("/articles/:id/like", h.ToggleLike)
	g.POST("/articles/seed", h.SeedArticles)
}

// GetArticles lists articles, optionally filtered by category.
func (h *ArticleHandler) GetArticles(c echo.Context) error {
	category := models.ArticleCategory(c.QueryParam("category"))
	articles, err := h.articleRepository.Find(category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userID := currentUserID(c)
	items := make([]ArticleItem, 0, len(articles))
	for i := range articles {
		items = append(items, ArticleItem{
			Article:    articles[i],
			IsLiked:    articles[i].LikedBy(userID),
			LikesCount: len(articles[i].Likes),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"articles": items})
}

// GetArticle returns one article.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	article, err := h.articleRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Article not found")
	}
	return c.JSON(http.StatusOK, ArticleItem{
		Article:    *article,
		IsLiked:    article.LikedBy(currentUserID(c)),
		LikesCount: len(article.Likes),
	})
}

// ToggleLike flips the caller's like on an article. Turning a like on banks a
// reward point, same as liking a post.
func (h *ArticleHandler) ToggleLike(c echo.Context) error {
	userID := currentUserID(c)
	article, liked, err := h.articleRepository.ToggleLike(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked {
		if _, err := h.rewards.AddActivity(userID, "like", services.PointsLike); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"liked":       liked,
		"likes_count": len(article.Likes),
	})
}

// SeedArticles loads the starter article set once. Safe to retry.
func (h *ArticleHandler) SeedArticles(c echo.Context) error {
	count, err := h.articleRepository.Count()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return c.JSON(http.StatusOK, echo.Map{"seeded": 0, "message": "Articles already seeded"})
	}

	samples := []models.Article{
		{
			Title:    "Starting Solid Foods: A Month-by-Month Guide",
			Content:  "Introducing solids is a gradual process. Start around six months with iron-rich purees and let your baby set the pace...",
			Category: models.ArticleNutrition,
			Author:   "Dr. Ana Ribeiro",
			ReadTime: 6,
		},
		{
			Title:    "Understanding Toddler Sleep Regressions",
			Content:  "Sleep regressions are temporary disruptions tied to developmental leaps. Keeping a consistent bedtime routine helps...",
			Category: models.ArticleHealth,
			Author:   "Dr. Marcos Silva",
			ReadTime: 5,
		},
		{
			Title:    "Milestones in the First Year",
			Content:  "Every child develops at their own rhythm, but a few milestones are worth tracking with your pediatrician...",
			Category: models.ArticleDevelopment,
			Author:   "Dr. Ana Ribeiro",
			ReadTime: 8,
		},
		{
			Title:    "Choosing the Right Preschool",
			Content:  "Visit candidate schools, observe how teachers interact with children and ask about the daily routine...",
			Category: models.ArticleEducation,
			Author:   "Paula Mendes",
			ReadTime: 7,
		},
		{
			Title:    "Handling Tantrums Without Losing Your Calm",
			Content:  "Tantrums are a normal part of emotional development. Naming feelings and staying close works better than punishment...",
			Category: models.ArticleBehavior,
			Author:   "Paula Mendes",
			ReadTime: 4,
		},
	}
	for i := range samples {
		if err := h.articleRepository.Create(&samples[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"seeded": len(samples)})
}
