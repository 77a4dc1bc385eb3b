package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// CommunityItem is a community summary for listings.
type CommunityItem struct {
	models.Community
	MemberCount int                `json:"member_count"`
	Creator     models.UserCompact `json:"creator"`
}

// CommunityHandler handles local parent communities and their membership.
type CommunityHandler struct {
	communityRepository repositories.CommunityRepository
	userRepository      repositories.UserRepository
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityRepo repositories.CommunityRepository, userRepo repositories.UserRepository) *CommunityHandler {
	return &CommunityHandler{
		communityRepository: communityRepo,
		userRepository:      userRepo,
	}
}

// RegisterCommunityRoutes registers community routes
func (h *CommunityHandler) RegisterCommunityRoutes(g *echo.Group) {
	g.POST("/communities", h.CreateCommunity)
	g.GET("/communities", h.GetCommunities)
	g.GET("/communities/:id", h.GetCommunity)
	g.POST("/communities/:id/join", h.JoinCommunity)
	g.POST("/communities/:id/leave", h.LeaveCommunity)
	g.POST("/communities/seed", h.SeedCommunities)
}

// CreateCommunity creates a community with the caller as creator and first member.
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	var req models.CreateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := currentUserID(c)
	community := &models.Community{
		Name:        req.Name,
		Description: req.Description,
		Location:    models.Location{City: req.City, State: req.State},
		ImageURL:    req.ImageURL,
		MemberIDs:   []string{userID},
		CreatorID:   userID,
	}
	if err := h.communityRepository.Create(community); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, community)
}

// GetCommunities lists communities, optionally filtered by city and state.
// Filtering requires both query parameters.
func (h *CommunityHandler) GetCommunities(c echo.Context) error {
	city := c.QueryParam("city")
	state := c.QueryParam("state")

	var (
		communities []models.Community
		err         error
	)
	if city != "" && state != "" {
		communities, err = h.communityRepository.FindByLocation(city, state)
	} else {
		communities, err = h.communityRepository.All()
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]CommunityItem, 0, len(communities))
	for i := range communities {
		item := CommunityItem{
			Community:   communities[i],
			MemberCount: len(communities[i].MemberIDs),
		}
		if creator, err := h.userRepository.FindByID(communities[i].CreatorID); err == nil {
			item.Creator = creator.ToCompact()
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, echo.Map{"communities": items})
}

// GetCommunity returns one community with the caller's membership flag.
func (h *CommunityHandler) GetCommunity(c echo.Context) error {
	community, err := h.communityRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Community not found")
	}

	item := CommunityItem{
		Community:   *community,
		MemberCount: len(community.MemberIDs),
	}
	if creator, err := h.userRepository.FindByID(community.CreatorID); err == nil {
		item.Creator = creator.ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"community": item,
		"is_member": community.HasMember(currentUserID(c)),
	})
}

// JoinCommunity adds the caller to the member set.
func (h *CommunityHandler) JoinCommunity(c echo.Context) error {
	community, err := h.communityRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Community not found")
	}

	userID := currentUserID(c)
	if community.HasMember(userID) {
		return echo.NewHTTPError(http.StatusBadRequest, "You are already a member")
	}

	updated, err := h.communityRepository.AddMember(community.ID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"member_count": len(updated.MemberIDs),
	})
}

// LeaveCommunity removes the caller from the member set. The creator cannot leave.
func (h *CommunityHandler) LeaveCommunity(c echo.Context) error {
	community, err := h.communityRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Community not found")
	}

	userID := currentUserID(c)
	if !community.HasMember(userID) {
		return echo.NewHTTPError(http.StatusBadRequest, "You are not a member")
	}
	if community.CreatorID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "The creator cannot leave the community")
	}

	updated, err := h.communityRepository.RemoveMember(community.ID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"member_count": len(updated.MemberIDs),
	})
}

// SeedCommunities loads a starter set of communities once. Subsequent calls
// are no-ops so the endpoint is safe to retry.
func (h *CommunityHandler) SeedCommunities(c echo.Context) error {
	count, err := h.communityRepository.Count()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return c.JSON(http.StatusOK, echo.Map{"seeded": 0, "message": "Communities already seeded"})
	}

	userID := currentUserID(c)
	samples := []models.Community{
		{
			Name:        "Downtown Moms & Dads",
			Description: "Parents from the city center sharing playdates and daycare tips.",
			Location:    models.Location{City: "São Paulo", State: "SP"},
			MemberIDs:   []string{userID},
			CreatorID:   userID,
		},
		{
			Name:        "First-Time Parents",
			Description: "Support group for parents in their first year.",
			Location:    models.Location{City: "São Paulo", State: "SP"},
			MemberIDs:   []string{userID},
			CreatorID:   userID,
		},
		{
			Name:        "Outdoor Families",
			Description: "Weekend park meetups and family-friendly trails.",
			Location:    models.Location{City: "Campinas", State: "SP"},
			MemberIDs:   []string{userID},
			CreatorID:   userID,
		},
	}
	for i := range samples {
		if err := h.communityRepository.Create(&samples[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"seeded": len(samples)})
}
