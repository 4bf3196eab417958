package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"shoeScout/domain"
	"shoeScout/pkg/logger"
	"shoeScout/pkg/metrics"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
		DebugRecommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.DebugCandidate, error)
	}

	IntendedUseDTO struct {
		EasyRuns  bool `json:"easy_runs"`
		TempoRuns bool `json:"tempo_runs"`
		LongRuns  bool `json:"long_runs"`
		Races     bool `json:"races"`
		Trail     bool `json:"trail"`
	}

	CostLimiterDTO struct {
		Enabled bool    `json:"enabled"`
		MaxUSD  float64 `json:"max_usd" validate:"gte=0"`
	}

	WeightsDTO struct {
		Budget *float64 `json:"budget,omitempty" validate:"omitempty,gte=0,lte=2"`
	}

	RecommendRequest struct {
		BrandPreferences   []string       `json:"brand_preferences"`
		IntendedUse        IntendedUseDTO `json:"intended_use"`
		RaceDistances      []string       `json:"race_distances"`
		CostLimiter        CostLimiterDTO `json:"cost_limiter"`
		NumRecommendations int            `json:"num_recommendations" validate:"gte=0,lte=20"`
		AllowCarbon        *bool          `json:"allow_carbon"`
		Enhanced           *bool          `json:"enhanced"`
		Weights            *WeightsDTO    `json:"weights,omitempty"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          60 * time.Second,
	}
}

func (r RecommendRequest) toDomain() domain.RecommendationRequest {
	req := domain.RecommendationRequest{
		BrandPreferences: r.BrandPreferences,
		IntendedUse: domain.IntendedUse{
			EasyRuns:  r.IntendedUse.EasyRuns,
			TempoRuns: r.IntendedUse.TempoRuns,
			LongRuns:  r.IntendedUse.LongRuns,
			Races:     r.IntendedUse.Races,
			Trail:     r.IntendedUse.Trail,
		},
		RaceDistances: r.RaceDistances,
		CostLimiter: domain.CostLimiter{
			Enabled: r.CostLimiter.Enabled,
			MaxUSD:  r.CostLimiter.MaxUSD,
		},
		NumRecommendations: r.NumRecommendations,
		AllowCarbon:        r.AllowCarbon,
		Enhanced:           r.Enhanced,
	}
	if r.Weights != nil {
		req.Weights = &domain.RequestWeights{Budget: r.Weights.Budget}
	}
	return req
}

func (h *RecommendHandler) bindAndValidate(c echo.Context) (domain.RecommendationRequest, error) {
	var body RecommendRequest
	if err := c.Bind(&body); err != nil {
		return domain.RecommendationRequest{}, err
	}
	if err := h.validate.Struct(&body); err != nil {
		return domain.RecommendationRequest{}, err
	}
	if body.CostLimiter.Enabled && body.CostLimiter.MaxUSD <= 0 {
		return domain.RecommendationRequest{}, echo.NewHTTPError(http.StatusBadRequest, "cost_limiter.max_usd must be positive when enabled")
	}
	if body.NumRecommendations == 0 {
		body.NumRecommendations = 5
	}
	return body.toDomain(), nil
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()

	req, err := h.bindAndValidate(c)
	if err != nil {
		logger.Error("Invalid recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	resp, err := h.recommendService.Recommend(ctx, req)
	if err != nil {
		logger.Error("Failed to generate recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	req, err := h.bindAndValidate(c)
	if err != nil {
		logger.Error("Invalid debug recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	candidates, err := h.recommendService.DebugRecommend(ctx, req)
	if err != nil {
		logger.Error("Failed to generate debug recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(candidates))
}
