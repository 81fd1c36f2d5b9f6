package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/pagination"
)

func TestSkillSearchAndPopular(t *testing.T) {
	svc := new(mockSkillService)
	h := NewSkillHandler(svc)

	page := pagination.NewResult([]repository.SkillUsage{{Skill: models.Skill{Name: "Python"}, OfferedCount: 2}}, 1, pagination.New(1, 10))
	svc.On("Search", mock.Anything, "pyth", pagination.New(1, 10)).Return(page, nil).Once()
	rr, resp := call(t, nil, http.MethodGet, "/skill", "/skill?search=pyth", "", h.Search)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, dataMap(t, resp)["data"], 1)

	svc.On("Popular", mock.Anything, 0).Return([]repository.SkillUsage{}, nil).Once()
	rr, _ = call(t, nil, http.MethodGet, "/skill/popular", "/skill/popular?limit=lots", "", h.Popular)
	require.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestHealthReadiness(t *testing.T) {
	ok := NewHealthHandler(func(context.Context) error { return nil })
	rr, resp := call(t, nil, http.MethodGet, "/readyz", "/readyz", "", ok.Readiness)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ready", dataMap(t, resp)["status"])

	down := NewHealthHandler(func(context.Context) error { return errors.New("connection refused") })
	rr, resp = call(t, nil, http.MethodGet, "/readyz", "/readyz", "", down.Readiness)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.False(t, resp.Success)

	rr, _ = call(t, nil, http.MethodGet, "/healthz", "/healthz", "", down.Liveness)
	require.Equal(t, http.StatusOK, rr.Code)
}
