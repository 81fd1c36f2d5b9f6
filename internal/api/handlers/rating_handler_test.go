package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/services"
	"github.com/mogith007/skillswap/pkg/pagination"
)

func TestCreateRating(t *testing.T) {
	svc := new(mockRatingService)
	h := NewRatingHandler(svc)
	me, other := member("alice"), member("bob")

	rr, resp := call(t, me, http.MethodPost, "/rating", "/rating", `{"toUserId":"`+other.ID.String()+`","score":6}`, h.Create)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, []string{"score: must be at most 5"}, resp.Errors)

	view := &services.RatingView{Rating: models.Rating{ID: uuid.New(), FromUserID: me.ID, ToUserID: other.ID, Score: 5}}
	svc.On("Create", mock.Anything, me.ID, services.CreateRatingInput{ToUserID: other.ID, Score: 5}).Return(view, nil).Once()
	rr, resp = call(t, me, http.MethodPost, "/rating", "/rating", `{"toUserId":"`+other.ID.String()+`","score":5}`, h.Create)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.EqualValues(t, 5, dataMap(t, resp)["score"])

	svc.On("Create", mock.Anything, me.ID, mock.Anything).Return(nil, services.ErrDuplicateRating).Once()
	rr, _ = call(t, me, http.MethodPost, "/rating", "/rating", `{"toUserId":"`+other.ID.String()+`","score":4}`, h.Create)
	require.Equal(t, http.StatusConflict, rr.Code)
	svc.AssertExpectations(t)
}

func TestRatingListings(t *testing.T) {
	svc := new(mockRatingService)
	h := NewRatingHandler(svc)
	me := member("alice")
	target := uuid.New()

	empty := pagination.NewResult([]services.RatingView{}, 0, pagination.New(1, 10))
	svc.On("ListForUser", mock.Anything, target, pagination.New(1, 10)).Return(empty, nil).Once()
	rr, _ := call(t, nil, http.MethodGet, "/rating/user/{userId}", "/rating/user/"+target.String(), "", h.ListForUser)
	require.Equal(t, http.StatusOK, rr.Code)

	svc.On("Mine", mock.Anything, me.ID, pagination.New(1, 3)).Return(&services.MyRatings{Given: empty, Received: empty}, nil).Once()
	rr, resp := call(t, me, http.MethodGet, "/rating/my-ratings", "/rating/my-ratings?limit=3", "", h.Mine)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, dataMap(t, resp), "given")
	require.Contains(t, dataMap(t, resp), "received")
	svc.AssertExpectations(t)
}
