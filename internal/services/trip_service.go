package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

const markerSize = 0.05

type TripServiceInterface interface {
	List(ctx context.Context, isAdmin bool) ([]db_models.Trip, error)
	Markers(ctx context.Context) ([]response_models.GlobeMarker, error)
	Create(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleReveal(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	loc      *time.Location
}

func NewTripService(tripRepo repositories.TripRepository, loc *time.Location) *TripService {
	return &TripService{tripRepo: tripRepo, loc: loc}
}

// List hides the details of unrevealed trips from non-admins. Dates stay
// visible so the surprise has a countdown.
func (s *TripService) List(ctx context.Context, isAdmin bool) ([]db_models.Trip, error) {
	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	if isAdmin {
		return trips, nil
	}
	for i := range trips {
		if !trips[i].IsRevealed {
			trips[i].DestinationName = ""
			trips[i].ImageURL = ""
			trips[i].HotelInfo = ""
			trips[i].Lat = nil
			trips[i].Lng = nil
		}
	}
	return trips, nil
}

func (s *TripService) Markers(ctx context.Context) ([]response_models.GlobeMarker, error) {
	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	markers := make([]response_models.GlobeMarker, 0, len(trips))
	for _, t := range trips {
		if !t.IsRevealed || !t.HasCoordinates() {
			continue
		}
		markers = append(markers, response_models.GlobeMarker{
			TripID:   t.ID.String(),
			Label:    t.DestinationName,
			Location: [2]float64{*t.Lat, *t.Lng},
			Size:     markerSize,
		})
	}
	return markers, nil
}

func (s *TripService) Create(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	start, err := utils.ParseOptionalDate(req.StartDate, s.loc)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseOptionalDate(req.EndDate, s.loc)
	if err != nil {
		return nil, err
	}

	count, err := s.tripRepo.Count(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	trip := &db_models.Trip{
		DestinationName: req.DestinationName,
		StartDate:       start,
		EndDate:         end,
		ImageURL:        req.ImageURL,
		HotelInfo:       req.HotelInfo,
		IsRevealed:      req.IsRevealed,
		Lat:             req.Lat,
		Lng:             req.Lng,
		SortOrder:       int(count),
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, dbError(err)
	}
	return trip, nil
}

func (s *TripService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.DestinationName != nil {
		trip.DestinationName = *req.DestinationName
	}
	if req.StartDate != nil {
		if trip.StartDate, err = utils.ParseOptionalDate(*req.StartDate, s.loc); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if trip.EndDate, err = utils.ParseOptionalDate(*req.EndDate, s.loc); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.HotelInfo != nil {
		trip.HotelInfo = *req.HotelInfo
	}
	if req.IsRevealed != nil {
		trip.IsRevealed = *req.IsRevealed
	}
	if req.Lat != nil {
		trip.Lat = req.Lat
	}
	if req.Lng != nil {
		trip.Lng = req.Lng
	}
	if req.SortOrder != nil {
		trip.SortOrder = *req.SortOrder
	}

	if err := s.tripRepo.Save(ctx, trip); err != nil {
		return nil, dbError(err)
	}
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.tripRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) ToggleReveal(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.ToggleReveal(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}
