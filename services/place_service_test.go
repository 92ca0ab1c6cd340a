package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type PlaceServiceSuite struct {
	serviceSuite
}

func TestPlaceServiceSuite(t *testing.T) {
	suite.Run(t, new(PlaceServiceSuite))
}

func (s *PlaceServiceSuite) createPlace(name, placeType string, lat, lng float64) *models.Place {
	p, err := s.places.Create(s.ctx, models.PlaceRequest{Name: name, PlaceType: placeType, Lat: ptr(lat), Lng: ptr(lng)})
	s.Require().NoError(err)
	return p
}

func (s *PlaceServiceSuite) TestFindNearby() {
	inside := s.createPlace("City Hospital", "hospital", 48.5, 2.5)
	s.createPlace("Far Cafe", "restaurant", 49.5, 2.5)

	nearby, err := s.places.FindNearby(s.ctx, "48.5", "2.5", "")
	s.Require().NoError(err)
	s.Require().Len(nearby, 1)
	s.Equal(inside.ID, nearby[0].ID)

	wide, err := s.places.FindNearby(s.ctx, "48.5", "2.5", "2")
	s.Require().NoError(err)
	s.Len(wide, 2)

	empty, err := s.places.FindNearby(s.ctx, "0", "0", "0.5")
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	_, err = s.places.FindNearby(s.ctx, "abc", "2.5", "")
	s.assertField(err, apperrors.KindInvalidInput, "lat")

	_, err = s.places.FindNearby(s.ctx, "48.5", "", "")
	s.assertField(err, apperrors.KindInvalidInput, "lng")
}

func (s *PlaceServiceSuite) TestFindNearbyIncludesBoxEdges() {
	corner := s.createPlace("Corner Clinic", "hospital", 0.5, -0.5)
	edge := s.createPlace("Edge Cafe", "restaurant", -0.5, 0.25)
	s.createPlace("Just Outside", "attraction", 0.5000001, 0)

	nearby, err := s.places.FindNearby(s.ctx, "0", "0", "0.5")
	s.Require().NoError(err)

	var ids []int
	for _, p := range nearby {
		ids = append(ids, p.ID)
	}
	s.ElementsMatch([]int{corner.ID, edge.ID}, ids)
}

func (s *PlaceServiceSuite) TestCRUD() {
	p := s.createPlace("Museum", "Attraction", 10, 20)
	s.Equal(models.PlaceAttraction, p.PlaceType)

	updated, err := s.places.Update(s.ctx, p.ID, models.PlacePatch{Description: ptr("Old masters"), Lat: ptr(11.0)})
	s.Require().NoError(err)
	s.Equal("Old masters", updated.Description)
	s.Equal(11.0, updated.Lat)
	s.Equal(20.0, updated.Lng)

	_, err = s.places.Update(s.ctx, p.ID, models.PlacePatch{Lat: ptr(91.0)})
	s.assertField(err, apperrors.KindValidation, "lat")

	attractions, err := s.places.List(s.ctx, "attraction")
	s.Require().NoError(err)
	s.Len(attractions, 1)

	hospitals, err := s.places.List(s.ctx, "hospital")
	s.Require().NoError(err)
	s.Empty(hospitals)

	_, err = s.places.List(s.ctx, "bar")
	s.assertField(err, apperrors.KindValidation, "type")

	s.Require().NoError(s.places.Delete(s.ctx, p.ID))
	_, err = s.places.Get(s.ctx, p.ID)
	s.assertKind(err, apperrors.KindNotFound)
}

func (s *PlaceServiceSuite) TestCreateValidation() {
	_, err := s.places.Create(s.ctx, models.PlaceRequest{Name: "X", PlaceType: "bar", Lat: ptr(1.0), Lng: ptr(1.0)})
	s.assertField(err, apperrors.KindValidation, "place_type")

	_, err = s.places.Create(s.ctx, models.PlaceRequest{Name: "X", PlaceType: "hospital", Lng: ptr(1.0)})
	s.assertField(err, apperrors.KindValidation, "lat")

	_, err = s.places.Create(s.ctx, models.PlaceRequest{PlaceType: "hospital", Lat: ptr(1.0), Lng: ptr(1.0)})
	s.assertField(err, apperrors.KindValidation, "name")
}

func (s *PlaceServiceSuite) TestReverseGeocode() {
	addr, err := s.places.ReverseGeocode("1.5", "2.25")
	s.Require().NoError(err)
	s.Contains(addr.Address, "1.50000")

	_, err = s.places.ReverseGeocode("", "2")
	s.assertKind(err, apperrors.KindInvalidInput)
}

func (s *PlaceServiceSuite) TestContacts() {
	reg := s.registerJane()

	_, err := s.contacts.List(s.ctx, 99)
	s.assertKind(err, apperrors.KindNotFound)

	_, err = s.contacts.Create(s.ctx, models.ContactRequest{ProfileID: 99, Name: "A", Phone: "1"})
	s.assertKind(err, apperrors.KindNotFound)

	_, err = s.contacts.Create(s.ctx, models.ContactRequest{ProfileID: reg.ProfileID, Name: "A"})
	s.assertField(err, apperrors.KindValidation, "phone")

	c, err := s.contacts.Create(s.ctx, models.ContactRequest{ProfileID: reg.ProfileID, Name: "John Roe", Phone: "+1555"})
	s.Require().NoError(err)

	updated, err := s.contacts.Update(s.ctx, c.ID, models.ContactPatch{Relation: ptr("brother")})
	s.Require().NoError(err)
	s.Equal("brother", updated.Relation)
	s.Equal("John Roe", updated.Name)

	list, err := s.contacts.List(s.ctx, reg.ProfileID)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.contacts.Delete(s.ctx, c.ID))
	_, err = s.contacts.Get(s.ctx, c.ID)
	s.assertKind(err, apperrors.KindNotFound)
}
