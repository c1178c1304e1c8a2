package dto

import "stay/internal/domains/hotel/model"

type HotelSummary struct {
	HotelID  string `json:"hotel_id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	ImageURL string `json:"image_url"`
}

func (s *HotelSummary) FromModel(model model.Hotel) {
	s.HotelID = model.ID
	s.Name = model.Name
	s.City = model.City
	s.Country = model.Country
	s.ImageURL = model.ImageURL
}
