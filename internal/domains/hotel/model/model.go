package model

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID       = "id"
	FieldName     = "name"
	FieldCity     = "city"
	FieldCountry  = "country"
	FieldImageURL = "image_url"
)

type Hotel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	City     string `db:"city"`
	Country  string `db:"country"`
	ImageURL string `db:"image_url"`
}
