package models

import (
	"database/sql/driver"
	"encoding/json"

	"vitrine/pkg/hours"

	"github.com/google/uuid"
)

// RawJSON is a jsonb column whose content shape is not fixed. Schedule
// fields have carried per-day objects, labelled records and bare strings
// over the years, so the column stores whatever the record had and the
// hours package sorts it out at read time.
type RawJSON json.RawMessage

// Value implements driver.Valuer for JSONB
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements sql.Scanner for JSONB
func (j *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = RawJSON(v)
	}
	return nil
}

// MarshalJSON returns the stored document unchanged
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores the document unchanged
func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Business represents a directory listing with its profile and hours
type Business struct {
	BaseModel
	OwnerID    *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:SET NULL" json:"owner_id,omitempty"`
	CategoryID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"category_id"`
	Name       string     `gorm:"not null" json:"name" validate:"required"`
	Tag        *string    `gorm:"unique;index" json:"tag"` // public slug for the window page
	About      string     `gorm:"type:text" json:"about"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Website    string     `json:"website"`

	// Address fields
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `gorm:"default:'BR'" json:"country"`

	// Geolocation fields
	Latitude  *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude *float64 `gorm:"type:decimal(11,8)" json:"longitude"`

	// Operating hours. The jsonb columns keep whichever encoding the record
	// was written with; IsManuallyOpen is the owner's tri-state override
	// (nil = follow the schedule).
	WeekdaySchedule RawJSON `gorm:"type:jsonb" json:"weekday_schedule,omitempty"`
	WeekendSchedule RawJSON `gorm:"type:jsonb" json:"weekend_schedule,omitempty"`
	HolidayHours    RawJSON `gorm:"type:jsonb" json:"holiday_hours,omitempty"`
	Schedule        RawJSON `gorm:"type:jsonb" json:"schedule,omitempty"`
	IsManuallyOpen  *bool   `json:"is_manually_open"`

	IsPublic bool `gorm:"default:false" json:"is_public"` // window page visible without login
	IsActive bool `gorm:"default:true" json:"is_active"`

	// Category relationship
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// RawSchedule exposes the schedule columns in the form the hours package
// consumes.
func (b *Business) RawSchedule() hours.RawSchedule {
	return hours.RawSchedule{
		WeekdaySchedule: json.RawMessage(b.WeekdaySchedule),
		WeekendSchedule: json.RawMessage(b.WeekendSchedule),
		HolidayHours:    json.RawMessage(b.HolidayHours),
		Schedule:        json.RawMessage(b.Schedule),
	}
}

// Category represents a directory category
type Category struct {
	BaseModel
	Name        string `gorm:"unique;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}

// OfferedService represents a service a business advertises on its profile
type OfferedService struct {
	BaseModel
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"business_id"`
	Name            string    `gorm:"not null" json:"name" validate:"required"`
	Description     string    `json:"description"`
	Price           string    `json:"price"`
	DurationMinutes int       `gorm:"default:0" json:"duration_minutes"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	SortOrder       int       `gorm:"default:0" json:"sort_order"`
}

// BusinessMedia represents gallery images attached to a business profile
type BusinessMedia struct {
	BaseModel
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"business_id"`
	Type       string    `gorm:"not null;default:'image'" json:"type"`
	URL        string    `gorm:"not null" json:"url"`
	S3Key      string    `json:"s3_key"`
	Alt        string    `json:"alt"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
}
