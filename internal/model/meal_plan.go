package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanDays is the JSONB column holding the generated days of a plan.
type PlanDays []Day

// Value implements the driver.Valuer interface
func (d PlanDays) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (d *PlanDays) Scan(value interface{}) error {
	if value == nil {
		*d = PlanDays{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for plan days", value)
	}

	return json.Unmarshal(bytes, d)
}

// StringList is a JSON-encoded list of strings stored in a single column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for string list", value)
	}
}

// MealPlan is a persisted plan. The restrictions and preferences it was
// generated with are kept so single meals can be swapped later.
type MealPlan struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	ProfileID       string         `gorm:"size:64;not null;index" json:"profile_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	Source          string         `gorm:"size:50" json:"source"`
	CaloriesTarget  float64        `gorm:"type:float" json:"calories_target"`
	ProteinTargetG  float64        `gorm:"type:float" json:"protein_target_g"`
	FatTargetG      float64        `gorm:"type:float" json:"fat_target_g"`
	CarbTargetG     float64        `gorm:"type:float" json:"carb_target_g"`
	WorkoutsPerWeek int            `json:"workouts_per_week"`
	Restrictions    StringList     `gorm:"type:jsonb" json:"dietary_restrictions"`
	Preferences     StringList     `gorm:"type:jsonb" json:"food_preferences"`
	Days            PlanDays       `gorm:"type:jsonb;not null" json:"days"`
	IdempotencyKey  string         `gorm:"size:128;index" json:"-"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

// BeforeCreate assigns an ID when the caller did not.
func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewMealPlan wraps generated plan data into a persistable row.
func NewMealPlan(data *PlanData) *MealPlan {
	return &MealPlan{
		ProfileID:       data.ProfileID,
		Title:           data.Title,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		Source:          data.Source,
		CaloriesTarget:  data.CaloriesTarget,
		ProteinTargetG:  data.ProteinTargetG,
		FatTargetG:      data.FatTargetG,
		CarbTargetG:     data.CarbTargetG,
		WorkoutsPerWeek: data.WorkoutsPerWeek,
		Days:            PlanDays(data.Days),
	}
}

// FindMeal returns pointers to the day and meal addressed by day number and
// meal order, or nils when either is absent.
func (p *MealPlan) FindMeal(dayNumber, mealOrder int) (*Day, *Meal) {
	for i := range p.Days {
		if p.Days[i].DayNumber != dayNumber {
			continue
		}
		day := &p.Days[i]
		for j := range day.Meals {
			if day.Meals[j].MealOrder == mealOrder {
				return day, &day.Meals[j]
			}
		}
		return day, nil
	}
	return nil, nil
}
