package models

import "time"

// CatDB represents a cat record joined with its owner summary
// swagger:model Cat
type CatDB struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Breed       string      `json:"breed" db:"breed"`
	Personality string      `json:"personality" db:"personality"`
	Origin      *string     `json:"origin" db:"origin"`
	Age         *int        `json:"age" db:"age"`
	Color       *string     `json:"color" db:"color"`
	Weight      *float64    `json:"weight" db:"weight"`
	Description *string     `json:"description" db:"description"`
	UserID      int64       `json:"user_id" db:"user_id"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	Owner       UserSummary `json:"user" db:"owner"`
}

// CatInput carries the writable cat fields of a create request
// swagger:model CatInput
type CatInput struct {
	// required: true
	// example: Tama
	Name string `json:"name" validate:"notblank,max=100"`

	// required: true
	// example: Scottish Fold
	Breed string `json:"breed" validate:"notblank,max=100"`

	// required: true
	// example: calm
	Personality string `json:"personality" validate:"notblank,max=255"`

	// example: Scotland
	Origin *string `json:"origin"`

	// example: 3
	Age *int `json:"age" validate:"omitempty,gte=0"`

	// example: white
	Color *string `json:"color"`

	// example: 4.2
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`

	Description *string `json:"description"`
}

// CatPatch is a partial update: only fields present in the JSON body are applied.
// swagger:model CatPatch
type CatPatch struct {
	Name        Optional[string]  `json:"name" swaggertype:"string"`
	Breed       Optional[string]  `json:"breed" swaggertype:"string"`
	Personality Optional[string]  `json:"personality" swaggertype:"string"`
	Origin      Optional[string]  `json:"origin" swaggertype:"string"`
	Age         Optional[int]     `json:"age" swaggertype:"integer"`
	Color       Optional[string]  `json:"color" swaggertype:"string"`
	Weight      Optional[float64] `json:"weight" swaggertype:"number"`
	Description Optional[string]  `json:"description" swaggertype:"string"`
}

// Apply merges the present fields into c one at a time. An explicit null
// clears the field; required text fields become empty and fail validation.
func (p CatPatch) Apply(c *CatDB) {
	applyRequired(&c.Name, p.Name)
	applyRequired(&c.Breed, p.Breed)
	applyRequired(&c.Personality, p.Personality)
	applyOptional(&c.Origin, p.Origin)
	applyOptional(&c.Age, p.Age)
	applyOptional(&c.Color, p.Color)
	applyOptional(&c.Weight, p.Weight)
	applyOptional(&c.Description, p.Description)
}

// Empty reports whether the patch carries no fields.
func (p CatPatch) Empty() bool {
	return !p.Name.Set && !p.Breed.Set && !p.Personality.Set && !p.Origin.Set &&
		!p.Age.Set && !p.Color.Set && !p.Weight.Set && !p.Description.Set
}

func applyRequired(dst *string, o Optional[string]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = ""
		return
	}
	*dst = *o.Value
}

func applyOptional[T any](dst **T, o Optional[T]) {
	if !o.Set {
		return
	}
	*dst = o.Value
}

// Input returns the writable fields of c for validation.
func (c *CatDB) Input() CatInput {
	return CatInput{
		Name:        c.Name,
		Breed:       c.Breed,
		Personality: c.Personality,
		Origin:      c.Origin,
		Age:         c.Age,
		Color:       c.Color,
		Weight:      c.Weight,
		Description: c.Description,
	}
}

// CatDeleteResponse confirms a deletion
// swagger:model CatDeleteResponse
type CatDeleteResponse struct {
	// example: Cat 'Tama' has been deleted
	Message string `json:"message"`
}

// SetInput copies the writable fields of in into c.
func (c *CatDB) SetInput(in CatInput) {
	c.Name = in.Name
	c.Breed = in.Breed
	c.Personality = in.Personality
	c.Origin = in.Origin
	c.Age = in.Age
	c.Color = in.Color
	c.Weight = in.Weight
	c.Description = in.Description
}
