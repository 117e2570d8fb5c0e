package sampler

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for fixture loading.
var (
	// ErrFixtureDecode wraps YAML syntax failures.
	ErrFixtureDecode = errors.New("sampler: fixture decode failed")

	// ErrFixtureInvalid wraps structural validation failures.
	ErrFixtureInvalid = errors.New("sampler: fixture invalid")

	// ErrFixtureRagged indicates grid rows of differing lengths.
	ErrFixtureRagged = errors.New("sampler: fixture rows must have equal length")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GridFixture is the on-disk YAML form of grid domain data:
//
//	connectivity: four   # or "eight"; defaults to "four"
//	cells:
//	  - [0, 0, 1]
//	  - [0, 1, 1]
type GridFixture struct {
	Connectivity string  `yaml:"connectivity" validate:"omitempty,oneof=four eight"`
	Cells        [][]int `yaml:"cells"        validate:"required,min=1,dive,min=1"`
}

// Conn maps the fixture's connectivity word onto a Connectivity value.
func (f *GridFixture) Conn() Connectivity {
	if f.Connectivity == "eight" {
		return Conn8
	}

	return Conn4
}

// LoadGridFixture decodes and validates grid domain data from YAML.
// Returns ErrFixtureDecode for malformed YAML, ErrFixtureInvalid for
// missing or out-of-range fields, and ErrFixtureRagged for
// non-rectangular cell rows.
func LoadGridFixture(r io.Reader) (*GridFixture, error) {
	var f GridFixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureDecode, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureInvalid, err)
	}
	width := len(f.Cells[0])
	for i, row := range f.Cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFixtureRagged, i, len(row), width)
		}
	}

	return &f, nil
}
