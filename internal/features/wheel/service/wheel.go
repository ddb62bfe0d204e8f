package service

import (
	"fmt"
	"math"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/utils/random"
)

const (
	fullTurn = 360.0

	minSpins   = 5.0
	extraSpins = 5.0
)

// Spin is the outcome of one wheel draw. Angles are in degrees.
type Spin struct {
	Rotation     float64
	FinalAngle   float64
	SegmentAngle float64
	WinnerIndex  int
}

// SelectWinner maps a resting angle to a participant index. Segments are laid
// out in list order and counted against the direction of rotation.
func SelectWinner(finalAngle float64, n int) (int, error) {
	if n <= 0 {
		return 0, errors.NewValidationError("participants", "wheel needs at least one participant")
	}

	angle := math.Mod(finalAngle, fullTurn)
	if angle < 0 {
		angle += fullTurn
	}

	segment := fullTurn / float64(n)
	idx := int(math.Floor((fullTurn-angle)/segment)) % n

	return idx, nil
}

// SpinWheel draws 5 to 10 full turns plus a uniform offset, starting from the
// wheel's current angle.
func SpinWheel(src random.Source, n int, from float64) (*Spin, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("participants", "wheel needs at least one participant")
	}
	if math.IsNaN(from) || math.IsInf(from, 0) {
		return nil, errors.NewValidationError("from", fmt.Sprintf("invalid start angle %v", from))
	}

	spins := minSpins + src.Float64()*extraSpins
	offset := src.Float64() * fullTurn
	rotation := spins*fullTurn + offset

	final := math.Mod(from+rotation, fullTurn)
	if final < 0 {
		final += fullTurn
	}

	idx, err := SelectWinner(final, n)
	if err != nil {
		return nil, err
	}

	return &Spin{
		Rotation:     rotation,
		FinalAngle:   final,
		SegmentAngle: fullTurn / float64(n),
		WinnerIndex:  idx,
	}, nil
}
