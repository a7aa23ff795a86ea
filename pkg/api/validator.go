package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p AmountPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
		return errors.New("amount must be finite")
	}
	if p.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if p.Slot < 0 {
		return errors.New("slot cannot be negative")
	}
	return nil
}
